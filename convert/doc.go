// Package convert turns loosely typed row values into arguments of a callable.
//
// A Coercer converts one raw value (a string or an already typed object) into
// a target reflect.Type. A RowConverter applies it column by column against a
// Signature and enforces the arity rules. Custom conversions are plugged in
// through a Registry of caster functions.
package convert
