// Package expand turns one parametrized test and its data source into a lazy
// sequence of named test cases, one per data row.
//
// Rows that fail to convert still produce a TestCase; its error is staged
// and surfaces when the case is run, so every row yields exactly one outcome.
package expand
