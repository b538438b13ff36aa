// Package diagnostic collects structured findings about a parametrized test
// declaration before any row is expanded.
//
// Key capabilities:
//   - Errors that make the declaration unusable (abort the expansion)
//   - Warnings for parameters only object rows can feed
//   - Infos describing how each parameter will be coerced
package diagnostic
