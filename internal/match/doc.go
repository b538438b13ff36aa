// Package match ranks candidate names by edit distance. It backs the
// "did you mean" hints attached to failed enum conversions.
package match
