package analyzer

import "strings"

// Normalize collapses every run of whitespace to a single space and trims
// the edges. Every downstream stage consumes this canonical form so word
// and sentence counts agree across stages. Total over all inputs.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
