package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// EquationID returns the candidate ID of an equation label.
//
// Runs of whitespace are collapsed before hashing so labels that only differ
// in spacing (as produced by different spreadsheet exports) share an ID.
func EquationID(label string) uint64 {
	return ID(Normalize(label))
}

// Normalize collapses runs of whitespace in a label and trims both ends.
func Normalize(label string) string {
	return strings.Join(strings.Fields(label), " ")
}
