package item

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Kind discriminates item variants that the shop sells. All variants share
// the same price and stock behavior; a kind only adds descriptive fields.
// It replaces a class hierarchy with a tagged value stored in a single
// items table.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	UnknownKind Kind = iota

	// BookKind is a book with an author and an ISBN.
	BookKind

	// AlbumKind is a music album with an artist.
	AlbumKind

	// MovieKind is a movie with a director and a leading actor.
	MovieKind
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "Unknown",
		BookKind:    "Book",
		AlbumKind:   "Album",
		MovieKind:   "Movie",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[Kind]string{
		BookKind:  "Book",
		AlbumKind: "Album",
		MovieKind: "Movie",
	}
}

// Validate checks that the kind is one of the defined variants.
// UnknownKind (0) and out-of-range values are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind. It implements
// fmt.Stringer and is safe to call on any Kind value.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a kind from its string representation, as stored in
// the items table discriminator column.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a valid kind", s))
}
