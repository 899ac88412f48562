package mitab

import (
	"strings"

	"github.com/andrew-torda/mitab/pkg/common"
)

const multiSep = "|"

// SplitField breaks a field at "|" and gives each piece to elem.
// An empty field still gives one piece, the empty string. Whether that is
// acceptable is up to elem.
func SplitField[T comparable](field string, elem func(string) (T, error)) (Set[T], error) {
	parts := strings.Split(field, multiSep)
	s := make(Set[T], len(parts))
	for _, p := range parts {
		x, err := elem(p)
		if err != nil {
			return nil, err
		}
		s.Add(x)
	}
	return s, nil
}

// SplitStrings is SplitField for plain strings. It cannot fail, and a "-"
// is kept as a member.
func SplitStrings(field string) Set[string] {
	s := make(Set[string])
	for _, p := range strings.Split(field, multiSep) {
		s.Add(p)
	}
	return s
}

// splitNonEmpty applies elem only if the field has something in it.
// A "-" or empty field is an empty set.
func splitNonEmpty[T comparable](field string, elem func(string) (T, error)) (Set[T], error) {
	if common.IsNoValue(field) {
		return make(Set[T]), nil
	}
	return SplitField(field, elem)
}

// checkedIdent checks that tok is an identifier, but keeps the text.
func checkedIdent(tok string) (string, error) {
	if _, err := ParseIdentifier(tok); err != nil {
		return "", err
	}
	return tok, nil
}
