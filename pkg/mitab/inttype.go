// Interaction types look like
//   psi-mi:"MI:0407"(direct interaction)
// The namespace ends at the first colon. The value ends at the first
// "(" that is not escaped with a backslash. Free text ends at the first
// ")". Anything after that is ignored. Quotes are thrown away from all
// three parts, as are the backslashes some producers put before them.

package mitab

import (
	"cmp"
	"strings"
)

const (
	dquote   byte = '"'
	bslash   byte = '\\'
	openPar  byte = '('
	closePar byte = ')'
)

// InteractionType is a namespace:value(free text) token.
type InteractionType struct {
	Namespace string
	Value     string
	FreeText  string
}

// unescIndex returns the index of the first c in s which is not
// preceded by a backslash, or -1.
func unescIndex(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case bslash:
			i++
		case c:
			return i
		}
	}
	return -1
}

// unquote removes double quotes and a backslash in front of one.
func unquote(s string) string {
	if strings.IndexByte(s, dquote) == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == bslash && i+1 < len(s) && s[i+1] == dquote {
			continue
		}
		if c != dquote {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ParseInteractionType breaks a token into its three parts.
// Nested brackets in the free text are not part of the grammar, so we
// complain rather than cut the text short.
func ParseInteractionType(tok string) (InteractionType, error) {
	fail := func(why string) (InteractionType, error) {
		return InteractionType{}, &InteractionTypeError{Token: tok, Reason: why}
	}
	colon := strings.IndexByte(tok, nsSep)
	open := unescIndex(tok, openPar)
	switch {
	case colon == -1:
		return fail("no ':'")
	case open == -1:
		return fail("no '('")
	case open < colon:
		return fail("'(' before ':'")
	}
	rest := tok[open+1:]
	cls := strings.IndexByte(rest, closePar)
	if cls == -1 {
		return fail("no ')'")
	}
	free := rest[:cls]
	if strings.IndexByte(free, openPar) != -1 {
		return fail("nested '(' in free text")
	}

	val := strings.ReplaceAll(tok[colon+1:open], `\(`, "(")
	it := InteractionType{
		Namespace: unquote(tok[:colon]),
		Value:     unquote(val),
		FreeText:  unquote(free),
	}
	if it.Namespace == "" {
		return fail("empty namespace")
	}
	if it.Value == "" {
		return fail("empty value")
	}
	return it, nil
}

// String writes the type back the way PSI-MI producers usually do,
// quoting a value that has a colon in it.
func (it InteractionType) String() string {
	v := it.Value
	if strings.IndexByte(v, nsSep) != -1 {
		v = string(dquote) + v + string(dquote)
	}
	return it.Namespace + string(nsSep) + v + string(openPar) + it.FreeText + string(closePar)
}

func (it InteractionType) Compare(other InteractionType) int {
	return cmp.Or(strings.Compare(it.Namespace, other.Namespace),
		strings.Compare(it.Value, other.Value),
		strings.Compare(it.FreeText, other.FreeText))
}
