package mitab_test

import (
	"errors"
	"testing"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

var directInt = mitab.InteractionType{Namespace: "psi-mi", Value: "MI:0407", FreeText: "direct interaction"}

func TestParseInteractionType(t *testing.T) {
	good := []struct {
		in   string
		want mitab.InteractionType
	}{
		{`psi-mi:"MI:0407"(direct interaction)`, directInt},
		{`psi-mi:MI:0407(direct interaction)`, directInt},
		{`psi-mi:\"MI:0407\"(direct interaction)`, directInt},
		{`"psi-mi":"MI:0407"("direct interaction")`, directInt},
		{`psi-mi:"MI:0407"(direct interaction)trailing junk`, directInt},
		{`ns:a\(b(text)`, mitab.InteractionType{Namespace: "ns", Value: "a(b", FreeText: "text"}},
		{`ns:val()`, mitab.InteractionType{Namespace: "ns", Value: "val"}},
		{`ns:val(a:b)`, mitab.InteractionType{Namespace: "ns", Value: "val", FreeText: "a:b"}},
	}
	for _, g := range good {
		got, err := mitab.ParseInteractionType(g.in)
		if err != nil {
			t.Errorf("ParseInteractionType(%q) unexpected error %v", g.in, err)
			continue
		}
		if got != g.want {
			t.Errorf("ParseInteractionType(%q) got %+v want %+v", g.in, got, g.want)
		}
	}
}

// TestQuoting checks that quoted and bare tokens come out the same.
func TestQuoting(t *testing.T) {
	pairs := [][2]string{
		{`ns:"val"(desc)`, `ns:val(desc)`},
		{`psi-mi:"MI:0915"(physical association)`, `psi-mi:MI:0915(physical association)`},
		{`x:"y z"(w)`, `x:y z(w)`},
	}
	for _, p := range pairs {
		a, erra := mitab.ParseInteractionType(p[0])
		b, errb := mitab.ParseInteractionType(p[1])
		if erra != nil || errb != nil {
			t.Errorf("errors parsing %q %q: %v %v", p[0], p[1], erra, errb)
			continue
		}
		if a != b {
			t.Errorf("%q and %q differ: %+v %+v", p[0], p[1], a, b)
		}
	}
}

func TestParseInteractionTypeBad(t *testing.T) {
	bad := []string{
		"",
		"-",
		"psi-mi",
		`psi-mi:"MI:0407"`,
		`psi-mi:"MI:0407"(direct interaction`,
		`psi(x):y(z)`,
		`ns:v(a(b))`,
		`:v(t)`,
		`ns:""(t)`,
		`ns:(t)`,
		`ns:v\(t)`,
	}
	for _, s := range bad {
		_, err := mitab.ParseInteractionType(s)
		if err == nil {
			t.Errorf("ParseInteractionType(%q) should fail", s)
			continue
		}
		if !errors.Is(err, mitab.ErrMalformedInteractionType) {
			t.Errorf("ParseInteractionType(%q) wrong error kind %v", s, err)
		}
		var ierr *mitab.InteractionTypeError
		if !errors.As(err, &ierr) || ierr.Token != s || ierr.Reason == "" {
			t.Errorf("ParseInteractionType(%q) error lacks detail: %v", s, err)
		}
	}
}

func TestInteractionTypeString(t *testing.T) {
	if s := directInt.String(); s != `psi-mi:"MI:0407"(direct interaction)` {
		t.Errorf("got %s", s)
	}
	it := mitab.InteractionType{Namespace: "ns", Value: "v", FreeText: "t"}
	if s := it.String(); s != "ns:v(t)" {
		t.Errorf("got %s", s)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct{ in, out string }{
		{`"abc"`, "abc"},
		{`\"abc\"`, "abc"},
		{`a\b`, `a\b`},
		{`a"b`, "ab"},
		{``, ``},
	}
	for _, tt := range tests {
		if got := mitab.Unquote(tt.in); got != tt.out {
			t.Errorf("unquote(%q) got %q want %q", tt.in, got, tt.out)
		}
	}
}

func TestUnescIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`abc(`, 3},
		{`a\(b(c`, 4},
		{`\(`, -1},
		{`abc`, -1},
		{`a\`, -1},
	}
	for _, tt := range tests {
		if got := mitab.UnescIndex(tt.in, '('); got != tt.want {
			t.Errorf("unescIndex(%q) got %d want %d", tt.in, got, tt.want)
		}
	}
}
