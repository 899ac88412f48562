package mitab_test

import (
	"errors"
	"testing"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

func TestParseIdentifier(t *testing.T) {
	good := []struct {
		in     string
		ns, id string
	}{
		{"ns:val", "ns", "val"},
		{"entrez gene/locuslink:6416", "entrez gene/locuslink", "6416"},
		{"uniprotkb:P12345-1", "uniprotkb", "P12345-1"},
		{"entrez gene/locuslink:JNKK(gene name synonym)", "entrez gene/locuslink", "JNKK(gene name synonym)"},
		{" ns : val ", " ns ", " val "}, // no trimming
	}
	for _, g := range good {
		id, err := mitab.ParseIdentifier(g.in)
		if err != nil {
			t.Errorf("ParseIdentifier(%q) unexpected error %v", g.in, err)
			continue
		}
		if id.Namespace != g.ns || id.Value != g.id {
			t.Errorf("ParseIdentifier(%q) got %q %q want %q %q", g.in, id.Namespace, id.Value, g.ns, g.id)
		}
		if id.String() != g.in {
			t.Errorf("String() got %q want %q", id.String(), g.in)
		}
	}
}

func TestParseIdentifierBad(t *testing.T) {
	bad := []string{"", "-", "nocolon", "a:b:c", "a::b", ":val", "ns:", ":",
		`psi-mi:"MI:0407"`}
	for _, s := range bad {
		_, err := mitab.ParseIdentifier(s)
		if err == nil {
			t.Errorf("ParseIdentifier(%q) should fail", s)
			continue
		}
		if !errors.Is(err, mitab.ErrMalformedIdentifier) {
			t.Errorf("ParseIdentifier(%q) wrong kind of error %v", s, err)
		}
		var ierr *mitab.IdentifierError
		if !errors.As(err, &ierr) || ierr.Token != s {
			t.Errorf("ParseIdentifier(%q) error does not carry token: %v", s, err)
		}
	}
}

func TestRole(t *testing.T) {
	roles := []struct {
		ns   string
		role mitab.Role
	}{
		{"entrez gene/locuslink", mitab.RoleGene},
		{"ensembl", mitab.RoleGene},
		{"ensemblGenome", mitab.RoleGene},
		{"ENSEMBL", mitab.RoleUnclassified},
		{"uniprotkb", mitab.RoleUnclassified},
		{"chebi", mitab.RoleUnclassified},
		{"biogrid", mitab.RoleUnclassified},
	}
	for _, r := range roles {
		id := mitab.Identifier{Namespace: r.ns, Value: "1"}
		if got := id.Role(); got != r.role {
			t.Errorf("namespace %q got role %v want %v", r.ns, got, r.role)
		}
		if id.IsGene() != (r.role == mitab.RoleGene) {
			t.Errorf("namespace %q IsGene wrong", r.ns)
		}
	}
	if s := mitab.RoleSmallMolecule.String(); s != "small molecule" {
		t.Errorf("role name got %q", s)
	}
}
