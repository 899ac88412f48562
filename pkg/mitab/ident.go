package mitab

import (
	"cmp"
	"strings"
)

const nsSep = ':'

// Role is the kind of molecule an identifier's namespace tells us about.
type Role byte

const (
	RoleUnclassified Role = iota // We cannot tell from the namespace
	RoleGene                     //
	RoleNucleicAcid              // Not assigned yet. Needs a namespace table.
	RoleSmallMolecule            // Not assigned yet. Would use ChEBI.
	RoleProtein                  // Not assigned yet. Would use ChEBI.
)

var roleNames = [...]string{
	RoleUnclassified:  "unclassified",
	RoleGene:          "gene",
	RoleNucleicAcid:   "nucleic acid",
	RoleSmallMolecule: "small molecule",
	RoleProtein:       "protein",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown role"
}

// geneNS are the namespaces whose identifiers name genes.
var geneNS = map[string]bool{
	"entrez gene/locuslink": true,
	"ensembl":               true,
	"ensemblGenome":         true,
}

// Identifier is a compound identifier, database:identifier.
type Identifier struct {
	Namespace string
	Value     string
}

// ParseIdentifier wants exactly one colon with something on both sides.
// There is no normalisation of case or white space.
func ParseIdentifier(tok string) (Identifier, error) {
	ns, val, ok := strings.Cut(tok, string(nsSep))
	if !ok || ns == "" || val == "" || strings.IndexByte(val, nsSep) != -1 {
		return Identifier{}, &IdentifierError{Token: tok}
	}
	return Identifier{Namespace: ns, Value: val}, nil
}

func (id Identifier) String() string { return id.Namespace + string(nsSep) + id.Value }

// Compare orders by namespace, then value.
func (id Identifier) Compare(other Identifier) int {
	return cmp.Or(strings.Compare(id.Namespace, other.Namespace),
		strings.Compare(id.Value, other.Value))
}

// Role looks at the namespace. Only genes are recognised so far.
func (id Identifier) Role() Role {
	if geneNS[id.Namespace] {
		return RoleGene
	}
	return RoleUnclassified
}

// IsGene is true for the gene namespaces.
func (id Identifier) IsGene() bool { return id.Role() == RoleGene }
