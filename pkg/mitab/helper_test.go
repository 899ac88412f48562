// Lines that are used all over the tests.

package mitab_test

import (
	"iter"
	"slices"
	"strings"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

var header = strings.Join(mitab.Columns[:], "\t")

// goodRow is a BioGRID line, MAP2K4 and FLNC.
var goodRow = [mitab.NColumn]string{
	"entrez gene/locuslink:6416",
	"entrez gene/locuslink:2318",
	"biogrid:112315|entrez gene/locuslink:MAP2K4|uniprot/swiss-prot:P45985",
	"biogrid:108607|entrez gene/locuslink:FLNC",
	"entrez gene/locuslink:JNKK(gene name synonym)|entrez gene/locuslink:MEK4(gene name synonym)",
	"-",
	`psi-mi:"MI:0018"(two hybrid)`,
	"Marti A (1997)",
	"pubmed:9006895",
	"taxid:9606",
	"taxid:9606",
	`psi-mi:"MI:0407"(direct interaction)`,
	`psi-mi:"MI:0463"(biogrid)`,
	"biogrid:103",
	"-",
}

// row returns goodRow as a line, with some columns (counting from 0)
// replaced.
func row(change map[int]string) string {
	f := goodRow
	for i, s := range change {
		f[i] = s
	}
	return strings.Join(f[:], "\t")
}

func file(rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

// lines turns a string into the kind of sequence ParseLines wants.
func lines(s string) iter.Seq[string] {
	if s == "" {
		return slices.Values([]string(nil))
	}
	return slices.Values(strings.Split(strings.TrimSuffix(s, "\n"), "\n"))
}
