package mitab_test

import (
	"fmt"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

func ExampleParseRow() {
	r, err := mitab.ParseRow(row(nil))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.IDA, r.IDA.IsGene())
	fmt.Println(mitab.SortedStrings(r.AltIDsB))
	for _, it := range mitab.Sorted(r.InteractionTypes, mitab.InteractionType.Compare) {
		fmt.Printf("%s|%s|%s -> %v\n", it.Namespace, it.Value, it.FreeText, mitab.Classify(it))
	}
	// Output:
	// entrez gene/locuslink:6416 true
	// [biogrid:108607 entrez gene/locuslink:FLNC]
	// psi-mi|MI:0407|direct interaction -> directlyIncreases
}

func ExampleClassifyToken() {
	fmt.Println(mitab.ClassifyToken(`psi-mi:"MI:0915"(physical association)`))
	fmt.Println(mitab.ClassifyToken(`psi-mi:"MI:0794"(synthetic genetic interaction defined by inequality)`))
	fmt.Println(mitab.ClassifyToken(`psi-mi:"MI:0208"(genetic interaction)`))
	// Output:
	// association
	// increases
	// unclassified
}
