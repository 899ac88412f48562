package mitab

import "strings"

const (
	fieldSep = "\t"
	NColumn  = 15 // Columns in MITAB 2.5
)

// Columns are the names of the MITAB 2.5 columns in the order they must
// appear in the header.
var Columns = [NColumn]string{
	"#ID Interactor A",
	"ID Interactor B",
	"Alt IDs Interactor A",
	"Alt IDs Interactor B",
	"Aliases Interactor A",
	"Aliases Interactor B",
	"Interaction Detection Method",
	"Publication 1st Author",
	"Publication Identifiers",
	"Taxid Interactor A",
	"Taxid Interactor B",
	"Interaction Types",
	"Source Database",
	"Interaction Identifiers",
	"Confidence Values",
}

// Index of each column in a split line.
const (
	colIDA = iota
	colIDB
	colAltIDsA
	colAltIDsB
	colAliasesA
	colAliasesB
	colDetection
	colFirstAuthor
	colPubIDs
	colTaxidA
	colTaxidB
	colIntTypes
	colSourceDB
	colIntIDs
	colConfidence
)

// CheckHeader wants the names, in order, and nothing else. There is no
// attempt to cope with extra or renamed columns.
func CheckHeader(line string) error {
	got := strings.Split(line, fieldSep)
	if len(got) != NColumn {
		return &SchemaError{Got: got, Index: -1}
	}
	for i, name := range Columns {
		if got[i] != name {
			return &SchemaError{Got: got, Index: i}
		}
	}
	return nil
}
