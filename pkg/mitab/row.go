package mitab

import (
	"fmt"
	"strings"
)

// Record is one data line. The fields are in column order.
type Record struct {
	IDA              Identifier
	IDB              Identifier
	AltIDsA          Set[string]
	AltIDsB          Set[string]
	AliasesA         Set[string]
	AliasesB         Set[string]
	DetectionMethod  string
	FirstAuthor      string
	PublicationIDs   Set[string]
	TaxidA           string
	TaxidB           string
	InteractionTypes Set[InteractionType]
	SourceDatabase   string
	InteractionIDs   Set[Identifier]
	ConfidenceValues Set[string]

	Line int // line in the input, 0 if parsed with ParseRow
}

// ParseRow turns one data line into a Record. The first column that
// does not parse stops everything. There is no partial record.
func ParseRow(line string) (Record, error) {
	f := strings.Split(line, fieldSep)
	if len(f) != NColumn {
		return Record{}, &RowError{Err: &FieldCountError{Want: NColumn, Got: len(f)}}
	}
	fail := func(col int, err error) (Record, error) {
		return Record{}, &RowError{Column: col + 1, Field: f[col], Err: err}
	}

	var r Record
	var err error
	if r.IDA, err = ParseIdentifier(f[colIDA]); err != nil {
		return fail(colIDA, err)
	}
	if r.IDB, err = ParseIdentifier(f[colIDB]); err != nil {
		return fail(colIDB, err)
	}
	identLists := [...]*Set[string]{&r.AltIDsA, &r.AltIDsB, &r.AliasesA, &r.AliasesB}
	for i, dst := range identLists {
		col := colAltIDsA + i
		if *dst, err = splitNonEmpty(f[col], checkedIdent); err != nil {
			return fail(col, err)
		}
	}
	r.DetectionMethod = f[colDetection]
	r.FirstAuthor = f[colFirstAuthor]
	r.PublicationIDs = SplitStrings(f[colPubIDs])
	r.TaxidA = f[colTaxidA]
	r.TaxidB = f[colTaxidB]
	if r.InteractionTypes, err = splitNonEmpty(f[colIntTypes], ParseInteractionType); err != nil {
		return fail(colIntTypes, err)
	}
	r.SourceDatabase = f[colSourceDB]
	if r.InteractionIDs, err = splitNonEmpty(f[colIntIDs], ParseIdentifier); err != nil {
		return fail(colIntIDs, err)
	}
	r.ConfidenceValues = SplitStrings(f[colConfidence])
	return r, nil
}

// Relations returns the kinds of relation the interaction types map to.
// Types we do not know are left out.
func (r *Record) Relations() Set[RelationKind] {
	s := make(Set[RelationKind])
	for it := range r.InteractionTypes {
		if k := Classify(it); k != Unclassified {
			s.Add(k)
		}
	}
	return s
}

// String is for printing records, one line each. The set columns are
// sorted so the output is repeatable.
func (r *Record) String() string {
	types := Sorted(r.InteractionTypes, InteractionType.Compare)
	tstr := make([]string, len(types))
	for i, it := range types {
		tstr[i] = it.String()
	}
	return fmt.Sprintf("%s %s types=[%s] source=%s author=%q taxa=%s,%s",
		r.IDA, r.IDB, strings.Join(tstr, " | "), r.SourceDatabase,
		r.FirstAuthor, r.TaxidA, r.TaxidB)
}
