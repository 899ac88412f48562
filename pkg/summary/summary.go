// 27 april 2020

// Package summary counts what kinds of relation each source database
// reports. There is one row per source database and one column per
// relation kind. Counts are kept as integers, since whole database dumps
// get past the 2^24 where float32 stops counting exactly. Only the
// fractions go in a float matrix.
package summary

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/mitab/pkg/mitab"
)

// Summary holds the counts. Rows are in the order of SourceDBs,
// columns in the order of mitab.RelationKinds.
type Summary struct {
	SourceDBs []string
	counts    [][]int
	row       map[string]int
	nRecord   int
}

// Count goes over the records. Each interaction type in a record counts
// once, so a record with two types adds to two columns. A record with
// no interaction types counts as unclassified.
func Count(recs []mitab.Record) *Summary {
	s := &Summary{row: make(map[string]int), nRecord: len(recs)}
	for i := range recs {
		db := recs[i].SourceDatabase
		if _, ok := s.row[db]; !ok {
			s.row[db] = 0
			s.SourceDBs = append(s.SourceDBs, db)
		}
	}
	slices.Sort(s.SourceDBs)
	for i, db := range s.SourceDBs {
		s.row[db] = i
	}
	s.counts = make([][]int, len(s.SourceDBs))
	for i := range s.counts {
		s.counts[i] = make([]int, len(mitab.RelationKinds))
	}
	for i := range recs {
		mat := s.counts[s.row[recs[i].SourceDatabase]]
		if recs[i].InteractionTypes.Len() == 0 {
			mat[mitab.Unclassified]++
			continue
		}
		for it := range recs[i].InteractionTypes {
			mat[mitab.Classify(it)]++
		}
	}
	return s
}

// Get returns the count for one database and kind. Databases we have
// not seen give zero.
func (s *Summary) Get(db string, k mitab.RelationKind) int {
	i, ok := s.row[db]
	if !ok {
		return 0
	}
	return s.counts[i][k]
}

// Total sums a kind over all databases.
func (s *Summary) Total(k mitab.RelationKind) (tot int) {
	for _, r := range s.counts {
		tot += r[k]
	}
	return tot
}

// NRecord is the number of records that were counted.
func (s *Summary) NRecord() int { return s.nRecord }

// Fractions converts each row to fractions of that row's total.
// Rows that are all zero stay zero.
func (s *Summary) Fractions() *matrix.FMatrix2d {
	frac := matrix.NewFMatrix2d(len(s.SourceDBs), len(mitab.RelationKinds))
	for i, r := range s.counts {
		sum := 0
		for _, x := range r {
			sum += x
		}
		if sum == 0 {
			continue
		}
		for j, x := range r {
			frac.Mat[i][j] = float32(float64(x) / float64(sum))
		}
	}
	return frac
}

// WriteCSV writes one line of counts per source database, after a line
// of column labels.
func (s *Summary) WriteCSV(w io.Writer) error {
	return s.writeCSV(w, func(i, j int) string { return strconv.Itoa(s.counts[i][j]) })
}

// WriteFractionsCSV is like WriteCSV, but each line is the fraction of
// that database's total, to four decimals.
func (s *Summary) WriteFractionsCSV(w io.Writer) error {
	frac := s.Fractions()
	return s.writeCSV(w, func(i, j int) string {
		return strconv.FormatFloat(float64(frac.Mat[i][j]), 'f', 4, 32)
	})
}

func (s *Summary) writeCSV(w io.Writer, cell func(i, j int) string) error {
	cw := csv.NewWriter(w)
	labels := []string{"source database"}
	for _, k := range mitab.RelationKinds {
		labels = append(labels, k.String())
	}
	if err := cw.Write(labels); err != nil {
		return err
	}
	for i, db := range s.SourceDBs {
		line := []string{db}
		for j := range mitab.RelationKinds {
			line = append(line, cell(i, j))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
