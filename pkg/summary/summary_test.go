package summary_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/andrew-torda/mitab/pkg/mitab"
	"github.com/andrew-torda/mitab/pkg/mitabio"
	"github.com/andrew-torda/mitab/pkg/summary"
)

const (
	biogrid = `psi-mi:"MI:0463"(biogrid)`
	intact  = `psi-mi:"MI:0469"(IntAct)`
)

func readSample(t *testing.T) []mitab.Record {
	t.Helper()
	recs, err := mitabio.ReadFile(context.Background(), "../mitabio/testdata/sample.mitab", nil)
	if err != nil {
		t.Fatal(err)
	}
	return recs
}

func TestCount(t *testing.T) {
	s := summary.Count(readSample(t))
	if s.NRecord() != 5 {
		t.Errorf("counted %d records", s.NRecord())
	}
	if len(s.SourceDBs) != 2 || s.SourceDBs[0] != biogrid || s.SourceDBs[1] != intact {
		t.Fatalf("source databases %v", s.SourceDBs)
	}
	tests := []struct {
		db   string
		kind mitab.RelationKind
		want int
	}{
		{biogrid, mitab.DirectlyIncreases, 1},
		{biogrid, mitab.Association, 1},
		{biogrid, mitab.Increases, 1},
		{biogrid, mitab.Unclassified, 1},
		{intact, mitab.Association, 1},
		{intact, mitab.Increases, 0},
		{"nowhere", mitab.Association, 0},
	}
	for _, tt := range tests {
		if got := s.Get(tt.db, tt.kind); got != tt.want {
			t.Errorf("%s %v got %v want %v", tt.db, tt.kind, got, tt.want)
		}
	}
	if tot := s.Total(mitab.Association); tot != 2 {
		t.Errorf("total association %v", tot)
	}
}

func TestNoTypes(t *testing.T) {
	recs := []mitab.Record{{SourceDatabase: "x"}, {SourceDatabase: "x"}}
	s := summary.Count(recs)
	if got := s.Get("x", mitab.Unclassified); got != 2 {
		t.Errorf("records without types got %v unclassified", got)
	}
	frac := s.Fractions()
	if frac.Mat[0][mitab.Unclassified] != 1 {
		t.Errorf("fraction %v", frac.Mat[0])
	}
}

func TestEmpty(t *testing.T) {
	s := summary.Count(nil)
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "source database,unclassified,increases,association,directlyIncreases\n" {
		t.Errorf("got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := summary.Count(readSample(t)).WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"source database,unclassified,increases,association,directlyIncreases",
		`"psi-mi:""MI:0463""(biogrid)",1,1,1,1`,
		`"psi-mi:""MI:0469""(IntAct)",0,0,1,0`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d got %s want %s", i, lines[i], want[i])
		}
	}
}

func TestWriteFractionsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := summary.Count(readSample(t)).WriteFractionsCSV(&buf); err != nil {
		t.Fatal(err)
	}
	want := "source database,unclassified,increases,association,directlyIncreases\n" +
		`"psi-mi:""MI:0463""(biogrid)",0.2500,0.2500,0.2500,0.2500` + "\n" +
		`"psi-mi:""MI:0469""(IntAct)",0.0000,0.0000,1.0000,0.0000` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
