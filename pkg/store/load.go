package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

// Column numbers, counting from 1 as in the file, for field_values.
const (
	ColAltIDsA    = 3
	ColAltIDsB    = 4
	ColAliasesA   = 5
	ColAliasesB   = 6
	ColPubIDs     = 9
	ColConfidence = 15
)

// Load puts records in the database in one transaction. Either all of
// them go in or none do.
func (s *Store) Load(ctx context.Context, recs []mitab.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	insRec, err := tx.PrepareContext(ctx, `INSERT INTO interactions
		(line, a_ns, a_value, b_ns, b_value, detection_method, first_author, taxid_a, taxid_b, source_db)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer insRec.Close()
	insType, err := tx.PrepareContext(ctx, `INSERT INTO interaction_types
		(interaction_id, ns, value, free_text, relation) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer insType.Close()
	insID, err := tx.PrepareContext(ctx, `INSERT INTO interaction_ids (interaction_id, ns, value) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer insID.Close()
	insVal, err := tx.PrepareContext(ctx, `INSERT INTO field_values (interaction_id, col, value) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer insVal.Close()

	for i := range recs {
		r := &recs[i]
		res, err := insRec.ExecContext(ctx, r.Line, r.IDA.Namespace, r.IDA.Value,
			r.IDB.Namespace, r.IDB.Value, r.DetectionMethod, r.FirstAuthor,
			r.TaxidA, r.TaxidB, r.SourceDatabase)
		if err != nil {
			return 0, fmt.Errorf("insert line %d: %w", r.Line, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		for it := range r.InteractionTypes {
			rel := mitab.Classify(it).String()
			if _, err := insType.ExecContext(ctx, id, it.Namespace, it.Value, it.FreeText, rel); err != nil {
				return 0, fmt.Errorf("insert type, line %d: %w", r.Line, err)
			}
		}
		for iid := range r.InteractionIDs {
			if _, err := insID.ExecContext(ctx, id, iid.Namespace, iid.Value); err != nil {
				return 0, fmt.Errorf("insert interaction id, line %d: %w", r.Line, err)
			}
		}
		if err := insertValues(ctx, insVal, id, r); err != nil {
			return 0, fmt.Errorf("insert values, line %d: %w", r.Line, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(recs), nil
}

func insertValues(ctx context.Context, stmt *sql.Stmt, id int64, r *mitab.Record) error {
	cols := []struct {
		col int
		set mitab.Set[string]
	}{
		{ColAltIDsA, r.AltIDsA},
		{ColAltIDsB, r.AltIDsB},
		{ColAliasesA, r.AliasesA},
		{ColAliasesB, r.AliasesB},
		{ColPubIDs, r.PublicationIDs},
		{ColConfidence, r.ConfidenceValues},
	}
	for _, c := range cols {
		for v := range c.set {
			if _, err := stmt.ExecContext(ctx, id, c.col, v); err != nil {
				return err
			}
		}
	}
	return nil
}
