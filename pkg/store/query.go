package store

import (
	"context"
	"fmt"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

// Partner is the other side of an interaction with the identifier we
// asked about. Interaction is the row id in the database, which is what
// Values wants. Line is the line in the file the interaction was loaded
// from, and is not unique once more than one file is loaded. IsA says
// the partner was interactor A. Relations holds only the classified
// kinds, in the order of mitab.RelationKinds.
type Partner struct {
	Interaction    int64
	ID             mitab.Identifier
	IsA            bool
	SourceDatabase string
	Line           int
	Relations      []mitab.RelationKind
	Types          []mitab.InteractionType
}

// AltIDsCol is the alternative identifier column of the partner's side.
func (p *Partner) AltIDsCol() int {
	if p.IsA {
		return ColAltIDsA
	}
	return ColAltIDsB
}

// Partners finds every interaction with id on either side. An
// interaction of id with itself comes once, with the partner as B.
// Results are ordered by line, then by load order.
func (s *Store) Partners(ctx context.Context, id mitab.Identifier) ([]Partner, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, line, b_ns, b_value, 0, source_db FROM interactions
			WHERE a_ns = ? AND a_value = ?
		UNION ALL
		SELECT id, line, a_ns, a_value, 1, source_db FROM interactions
			WHERE b_ns = ? AND b_value = ? AND NOT (a_ns = ? AND a_value = ?)
		ORDER BY 2, 1`,
		id.Namespace, id.Value, id.Namespace, id.Value, id.Namespace, id.Value)
	if err != nil {
		return nil, fmt.Errorf("query partners: %w", err)
	}
	defer rows.Close()

	var ps []Partner
	for rows.Next() {
		var p Partner
		if err := rows.Scan(&p.Interaction, &p.Line, &p.ID.Namespace, &p.ID.Value,
			&p.IsA, &p.SourceDatabase); err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()
	for i := range ps {
		if err := s.fillTypes(ctx, &ps[i]); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

// fillTypes reads the interaction types of one interaction.
func (s *Store) fillTypes(ctx context.Context, p *Partner) error {
	rows, err := s.db.QueryContext(ctx, `SELECT ns, value, free_text FROM interaction_types
		WHERE interaction_id = ? ORDER BY ns, value, free_text`, p.Interaction)
	if err != nil {
		return fmt.Errorf("query types: %w", err)
	}
	defer rows.Close()
	kinds := make(mitab.Set[mitab.RelationKind])
	for rows.Next() {
		var it mitab.InteractionType
		if err := rows.Scan(&it.Namespace, &it.Value, &it.FreeText); err != nil {
			return err
		}
		p.Types = append(p.Types, it)
		if k := mitab.Classify(it); k != mitab.Unclassified {
			kinds.Add(k)
		}
	}
	for _, k := range mitab.RelationKinds {
		if kinds.Has(k) {
			p.Relations = append(p.Relations, k)
		}
	}
	return rows.Err()
}

// Count is the number of interactions in the database.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&n)
	return n, err
}

// CountByRelation counts interaction types per relation kind, as they
// were classified when loaded.
func (s *Store) CountByRelation(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT relation, COUNT(*) FROM interaction_types GROUP BY relation`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	m := make(map[string]int)
	for rows.Next() {
		var rel string
		var n int
		if err := rows.Scan(&rel, &n); err != nil {
			return nil, err
		}
		m[rel] = n
	}
	return m, rows.Err()
}

// Values returns one of the plain list columns of an interaction,
// sorted. interaction is the row id, as in Partner.Interaction.
func (s *Store) Values(ctx context.Context, interaction int64, col int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT value FROM field_values
		WHERE interaction_id = ? AND col = ? ORDER BY value`, interaction, col)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var vals []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, rows.Err()
}
