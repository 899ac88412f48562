package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrew-torda/mitab/pkg/common"
	"github.com/andrew-torda/mitab/pkg/mitab"
	"github.com/andrew-torda/mitab/pkg/store"
)

func (a *app) openStore() (*store.Store, error) {
	a.log.Debug("opening database", zap.String("path", a.cfg.Database))
	return store.Open(a.cfg.Database)
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load FILE",
		Short: "Load records into the database",
		Long: `load parses FILE and adds its records to the SQLite database in one
transaction. If parsing fails, nothing is added. Loading a file twice
adds its records twice.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.read(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			n, err := s.Load(cmd.Context(), recs)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d records from %s into %s\n", n, args[0], a.cfg.Database)
			return nil
		},
	}
}

func (a *app) partnersCmd() *cobra.Command {
	var altIDs bool
	cmd := &cobra.Command{
		Use:   "partners NAMESPACE:VALUE",
		Short: "List what an interactor has been seen with",
		Long: `partners looks up an identifier, such as uniprotkb:P49418, on either
side of the loaded interactions. Each partner is printed with its line
in the original file, the source database and the relation kinds.
With --alt-ids, the partner's alternative identifiers follow, joined
by "|", or "-" if there are none.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := mitab.ParseIdentifier(args[0])
			if err != nil {
				return &usageError{err}
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			ps, err := s.Partners(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range ps {
				p := &ps[i]
				rels := make([]string, len(p.Relations))
				for j, k := range p.Relations {
					rels[j] = k.String()
				}
				if len(rels) == 0 {
					rels = append(rels, mitab.Unclassified.String())
				}
				fmt.Fprintf(out, "%s\t%d\t%s\t%s", p.ID, p.Line, p.SourceDatabase, strings.Join(rels, ","))
				if altIDs {
					alt, err := s.Values(cmd.Context(), p.Interaction, p.AltIDsCol())
					if err != nil {
						return err
					}
					if len(alt) == 0 {
						alt = []string{common.NoValue}
					}
					fmt.Fprintf(out, "\t%s", strings.Join(alt, "|"))
				}
				fmt.Fprintln(out)
			}
			if len(ps) == 0 {
				fmt.Fprintf(out, "no partners for %s\n", id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&altIDs, "alt-ids", false, "also print the partner's alternative identifiers")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count what is in the database",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			ctx := cmd.Context()
			n, err := s.Count(ctx)
			if err != nil {
				return err
			}
			byRel, err := s.CountByRelation(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "interactions\t%d\n", n)
			for _, name := range sortedKinds(byRel) {
				fmt.Fprintf(out, "%s\t%d\n", name, byRel[name])
			}
			return nil
		},
	}
}
