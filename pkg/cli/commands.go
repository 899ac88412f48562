package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrew-torda/mitab/pkg/mitab"
	"github.com/andrew-torda/mitab/pkg/summary"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Check a file and report the number of records",
		Long: `check parses every line of FILE. It stops at the first bad row and
reports the line, column and reason. With --skip, bad rows are logged
and the number skipped is reported at the end.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nskip int
			recs, err := a.read(cmd.Context(), args[0], &nskip)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d records\n", args[0], len(recs))
			if nskip > 0 {
				fmt.Fprintf(out, "%s: %d bad rows skipped\n", args[0], nskip)
			}
			return nil
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Print each record on one line",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.read(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range recs {
				fmt.Fprintln(out, recs[i].String())
			}
			return nil
		},
	}
}

func (a *app) namespacesCmd() *cobra.Command {
	var show string
	cmd := &cobra.Command{
		Use:   "namespaces FILE",
		Short: "List the namespaces used for interactor A",
		Long: `namespaces prints the set of namespaces in the interactor A column,
sorted. With --show NS, the interactor A identifiers in namespace NS
are printed first, in file order, one per line with a leading tab.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.read(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			nsSet := mitab.NewSet[string]()
			for i := range recs {
				id := recs[i].IDA
				nsSet.Add(id.Namespace)
				if show != "" && id.Namespace == show {
					fmt.Fprintf(out, "\t%s\n", id)
				}
			}
			if show != "" {
				fmt.Fprintln(out)
			}
			for _, ns := range mitab.SortedStrings(nsSet) {
				fmt.Fprintln(out, ns)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&show, "show", "", "print interactor A identifiers in this namespace")
	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	var (
		outFname string
		fracs    bool
	)
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Count relation kinds per source database, as csv",
		Long: `summary classifies each interaction type and counts the relation
kinds for each source database. A record with no interaction types
counts as unclassified. The result is csv, with a line of labels.
With --fractions, each line is divided by that database's total.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.read(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			s := summary.Count(recs)
			a.log.Debug("summary", zap.Int("databases", len(s.SourceDBs)), zap.Int("records", s.NRecord()))
			write := s.WriteCSV
			if fracs {
				write = s.WriteFractionsCSV
			}
			if outFname == "" {
				return write(cmd.OutOrStdout())
			}
			return writeFile(outFname, write)
		},
	}
	cmd.Flags().StringVarP(&outFname, "output", "o", "", "write csv to this file instead of standard output")
	cmd.Flags().BoolVar(&fracs, "fractions", false, "write fractions of each database's total, not counts")
	return cmd
}

// createFile is os.Create. Tests replace it to get a file that fails.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// writeFile creates fname and hands it to write. An error from Close is
// returned if write itself went well.
func writeFile(fname string, write func(io.Writer) error) (err error) {
	fp, err := createFile(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", fname, cerr)
		}
	}()
	return write(fp)
}

// sortedKinds gives relation names in the usual order, then anything
// unexpected the database holds.
func sortedKinds(m map[string]int) []string {
	var names []string
	for _, k := range mitab.RelationKinds {
		names = append(names, k.String())
	}
	var extra []string
	for name := range m {
		if !slices.Contains(names, name) {
			extra = append(extra, name)
		}
	}
	slices.Sort(extra)
	return append(names, extra...)
}
