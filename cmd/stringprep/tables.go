package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/nihei9/stringprep/rfc3454"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the RFC 3454 character class tables and their sizes",
		Args:  cobra.NoArgs,
		RunE:  runTables,
	}
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "table\tkind\tentries\n")
	for _, t := range []struct {
		name  string
		table rfc3454.Table
	}{
		{"A.1", rfc3454.TableA1},
		{"C.1.1", rfc3454.TableC11},
		{"C.1.2", rfc3454.TableC12},
		{"C.2.1", rfc3454.TableC21},
		{"C.2.2", rfc3454.TableC22},
		{"C.3", rfc3454.TableC3},
		{"C.4", rfc3454.TableC4},
		{"C.5", rfc3454.TableC5},
		{"C.6", rfc3454.TableC6},
		{"C.7", rfc3454.TableC7},
		{"C.8", rfc3454.TableC8},
		{"C.9", rfc3454.TableC9},
		{"D.1", rfc3454.TableD1},
		{"D.2", rfc3454.TableD2},
	} {
		fmt.Fprintf(w, "%v\tranges\t%v\n", t.name, len(t.table))
	}
	fmt.Fprintf(w, "B.1\tmappings\t%v\n", len(rfc3454.TableB1))
	fmt.Fprintf(w, "B.2\tmappings\t%v\n", len(rfc3454.TableB2))
	return nil
}
