package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cmmoran/pibxgen/pkg/action/check"
)

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

var (
	missingColor = color.New(color.FgYellow, color.Bold)
	changedColor = color.New(color.FgRed, color.Bold)
	staleColor   = color.New(color.FgMagenta)
	okColor      = color.New(color.FgGreen)
)

// printDrifts writes one status line per drift.
func printDrifts(w io.Writer, drifts []check.Drift, showDiff bool) {
	for _, d := range drifts {
		switch {
		case d.Missing:
			missingColor.Fprintf(w, "missing %s", d.Class)
			fmt.Fprintf(w, " %s\n", d.File)
		case d.Stale:
			staleColor.Fprintf(w, "stale   %s", d.Class)
			fmt.Fprintf(w, " %s\n", d.File)
		default:
			changedColor.Fprintf(w, "changed %s", d.Class)
			fmt.Fprintf(w, " %s\n", d.File)
			if showDiff {
				fmt.Fprintln(w, d.Diff)
			}
		}
	}
}

func NewCheckCommand() *cobra.Command {
	var showDiff bool
	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "check generated classes",
		Long:  "Regenerate classes in memory and report files that are missing, changed or no longer generated",
		Args:  cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			return bindFlags(c.Flags())
		},
		RunE: func(c *cobra.Command, args []string) error {
			drifts, err := check.Check(optionsFromConfig())
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if len(drifts) == 0 {
				okColor.Fprintln(out, "up to date")
				return nil
			}
			printDrifts(out, drifts, showDiff)
			return fmt.Errorf("%w: %d class(es)", ErrDrift, len(drifts))
		},
	}
	addSourceFlags(checkCmd.Flags())
	checkCmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "print the difference for changed classes")

	return checkCmd
}
