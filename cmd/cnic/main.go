// Command cnic validates, formats and inspects Pakistan CNIC numbers from the
// command line.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pkcnic/pkg/cnic"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	white = color.New(color.FgWhite).SprintFunc()
)

// errInvalid signals a non-zero exit after the offending input was already
// reported.
var errInvalid = errors.New("invalid CNIC")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cnic",
		Short:         "Validate, format and inspect Pakistan CNIC numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newFormatCmd(), newInfoCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <cnic>...",
		Short: "Report whether each argument is a valid CNIC",
		Args:  cobra.MinimumNArgs(1),
		// RunE because an invalid input must affect the exit status.
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := false
			for _, arg := range args {
				c, err := cnic.Parse(arg)
				if err != nil {
					failed = true
					fmt.Fprintf(out, "%s %q: %s\n", red("INVALID"), cnic.Trim(arg), cnic.Reason(err))
					continue
				}
				f, _ := cnic.Detect(arg)
				fmt.Fprintf(out, "%s   %s (%s)\n", green("VALID"), c.Dashed(), white(f))
			}
			if failed {
				return errInvalid
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	var dashes, noDashes bool
	cmd := &cobra.Command{
		Use:   "format <cnic>",
		Short: "Print a CNIC in dashed (default) or undashed form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := cnic.FormatDashed
			if noDashes {
				target = cnic.FormatUndashed
			}
			if _, err := cnic.Parse(args[0]); err != nil {
				return err
			}
			out, ok := cnic.FormatAs(args[0], target)
			if !ok {
				return errInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dashes, "dashes", false, "print as DDDDD-DDDDDDD-D (default)")
	cmd.Flags().BoolVar(&noDashes, "no-dashes", false, "print as 13 contiguous digits")
	cmd.MarkFlagsMutuallyExclusive("dashes", "no-dashes")
	return cmd
}

func newInfoCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info <cnic>",
		Short: "Break a CNIC into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cnic.Parse(args[0]); err != nil {
				return err
			}
			info, ok := cnic.ExtractInfo(args[0])
			if !ok {
				return errInvalid
			}
			if asJSON {
				return writeIndentedJSON(cmd.OutOrStdout(), info)
			}
			writeInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the fields as JSON")
	return cmd
}

func writeInfo(w io.Writer, info cnic.Info) {
	rows := []struct{ label, value string }{
		{"Identifier", info.Identifier},
		{"With dashes", info.IdentifierWithDashes},
		{"Without dashes", info.IdentifierWithoutDashes},
		{"Province code", info.ProvinceCode},
		{"District code", info.DistrictCode},
		{"Family number", info.FamilyNumber},
		{"Serial number", info.SerialNumber},
		{"Check digit", info.CheckDigit},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-15s %s\n", row.label+":", white(row.value))
	}
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
