package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/citekit/ris/format"
)

var (
	validateInput   string
	validateVerbose bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <format>",
	Short: "Validate a citation file without converting",
	Long: `Validate a citation file by parsing it completely.

This command parses the input and reports any issues found without
producing output. Useful for checking files before conversion.

Arguments:
  format  Input format (ris, wok, pubmed)

Input defaults to stdin.

Examples:
  ris validate ris -i refs.ris
  ris validate ris -i refs.ris --verbose
  cat export.ciw | ris validate wok`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show detailed information")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]

	// Determine input source
	var input io.Reader
	var inputName string

	if validateInput != "" {
		f, openErr := os.Open(validateInput)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		inputName = validateInput
	} else {
		input = os.Stdin
		inputName = "stdin"
	}

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return err
	}

	parseOpts := format.NewParseOptions()
	parseOpts.SourceName = inputName

	records, err := parser.Parse(input, parseOpts)
	if err != nil {
		var parseErr *format.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("validation failed at line %d (%q): %s", parseErr.Line, parseErr.Text, parseErr.Msg)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Valid: parsed %d records from %s\n", len(records), inputName)

	if validateVerbose {
		for i, rec := range records {
			fmt.Printf("  record %d: %d fields", i+1, rec.Len())
			if u := rec.Unknown(); u != nil {
				fmt.Printf(", %d unknown tags", u.Len())
			}
			fmt.Println()
		}
	}

	return nil
}
