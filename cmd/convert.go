package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/citekit/ris/format"
	"github.com/citekit/ris/tagmap"
)

var (
	inputFile        string
	outputFile       string
	tagMapFile       string
	mergeTagMap      bool
	skipUnknownTags  bool
	skipMissingTags  bool
	relaxListTags    bool
	failOnIncomplete bool
	defaultType      string
	spellOutTypes    bool
	columns          []string
	multiValueSep    string
	includeHeader    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Convert citation files between formats",
	Long: `Convert tagged citation files from one format to another.

Arguments:
  from    Source format (ris, wok, pubmed), or "auto" to detect
  to      Target format (ris, wok, pubmed, csv)

Input defaults to stdin, output defaults to stdout.

Examples:
  # RIS to PubMed nbib (stdin to stdout)
  cat refs.ris | ris convert ris pubmed

  # Explicit input file, detect its format
  ris convert auto csv --input export.ciw

  # Input and output files
  ris convert ris csv -i refs.ris -o refs.csv

  # With a custom tag map layered over the default
  ris convert ris ris -i refs.ris --tagmap-file custom.yaml --merge-tagmap`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVar(&tagMapFile, "tagmap-file", "", "Custom tag map YAML file (replaces the default map)")
	convertCmd.Flags().BoolVar(&mergeTagMap, "merge-tagmap", false, "Layer the custom tag map over the format default instead of replacing it")
	convertCmd.Flags().BoolVar(&skipUnknownTags, "skip-unknown-tags", false, "Drop unmapped tags instead of keeping them in the unknown container")
	convertCmd.Flags().BoolVar(&skipMissingTags, "skip-missing-tags", false, "Tolerate lines without a valid tag")
	convertCmd.Flags().BoolVar(&relaxListTags, "relax-list-tags", false, "Promote repeated scalar tags to lists instead of keeping the first value")
	convertCmd.Flags().BoolVar(&failOnIncomplete, "fail-on-incomplete", false, "Fail when input ends inside a record")
	convertCmd.Flags().StringVar(&defaultType, "default-type", "JOUR", "Reference type for records without one")
	convertCmd.Flags().BoolVar(&spellOutTypes, "spell-out-types", false, "Translate RIS reference type codes to readable names")
	convertCmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "CSV columns to output")
	convertCmd.Flags().StringVar(&multiValueSep, "separator", "|", "Multi-value field separator for CSV output")
	convertCmd.Flags().BoolVar(&includeHeader, "include-header", true, "Include a header row in CSV output")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]
	toFormat := args[1]

	// Determine input source
	var input io.Reader
	var inputName string

	if inputFile != "" {
		f, openErr := os.Open(inputFile)
		if openErr != nil {
			return fmt.Errorf("opening input file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		input = f
		inputName = inputFile
	} else {
		input = os.Stdin
		inputName = "stdin"
	}

	// Resolve the source format, sniffing content when asked to
	if fromFormat == "auto" {
		data, readErr := io.ReadAll(input)
		if readErr != nil {
			return fmt.Errorf("reading input: %w", readErr)
		}
		detected, detectErr := format.DetectFormat(inputName, data)
		if detectErr != nil {
			return detectErr
		}
		fromFormat = detected.Name()
		input = bytes.NewReader(data)
	}

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return err
	}
	serializer, err := format.GetSerializer(toFormat)
	if err != nil {
		return err
	}

	// Load custom tag map
	var customMap *tagmap.TagMap
	if tagMapFile != "" {
		customMap, err = tagmap.LoadFile(tagMapFile)
		if err != nil {
			return err
		}
		if mergeTagMap {
			base, ok := tagmap.Builtin(fromFormat)
			if !ok {
				return fmt.Errorf("no builtin tag map for format %q to merge over", fromFormat)
			}
			customMap = tagmap.Merge(base, customMap)
		}
	}

	parseOpts := format.NewParseOptions()
	parseOpts.TagMap = customMap
	parseOpts.SkipUnknownTags = skipUnknownTags
	parseOpts.SkipMissingTags = skipMissingTags
	parseOpts.EnforceListTags = !relaxListTags
	parseOpts.FailOnIncomplete = failOnIncomplete
	parseOpts.SourceName = inputName

	records, err := parser.Parse(input, parseOpts)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputName, err)
	}

	if spellOutTypes {
		records, err = tagmap.ConvertReferenceTypes(records, nil, false, false)
		if err != nil {
			return err
		}
	}

	// Determine output destination
	var output io.Writer
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		output = f
	} else {
		output = os.Stdout
	}

	serializeOpts := format.NewSerializeOptions()
	if fromFormat == toFormat {
		serializeOpts.TagMap = customMap
	}
	serializeOpts.DefaultReferenceType = defaultType
	serializeOpts.SkipUnknownTags = skipUnknownTags
	serializeOpts.Columns = columns
	serializeOpts.MultiValueSeparator = multiValueSep
	serializeOpts.IncludeHeader = includeHeader

	if err := serializer.Serialize(output, records, serializeOpts); err != nil {
		return fmt.Errorf("writing %s: %w", toFormat, err)
	}
	return nil
}
