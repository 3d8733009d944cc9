package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	Schema string
	JSON   bool
	Files  []string
}

// FileResult is the validation outcome for a single file.
type FileResult struct {
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	Error  string `json:"error,omitempty"`
}

// RunValidate runs the validate command.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}
	if err := validSchema(opts.Schema); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	hasErrors := false
	results := make(map[string]FileResult)

	for _, file := range opts.Files {
		result := validateFile(file, opts.Schema)
		results[file] = result

		if !result.Valid {
			hasErrors = true
		}

		if !opts.JSON {
			if result.Valid {
				fmt.Fprintf(stdout, "%s: OK (%s)\n", file, result.Format)
			} else {
				fmt.Fprintf(stdout, "%s: FAILED\n  %s\n", file, result.Error)
			}
		}
	}

	if opts.JSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(output))
	}

	if hasErrors {
		return exitValidation
	}
	return exitSuccess
}

func validateFile(path, schema string) FileResult {
	format := detectFormat(path)
	result := FileResult{Format: format}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	switch schema {
	case schemaTas:
		_, err = decodeTas(data, format)
	default:
		_, err = decodeMas(data, format)
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Valid = true
	return result
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts := ValidateOptions{}

	fs.StringVar(&opts.Schema, "schema", schemaMas, "Document schema (mas or tas)")
	fs.BoolVar(&opts.JSON, "json", false, "Output results as JSON")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: mas-convert validate [options] <files...>

Options:
  --schema   Document schema: mas or tas [default: mas]
  --json     Output results as JSON

Examples:
  mas-convert validate design.json
  mas-convert validate --schema tas converter.yaml
  mas-convert validate --json *.json`)
}
