package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mas-protocol/mas-go/pkg/mas"
)

// AutocompleteOptions configures the autocomplete command.
type AutocompleteOptions struct {
	Input  string
	Output string // Empty means report only
	JSON   bool
}

// PendingOutput is one pending required field in the report.
type PendingOutput struct {
	Path   string `json:"path"`
	Entity string `json:"entity"`
	Field  string `json:"field"`
}

// RunAutocomplete runs the autocomplete command. It decodes a partial
// MAS document, reporting the required fields that are still missing
// instead of failing on the first one.
func RunAutocomplete(args []string, stdout, stderr io.Writer) int {
	opts, err := parseAutocompleteArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printAutocompleteUsage(stderr)
		return exitCommandError
	}

	format := detectFormat(opts.Input)
	if format != formatJSON {
		fmt.Fprintln(stderr, "Error: autocomplete reads JSON input")
		return exitCommandError
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return exitCommandError
	}

	doc, pending, err := mas.Autocomplete(data)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}

	if opts.JSON {
		report := make([]PendingOutput, 0, len(pending))
		for _, p := range pending {
			report = append(report, PendingOutput{
				Path:   p.Path.String(),
				Entity: p.Entity,
				Field:  p.Field,
			})
		}
		output, _ := json.MarshalIndent(report, "", "  ")
		fmt.Fprintln(stdout, string(output))
	} else if len(pending) == 0 {
		fmt.Fprintln(stdout, "Document is complete")
	} else {
		fmt.Fprintf(stdout, "%d pending field(s):\n", len(pending))
		for _, p := range pending {
			fmt.Fprintf(stdout, "  %s: %s.%s\n", p.Path, p.Entity, p.Field)
		}
	}

	if opts.Output != "" {
		output, err := doc.ToJSONIndent()
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding document: %v\n", err)
			return exitCommandError
		}
		if err := os.WriteFile(opts.Output, output, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
	}

	if len(pending) > 0 {
		return exitValidation
	}
	return exitSuccess
}

func parseAutocompleteArgs(args []string) (AutocompleteOptions, error) {
	fs := flag.NewFlagSet("autocomplete", flag.ContinueOnError)
	opts := AutocompleteOptions{}

	fs.StringVar(&opts.Output, "o", "", "Write the zero-filled document to a file")
	fs.StringVar(&opts.Output, "output", "", "Write the zero-filled document to a file")
	fs.BoolVar(&opts.JSON, "json", false, "Output the pending report as JSON")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.Input = remaining[0]
	}

	return opts, nil
}

func printAutocompleteUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: mas-convert autocomplete [options] <input-file>

Options:
  -o, --output   Write the zero-filled document to a file
  --json         Output the pending report as JSON

Examples:
  mas-convert autocomplete partial.json
  mas-convert autocomplete --json partial.json
  mas-convert autocomplete partial.json -o filled.json`)
}
