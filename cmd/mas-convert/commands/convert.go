package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string // Empty means stdout
	Schema string
	To     string // Empty means infer from output extension
}

// RunConvert runs the convert command.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}
	if err := validSchema(opts.Schema); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	target := opts.To
	if target == "" {
		if opts.Output == "" || opts.Output == "-" {
			target = formatJSON
		} else {
			target = detectFormat(opts.Output)
		}
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return exitCommandError
	}

	// Round-trip through the typed document so output is canonical:
	// keys in schema order, explicit nulls collapsed to omitted.
	output, err := roundTrip(data, detectFormat(opts.Input), target, opts.Schema)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}

	if opts.Output == "" || opts.Output == "-" {
		stdout.Write(output)
		if target != formatCBOR {
			fmt.Fprintln(stdout)
		}
	} else {
		if err := os.WriteFile(opts.Output, output, 0644); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		fmt.Fprintf(stdout, "Converted %s -> %s\n", opts.Input, opts.Output)
	}

	return exitSuccess
}

func roundTrip(data []byte, from, to, schema string) ([]byte, error) {
	if schema == schemaTas {
		doc, err := decodeTas(data, from)
		if err != nil {
			return nil, err
		}
		return encodeTas(doc, to, true)
	}
	doc, err := decodeMas(data, from)
	if err != nil {
		return nil, err
	}
	return encodeMas(doc, to, true)
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	opts := ConvertOptions{}

	fs.StringVar(&opts.Output, "o", "", "Output file (default: stdout)")
	fs.StringVar(&opts.Output, "output", "", "Output file")
	fs.StringVar(&opts.Schema, "schema", schemaMas, "Document schema (mas or tas)")
	fs.StringVar(&opts.To, "to", "", "Target format: json, yaml, or cbor (default: from output extension)")

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

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: mas-convert convert [options] <input-file>

Options:
  -o, --output   Output file (default: stdout)
  --schema       Document schema: mas or tas [default: mas]
  --to           Target format: json, yaml, or cbor (default: from output extension)

Examples:
  mas-convert convert design.yaml -o design.json
  mas-convert convert design.json -o design.cbor
  mas-convert convert --schema tas --to yaml converter.json`)
}
