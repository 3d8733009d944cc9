// mas-convert is a CLI tool for validating, converting, and inspecting
// MAS and TAS design documents.
package main

import (
	"fmt"
	"os"

	"github.com/mas-protocol/mas-go/cmd/mas-convert/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "autocomplete":
		exitCode = commands.RunAutocomplete(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("mas-convert version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`mas-convert - MAS/TAS document validation and conversion tool

Usage:
  mas-convert <command> [options] [files...]

Commands:
  validate      Decode documents strictly and report errors
  convert       Convert documents between JSON, YAML, and CBOR
  show          Display a document summary or its canonical form
  autocomplete  Report the pending required fields of a partial document

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  mas-convert validate design.json
  mas-convert validate --schema tas converter.yaml
  mas-convert convert design.yaml -o design.cbor
  mas-convert show --format json design.json
  mas-convert autocomplete partial.json

For command-specific help, run:
  mas-convert <command> --help`)
}
