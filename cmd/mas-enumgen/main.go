// mas-enumgen generates closed wire-enum tables from a YAML
// definition file. The output matches the hand-written enum style:
// a string type, a const block with the registered spellings, and a
// convert.NewEnum literal table.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	inputPath := flag.String("input", "data/enums.yaml", "Path to the enum definition YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	flag.Parse()

	if *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: mas-enumgen -input <yaml> -output <file.go>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*inputPath, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	file, err := LoadEnumFile(inputPath)
	if err != nil {
		return fmt.Errorf("loading enum definitions: %w", err)
	}

	code, err := Generate(file)
	if err != nil {
		return fmt.Errorf("generating enums: %w", err)
	}

	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s\n", outputPath)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
