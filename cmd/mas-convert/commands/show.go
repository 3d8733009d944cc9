package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/tas"
)

// ShowOptions configures the show command.
type ShowOptions struct {
	Input  string
	Schema string
	Format string // text, json, or yaml
}

// RunShow runs the show command.
func RunShow(args []string, stdout, stderr io.Writer) int {
	opts, err := parseShowArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printShowUsage(stderr)
		return exitCommandError
	}
	if err := validSchema(opts.Schema); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return exitCommandError
	}

	format := detectFormat(opts.Input)

	if opts.Schema == schemaTas {
		doc, err := decodeTas(data, format)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitValidation
		}
		return showTas(doc, opts.Format, stdout, stderr)
	}

	doc, err := decodeMas(data, format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitValidation
	}
	return showMas(doc, opts.Format, stdout, stderr)
}

func showMas(doc *mas.Mas, format string, stdout, stderr io.Writer) int {
	switch format {
	case "json", "yaml":
		output, err := encodeMas(doc, format, true)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		stdout.Write(output)
		fmt.Fprintln(stdout)
		return exitSuccess
	case "", "text":
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", format)
		return exitCommandError
	}

	req := doc.Inputs.DesignRequirements
	fmt.Fprintln(stdout, "MAS document")
	if req.Name != nil {
		fmt.Fprintf(stdout, "  Name:      %s\n", *req.Name)
	}
	if req.Topology != nil {
		fmt.Fprintf(stdout, "  Topology:  %s\n", *req.Topology)
	}
	fmt.Fprintf(stdout, "  Magnetizing inductance: %s\n", dimensionString(req.MagnetizingInductance))
	fmt.Fprintf(stdout, "  Turns ratios: %d\n", len(req.TurnsRatios))
	for i, tr := range req.TurnsRatios {
		fmt.Fprintf(stdout, "    [%d] %s\n", i, dimensionString(tr))
	}

	fmt.Fprintf(stdout, "  Operating points: %d\n", len(doc.Inputs.OperatingPoints))
	for i, op := range doc.Inputs.OperatingPoints {
		name := fmt.Sprintf("point %d", i)
		if op.Name != nil {
			name = *op.Name
		}
		fmt.Fprintf(stdout, "    %s: ambient %.1f C, %d winding(s)\n",
			name, op.Conditions.AmbientTemperature, len(op.ExcitationsPerWinding))
		for j, exc := range op.ExcitationsPerWinding {
			fmt.Fprintf(stdout, "      winding %d: %.0f Hz\n", j, exc.Frequency)
		}
	}

	if doc.Magnetic != nil {
		core := doc.Magnetic.Core.FunctionalDescription
		fmt.Fprintf(stdout, "  Magnetic: core %s / %s, %d winding(s)\n",
			core.Material, core.Shape.Name, len(doc.Magnetic.Coil.FunctionalDescription))
	}
	if len(doc.Outputs) > 0 {
		fmt.Fprintf(stdout, "  Outputs: %d result set(s)\n", len(doc.Outputs))
	}

	return exitSuccess
}

func showTas(doc *tas.Document, format string, stdout, stderr io.Writer) int {
	switch format {
	case "json", "yaml":
		output, err := encodeTas(doc, format, true)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		stdout.Write(output)
		fmt.Fprintln(stdout)
		return exitSuccess
	case "", "text":
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", format)
		return exitCommandError
	}

	req := doc.Inputs.Requirements
	fmt.Fprintln(stdout, "TAS document")
	fmt.Fprintf(stdout, "  Name:     %s (v%s)\n", doc.Metadata.Name, doc.Metadata.Version)
	if doc.Metadata.Description != "" {
		fmt.Fprintf(stdout, "  About:    %s\n", doc.Metadata.Description)
	}
	fmt.Fprintf(stdout, "  Input:    %.1f-%.1f V\n", req.VinMin, req.VinMax)
	fmt.Fprintf(stdout, "  Output:   %.1f V, %.1f A max\n", req.Vout, req.IoutMax)
	fmt.Fprintf(stdout, "  Target efficiency: %.0f%%\n", req.EfficiencyTarget*100)

	fmt.Fprintf(stdout, "  Operating points: %d\n", len(doc.Inputs.OperatingPoints))
	for _, op := range doc.Inputs.OperatingPoints {
		fmt.Fprintf(stdout, "    %s: %.0f Hz, %s, %d waveform(s)\n",
			op.Name, op.Frequency, op.Mode, len(op.Waveforms))
	}

	if !doc.Components.Empty() {
		c := doc.Components
		fmt.Fprintf(stdout, "  Components: %d inductor(s), %d capacitor(s), %d switch(es), %d diode(s), %d magnetic(s)\n",
			len(c.Inductors), len(c.Capacitors), len(c.Switches), len(c.Diodes), len(c.Magnetics))
	}
	if doc.Outputs != nil && doc.Outputs.Losses != nil {
		fmt.Fprintf(stdout, "  Total losses: %.3f W\n", doc.Outputs.Losses.Total())
	}

	return exitSuccess
}

func dimensionString(d mas.DimensionWithTolerance) string {
	s := fmt.Sprintf("%g", d.Nominal)
	if d.Minimum != nil || d.Maximum != nil {
		min, max := "?", "?"
		if d.Minimum != nil {
			min = fmt.Sprintf("%g", *d.Minimum)
		}
		if d.Maximum != nil {
			max = fmt.Sprintf("%g", *d.Maximum)
		}
		s += fmt.Sprintf(" [%s, %s]", min, max)
	}
	return s
}

func parseShowArgs(args []string) (ShowOptions, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	opts := ShowOptions{}

	fs.StringVar(&opts.Schema, "schema", schemaMas, "Document schema (mas or tas)")
	fs.StringVar(&opts.Format, "format", "text", "Output format: text, json, or yaml")

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

func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: mas-convert show [options] <input-file>

Options:
  --schema   Document schema: mas or tas [default: mas]
  --format   Output format: text, json, or yaml [default: text]

Examples:
  mas-convert show design.json
  mas-convert show --format yaml design.json
  mas-convert show --schema tas converter.yaml`)
}
