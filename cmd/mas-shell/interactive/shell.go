// Package interactive provides the interactive command loop for
// mas-shell.
package interactive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mas-protocol/mas-go/pkg/convert"
	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/store"
)

// Shell handles interactive mode for mas-shell.
type Shell struct {
	doc     *mas.Mas
	docPath string
	pending []convert.Pending
	history *store.Store
	rl      *readline.Instance
}

// New creates a new interactive shell. The design history store is
// optional; history commands are disabled when it is nil.
func New(history *store.Store) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mas> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{history: history, rl: rl}, nil
}

// Run starts the interactive command loop.
func (s *Shell) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "load", "l":
			s.cmdLoad(args)

		case "requirements", "req":
			s.cmdRequirements()

		case "points", "op":
			s.cmdPoints()

		case "magnetic", "mag":
			s.cmdMagnetic()

		case "outputs", "out":
			s.cmdOutputs()

		case "autocomplete", "ac":
			s.cmdAutocomplete()

		case "save":
			s.cmdSave(args)

		case "store":
			s.cmdStore(args)

		case "list", "ls":
			s.cmdList()

		case "get":
			s.cmdGet(args)

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
MAS Shell Commands:
  Document:
    load <file>        - Load a MAS document (JSON, YAML, or CBOR)
    requirements       - Show the design requirements
    points             - Show the operating points
    magnetic           - Show the magnetic description
    outputs            - Show the simulation outputs
    autocomplete       - Re-read the loaded file, reporting pending fields
    save <file>        - Save the document (format from extension)

  History:
    store <name>       - Save the document to the design history
    list               - List stored designs
    get <id>           - Load a design from the history

  General:
    help               - Show this help
    quit               - Exit`)
}

// Load reads a document from disk, replacing the current one.
// It is exported so main can preload a file given on the command line.
func (s *Shell) Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error reading file: %v\n", err)
		return
	}

	var doc *mas.Mas
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = mas.FromYAML(data)
	case ".cbor":
		doc, err = mas.FromCBOR(data)
	default:
		doc, err = mas.FromJSON(data)
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	s.doc = doc
	s.docPath = path
	s.pending = nil
	fmt.Fprintf(s.rl.Stdout(), "Loaded %s (%d operating point(s))\n",
		path, len(doc.Inputs.OperatingPoints))
}

func (s *Shell) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: load <file>")
		return
	}
	s.Load(args[0])
}

func (s *Shell) requireDoc() bool {
	if s.doc == nil {
		fmt.Fprintln(s.rl.Stdout(), "No document loaded (use 'load <file>')")
		return false
	}
	return true
}

func (s *Shell) cmdRequirements() {
	if !s.requireDoc() {
		return
	}

	req := s.doc.Inputs.DesignRequirements
	fmt.Fprintln(s.rl.Stdout(), "\nDesign Requirements")
	fmt.Fprintln(s.rl.Stdout(), "-------------------------------------------")
	if req.Name != nil {
		fmt.Fprintf(s.rl.Stdout(), "  Name:      %s\n", *req.Name)
	}
	if req.Topology != nil {
		fmt.Fprintf(s.rl.Stdout(), "  Topology:  %s\n", *req.Topology)
	}
	fmt.Fprintf(s.rl.Stdout(), "  Magnetizing inductance: %s\n",
		formatDimension(req.MagnetizingInductance))
	if len(req.TurnsRatios) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "  Turns ratios: none (inductor)")
	}
	for i, tr := range req.TurnsRatios {
		fmt.Fprintf(s.rl.Stdout(), "  Turns ratio %d: %s\n", i+1, formatDimension(tr))
	}
	if req.Insulation != nil && req.Insulation.InsulationType != nil {
		fmt.Fprintf(s.rl.Stdout(), "  Insulation: %s\n", *req.Insulation.InsulationType)
	}
	if req.MaximumDimensions != nil {
		d := req.MaximumDimensions
		fmt.Fprintf(s.rl.Stdout(), "  Max dimensions: %s x %s x %s m\n",
			formatOptFloat(d.Width), formatOptFloat(d.Height), formatOptFloat(d.Depth))
	}
	fmt.Fprintln(s.rl.Stdout())
}

func (s *Shell) cmdPoints() {
	if !s.requireDoc() {
		return
	}

	ops := s.doc.Inputs.OperatingPoints
	fmt.Fprintf(s.rl.Stdout(), "\nOperating Points (%d):\n", len(ops))
	fmt.Fprintln(s.rl.Stdout(), "-------------------------------------------")
	for i, op := range ops {
		name := fmt.Sprintf("point %d", i+1)
		if op.Name != nil {
			name = *op.Name
		}
		fmt.Fprintf(s.rl.Stdout(), "  %s\n", name)
		fmt.Fprintf(s.rl.Stdout(), "      Ambient: %.1f C\n", op.Conditions.AmbientTemperature)
		for j, exc := range op.ExcitationsPerWinding {
			label := fmt.Sprintf("winding %d", j+1)
			if exc.Name != nil {
				label = *exc.Name
			}
			fmt.Fprintf(s.rl.Stdout(), "      %s: %s\n", label, formatExcitation(exc))
		}
		fmt.Fprintln(s.rl.Stdout())
	}
}

func (s *Shell) cmdMagnetic() {
	if !s.requireDoc() {
		return
	}
	if s.doc.Magnetic == nil {
		fmt.Fprintln(s.rl.Stdout(), "No magnetic in document")
		return
	}

	mg := s.doc.Magnetic
	core := mg.Core.FunctionalDescription
	fmt.Fprintln(s.rl.Stdout(), "\nMagnetic")
	fmt.Fprintln(s.rl.Stdout(), "-------------------------------------------")
	if mg.Core.Name != nil {
		fmt.Fprintf(s.rl.Stdout(), "  Core:     %s\n", *mg.Core.Name)
	}
	fmt.Fprintf(s.rl.Stdout(), "  Material: %s\n", core.Material)
	fmt.Fprintf(s.rl.Stdout(), "  Shape:    %s\n", core.Shape.Name)
	fmt.Fprintf(s.rl.Stdout(), "  Gaps:     %d\n", len(core.Gapping))
	for _, w := range mg.Coil.FunctionalDescription {
		fmt.Fprintf(s.rl.Stdout(), "  Winding %s: %d turn(s), %d parallel(s), %s\n",
			w.Name, w.NumberTurns, w.NumberParallels, w.IsolationSide)
	}
	fmt.Fprintln(s.rl.Stdout())
}

func (s *Shell) cmdOutputs() {
	if !s.requireDoc() {
		return
	}
	if len(s.doc.Outputs) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No outputs in document")
		return
	}

	for i, out := range s.doc.Outputs {
		fmt.Fprintf(s.rl.Stdout(), "\nOutputs %d:\n", i+1)
		if out.CoreLosses != nil {
			fmt.Fprintf(s.rl.Stdout(), "  Core losses:    %.4f W\n", out.CoreLosses.CoreLosses)
			if out.CoreLosses.MagneticFluxDensityPeak != nil {
				fmt.Fprintf(s.rl.Stdout(), "  Peak flux:      %.4f T\n", *out.CoreLosses.MagneticFluxDensityPeak)
			}
			if out.CoreLosses.MaximumCoreTemperature != nil {
				fmt.Fprintf(s.rl.Stdout(), "  Core temp:      %.1f C\n", *out.CoreLosses.MaximumCoreTemperature)
			}
		}
		if out.WindingLosses != nil {
			fmt.Fprintf(s.rl.Stdout(), "  Winding losses: %.4f W\n", out.WindingLosses.WindingLosses)
		}
	}
	fmt.Fprintln(s.rl.Stdout())
}

func (s *Shell) cmdAutocomplete() {
	if s.docPath == "" {
		fmt.Fprintln(s.rl.Stdout(), "No file loaded (use 'load <file>')")
		return
	}
	if strings.ToLower(filepath.Ext(s.docPath)) != ".json" {
		fmt.Fprintln(s.rl.Stdout(), "Autocomplete reads JSON files")
		return
	}

	data, err := os.ReadFile(s.docPath)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error reading file: %v\n", err)
		return
	}

	doc, pending, err := mas.Autocomplete(data)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}

	s.doc = doc
	s.pending = pending
	if len(pending) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "Document is complete")
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "%d pending field(s):\n", len(pending))
	for _, p := range pending {
		fmt.Fprintf(s.rl.Stdout(), "  %s: %s.%s\n", p.Path, p.Entity, p.Field)
	}
}

func (s *Shell) cmdSave(args []string) {
	if !s.requireDoc() {
		return
	}

	path := s.docPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(s.rl.Stdout(), "Usage: save <file>")
		return
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = s.doc.ToYAML()
	case ".cbor":
		data, err = s.doc.ToCBOR()
	default:
		data, err = s.doc.ToJSONIndent()
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error encoding document: %v\n", err)
		return
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error writing file: %v\n", err)
		return
	}
	s.docPath = path
	fmt.Fprintf(s.rl.Stdout(), "Saved %s\n", path)
}

func (s *Shell) requireHistory() bool {
	if s.history == nil {
		fmt.Fprintln(s.rl.Stdout(), "No design history (start with --db <file>)")
		return false
	}
	return true
}

func (s *Shell) cmdStore(args []string) {
	if !s.requireDoc() || !s.requireHistory() {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: store <name>")
		return
	}

	name := strings.Join(args, " ")
	id, err := s.history.Save(name, s.doc)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Failed to store design: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Stored as %s\n", id)
}

func (s *Shell) cmdList() {
	if !s.requireHistory() {
		return
	}

	designs, err := s.history.List(20, 0)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Failed to list designs: %v\n", err)
		return
	}
	if len(designs) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No stored designs")
		return
	}

	fmt.Fprintf(s.rl.Stdout(), "\nStored Designs (%d):\n", len(designs))
	fmt.Fprintln(s.rl.Stdout(), "-------------------------------------------")
	for _, d := range designs {
		shortID := d.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		topology := d.Topology
		if topology == "" {
			topology = "-"
		}
		fmt.Fprintf(s.rl.Stdout(), "  %s  %-10s %-20s %s\n",
			shortID, d.Status, topology, d.Name)
	}
	fmt.Fprintln(s.rl.Stdout())
}

func (s *Shell) cmdGet(args []string) {
	if !s.requireHistory() {
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: get <id>")
		fmt.Fprintln(s.rl.Stdout(), "  Use 'list' to see stored designs")
		return
	}

	// Allow a short ID prefix.
	id := args[0]
	design, err := s.history.Get(id)
	if err == nil && design == nil {
		designs, listErr := s.history.List(100, 0)
		if listErr == nil {
			for _, d := range designs {
				if strings.HasPrefix(d.ID, id) {
					design, err = s.history.Get(d.ID)
					break
				}
			}
		}
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Failed to load design: %v\n", err)
		return
	}
	if design == nil {
		fmt.Fprintf(s.rl.Stdout(), "Design not found: %s\n", id)
		return
	}

	s.doc = design.Document
	s.docPath = ""
	s.pending = nil
	fmt.Fprintf(s.rl.Stdout(), "Loaded %q (%s)\n", design.Name, design.Status)
}

func formatDimension(d mas.DimensionWithTolerance) string {
	out := fmt.Sprintf("%g", d.Nominal)
	if d.Minimum != nil || d.Maximum != nil {
		out += fmt.Sprintf(" [%s, %s]", formatOptFloat(d.Minimum), formatOptFloat(d.Maximum))
	}
	return out
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return "?"
	}
	return fmt.Sprintf("%g", *f)
}

func formatExcitation(exc mas.OperatingPointExcitation) string {
	parts := []string{fmt.Sprintf("%.0f Hz", exc.Frequency)}
	if exc.Current != nil && exc.Current.Processed != nil {
		p := exc.Current.Processed
		desc := string(p.Label)
		if p.PeakToPeak != nil {
			desc += fmt.Sprintf(" %.3g App", *p.PeakToPeak)
		}
		parts = append(parts, "current "+desc)
	}
	if exc.Voltage != nil && exc.Voltage.Processed != nil {
		p := exc.Voltage.Processed
		desc := string(p.Label)
		if p.PeakToPeak != nil {
			desc += fmt.Sprintf(" %.3g Vpp", *p.PeakToPeak)
		}
		parts = append(parts, "voltage "+desc)
	}
	return strings.Join(parts, ", ")
}
