package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalMas = `{
	"inputs": {
		"designRequirements": {
			"name": "Test Choke",
			"magnetizingInductance": {"nominal": 1.0e-4},
			"turnsRatios": []
		},
		"operatingPoints": [{
			"conditions": {"ambientTemperature": 25},
			"excitationsPerWinding": [{
				"frequency": 100000,
				"current": {"processed": {"label": "Triangular", "offset": 0, "peakToPeak": 10}}
			}]
		}]
	}
}`

const minimalTas = `{
	"metadata": {"name": "buck-12v"},
	"inputs": {
		"requirements": {"v_in_min": 18, "v_in_max": 32, "v_out": 12, "i_out_max": 3}
	}
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestRunValidate_ValidFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunValidate([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "OK") {
		t.Errorf("expected OK in output, got: %s", stdout.String())
	}
}

func TestRunValidate_InvalidFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "broken.json", `{"inputs": {}}`)
	exitCode := RunValidate([]string{path}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d (validation failed), got %d", exitValidation, exitCode)
	}
	if !strings.Contains(stdout.String(), "FAILED") {
		t.Errorf("expected FAILED in output, got: %s", stdout.String())
	}
}

func TestRunValidate_NoFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunValidate([]string{}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
	if !strings.Contains(stderr.String(), "no files specified") {
		t.Errorf("expected 'no files specified' in stderr, got: %s", stderr.String())
	}
}

func TestRunValidate_TasSchema(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "converter.json", minimalTas)
	exitCode := RunValidate([]string{"--schema", "tas", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
		t.Logf("stderr: %s", stderr.String())
	}
}

func TestRunValidate_UnknownSchema(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunValidate([]string{"--schema", "bogus", path}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestRunValidate_JSONOutput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunValidate([]string{"--json", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Errorf("expected exit code %d, got %d", exitSuccess, exitCode)
	}
	if !strings.Contains(stdout.String(), `"valid"`) {
		t.Errorf("expected JSON output with 'valid' field, got: %s", stdout.String())
	}
}

func TestRunConvert_ToStdout(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunConvert([]string{"--to", "yaml", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "magnetizingInductance") {
		t.Errorf("expected YAML output with schema keys, got: %s", stdout.String())
	}
}

func TestRunConvert_ToFile(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	input := writeTempFile(t, "design.json", minimalMas)
	output := filepath.Join(t.TempDir(), "design.cbor")
	exitCode := RunConvert([]string{"-o", output, input}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty CBOR output")
	}

	// CBOR output round-trips back to JSON.
	stdout.Reset()
	exitCode = RunConvert([]string{"--to", "json", output}, stdout, stderr)
	if exitCode != exitSuccess {
		t.Fatalf("expected CBOR input to convert back, got exit %d\nstderr: %s", exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"nominal": 0.0001`) {
		t.Errorf("expected round-tripped JSON, got: %s", stdout.String())
	}
}

func TestRunConvert_CollapsesNull(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	withNull := strings.Replace(minimalMas, `"turnsRatios": []`, `"turnsRatios": [], "market": null`, 1)
	path := writeTempFile(t, "design.json", withNull)
	exitCode := RunConvert([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	if strings.Contains(stdout.String(), "market") {
		t.Errorf("expected explicit null to be omitted, got: %s", stdout.String())
	}
}

func TestRunConvert_NoInput(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := RunConvert([]string{}, stdout, stderr)

	if exitCode != exitCommandError {
		t.Errorf("expected exit code %d, got %d", exitCommandError, exitCode)
	}
}

func TestRunConvert_TasCBORUnsupported(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "converter.json", minimalTas)
	exitCode := RunConvert([]string{"--schema", "tas", "--to", "cbor", path}, stdout, stderr)

	if exitCode != exitValidation {
		t.Errorf("expected exit code %d, got %d", exitValidation, exitCode)
	}
}

func TestRunShow_TextFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunShow([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Test Choke") {
		t.Errorf("expected design name in output, got: %s", out)
	}
	if !strings.Contains(out, "Operating points: 1") {
		t.Errorf("expected operating point count in output, got: %s", out)
	}
}

func TestRunShow_JSONFormat(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunShow([]string{"--format", "json", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"designRequirements"`) {
		t.Errorf("expected canonical JSON dump, got: %s", stdout.String())
	}
}

func TestRunShow_TasDefaults(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "converter.json", minimalTas)
	exitCode := RunShow([]string{"--schema", "tas", path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "buck-12v") {
		t.Errorf("expected document name in output, got: %s", out)
	}
	if !strings.Contains(out, "Target efficiency: 90%") {
		t.Errorf("expected default efficiency target in output, got: %s", out)
	}
}

func TestRunAutocomplete_ReportsPending(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	partial := `{
		"inputs": {
			"designRequirements": {"turnsRatios": []},
			"operatingPoints": []
		}
	}`
	path := writeTempFile(t, "partial.json", partial)
	exitCode := RunAutocomplete([]string{path}, stdout, stderr)

	if exitCode != exitValidation {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitValidation, exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "magnetizingInductance") {
		t.Errorf("expected pending magnetizingInductance, got: %s", stdout.String())
	}
}

func TestRunAutocomplete_CompleteDocument(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	path := writeTempFile(t, "design.json", minimalMas)
	exitCode := RunAutocomplete([]string{path}, stdout, stderr)

	if exitCode != exitSuccess {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitSuccess, exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "complete") {
		t.Errorf("expected completeness message, got: %s", stdout.String())
	}
}

func TestRunAutocomplete_WritesZeroFilled(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	partial := `{
		"inputs": {
			"designRequirements": {"turnsRatios": []},
			"operatingPoints": []
		}
	}`
	input := writeTempFile(t, "partial.json", partial)
	output := filepath.Join(t.TempDir(), "filled.json")
	exitCode := RunAutocomplete([]string{"-o", output, input}, stdout, stderr)

	if exitCode != exitValidation {
		t.Fatalf("expected exit code %d, got %d\nstderr: %s", exitValidation, exitCode, stderr.String())
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected zero-filled output file: %v", err)
	}
	if !strings.Contains(string(data), `"magnetizingInductance"`) {
		t.Errorf("expected zero-filled magnetizingInductance key, got: %s", data)
	}
}
