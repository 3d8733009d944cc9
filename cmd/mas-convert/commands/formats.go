package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mas-protocol/mas-go/pkg/mas"
	"github.com/mas-protocol/mas-go/pkg/tas"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

const (
	schemaMas = "mas"
	schemaTas = "tas"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatCBOR = "cbor"
)

// detectFormat infers a wire format from a file extension. JSON is the
// default for unknown extensions and stdout.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	case ".cbor":
		return formatCBOR
	default:
		return formatJSON
	}
}

func validSchema(schema string) error {
	switch schema {
	case schemaMas, schemaTas:
		return nil
	}
	return fmt.Errorf("unknown schema %q (want mas or tas)", schema)
}

func decodeMas(data []byte, format string) (*mas.Mas, error) {
	switch format {
	case formatJSON:
		return mas.FromJSON(data)
	case formatYAML:
		return mas.FromYAML(data)
	case formatCBOR:
		return mas.FromCBOR(data)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func encodeMas(doc *mas.Mas, format string, indent bool) ([]byte, error) {
	switch format {
	case formatJSON:
		if indent {
			return doc.ToJSONIndent()
		}
		return doc.ToJSON()
	case formatYAML:
		return doc.ToYAML()
	case formatCBOR:
		return doc.ToCBOR()
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func decodeTas(data []byte, format string) (*tas.Document, error) {
	switch format {
	case formatJSON:
		return tas.FromJSON(data)
	case formatYAML:
		return tas.FromYAML(data)
	case formatCBOR:
		return nil, fmt.Errorf("CBOR is not supported for TAS documents")
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func encodeTas(doc *tas.Document, format string, indent bool) ([]byte, error) {
	switch format {
	case formatJSON:
		if indent {
			return doc.ToJSONIndent()
		}
		return doc.ToJSON()
	case formatYAML:
		return doc.ToYAML()
	case formatCBOR:
		return nil, fmt.Errorf("CBOR is not supported for TAS documents")
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
