package recordfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/luccavalentin/vanderleideploy-sub000/internal/domain/recurrence"
)

// Format identifies a record file encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// envelope is the object form of JSON and YAML batches.
type envelope struct {
	Records []recurrence.RawRecord `json:"records" yaml:"records"`
}

// FormatOf infers the format from a file name extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported record file %q: expected .xlsx, .json, .yaml or .yml", path)
	}
}

// LoadFile reads raw records from path, picking the decoder by extension.
func LoadFile(path string) ([]recurrence.RawRecord, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Read(f, format)
}

// Read decodes raw records from r in the given format.
func Read(r io.Reader, format Format) ([]recurrence.RawRecord, error) {
	switch format {
	case FormatXLSX:
		return ReadSpreadsheet(r)
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("unsupported record format %q", format)
	}
}

// ReadJSON decodes either a bare array of records or {"records": [...]}.
func ReadJSON(r io.Reader) ([]recurrence.RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raws []recurrence.RawRecord
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
		return raws, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return env.Records, nil
}

// ReadYAML decodes either a sequence of records or a mapping with a records key.
func ReadYAML(r io.Reader) ([]recurrence.RawRecord, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	if root.Kind == yaml.SequenceNode {
		var raws []recurrence.RawRecord
		if err := root.Decode(&raws); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		return raws, nil
	}

	var env envelope
	if err := root.Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return env.Records, nil
}
