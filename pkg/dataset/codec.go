package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/observability"
)

//go:embed elements.toml
var embedded []byte

// Format is a dataset serialization format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// ParseFormat parses a format name or file extension, case-insensitively.
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported dataset format %q (want toml, yaml or json)", s)
}

// document is the top-level layout shared by all formats.
type document struct {
	Elements []Record `toml:"element" yaml:"elements" json:"elements"`
}

// Default returns the embedded seed: the 118 named elements.
func Default() ([]Record, error) {
	return load(bytes.NewReader(embedded), FormatTOML, "embedded")
}

// Load decodes records from r in format f.
func Load(r io.Reader, f Format) ([]Record, error) {
	return load(r, f, string(f))
}

// LoadFile decodes the dataset at path. The format follows the file
// extension.
func LoadFile(path string) ([]Record, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "dataset %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return load(file, f, path)
}

func load(r io.Reader, f Format, source string) (records []Record, err error) {
	start := time.Now()
	defer func() {
		observability.Dataset().OnLoad(source, len(records), time.Since(start), err)
	}()

	var doc document
	switch f {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
		if err == io.EOF {
			err = nil
		}
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	default:
		_, err = ParseFormat(string(f))
		return nil, err
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDataset, err, "decode %s dataset", f)
	}
	return doc.Elements, nil
}

// Write encodes records to w in format f.
func Write(w io.Writer, records []Record, f Format) error {
	doc := document{Elements: records}
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		_, err := ParseFormat(string(f))
		return err
	}
	return nil
}

// WriteFile writes records to path, choosing the format from the extension.
func WriteFile(path string, records []Record) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(file, records, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
