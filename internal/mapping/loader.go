package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion is returned for mapping files of another schema version.
var ErrUnsupportedVersion = errors.New("unsupported mapping schema version")

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mf, nil
}

// Parse parses YAML data into a MappingFile. Unknown keys are rejected.
// An empty document is an empty mapping file.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&mf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&mf)

	if mf.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, mf.Version)
	}

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = SchemaVersion
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(mf); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// NormalizeTypeMapping expands the 121 shorthand and the exclude list into
// Fields entries, so that every correspondence is in canonical form.
// 121 entries go first, excludes last.
func NormalizeTypeMapping(tm *TypeMapping) {
	fields := make([]FieldMapping, 0, len(tm.OneToOne)+len(tm.Fields)+len(tm.Exclude))

	for _, p := range tm.OneToOne {
		fields = append(fields, FieldMapping{Source: p.Source, Target: p.Target})
	}

	fields = append(fields, tm.Fields...)

	for _, name := range tm.Exclude {
		fields = append(fields, FieldMapping{Source: name, Target: name, Excluded: true})
	}

	tm.OneToOne = nil
	tm.Exclude = nil
	tm.Fields = fields
}

// NormalizeMappingFile normalizes all type mappings in a file.
func NormalizeMappingFile(mf *MappingFile) {
	for i := range mf.TypeMappings {
		NormalizeTypeMapping(&mf.TypeMappings[i])
	}
}

// fieldsOf returns the canonical field list of tm without modifying it.
func fieldsOf(tm *TypeMapping) []FieldMapping {
	c := *tm
	NormalizeTypeMapping(&c)

	return c.Fields
}
