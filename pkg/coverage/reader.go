package coverage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SchemaID is the identifier for the covplan records format.
const SchemaID = "covplan-records"

// Document is the on-disk shape of a records file.
type Document struct {
	Schema  string   `json:"$schema"`
	Tool    string   `json:"tool,omitempty"`
	Records []Record `json:"records"`
}

// ReadFile parses a records file from disk and loads it into a Model.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a records document from an io.Reader and loads it.
func Read(r io.Reader) (*Model, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode records document: %w", err)
	}
	if doc.Schema != SchemaID {
		return nil, fmt.Errorf("invalid schema: expected %q, got %q", SchemaID, doc.Schema)
	}
	return Load(doc.Records)
}

// ReadBytes parses a records document from a byte slice and loads it.
func ReadBytes(data []byte) (*Model, error) {
	return Read(bytes.NewReader(data))
}

// IsRecords checks if data looks like a covplan records document.
// Returns true if the $schema field equals "covplan-records".
func IsRecords(data []byte) bool {
	extracted := ExtractRecords(data)
	if extracted == nil {
		return false
	}

	var probe struct {
		Schema string `json:"$schema"`
	}
	if err := json.Unmarshal(extracted, &probe); err != nil {
		return false
	}
	return probe.Schema == SchemaID
}

// ExtractRecords extracts the records JSON from data that may have
// trailing text (coverage tools sometimes append a summary after the
// document). Counts braces to find the end of the top-level object.
func ExtractRecords(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	depth := 0
	for i, b := range data {
		switch b {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}
	return nil
}
