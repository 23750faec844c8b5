package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dkoosis/covplan/pkg/coverage"
)

// SchemaID is the identifier for the covplan worklist format.
const SchemaID = "covplan-worklist"

// Worklist is the ordered gap sequence produced by one planning run.
// It is never mutated after Plan returns; serializing and reading it
// back preserves content and order.
type Worklist struct {
	Gaps []Gap `json:"gaps"`
}

// Empty reports whether the worklist contains no gaps at all, i.e. every
// unit and the aggregate meet their targets.
func (w Worklist) Empty() bool {
	return len(w.Gaps) == 0
}

// document is the on-disk envelope.
type document struct {
	Schema string `json:"$schema"`
	Gaps   []Gap  `json:"gaps"`
}

// Write encodes the worklist to w. The encoding is deterministic: no
// timestamps, no run identifiers, field order fixed by the struct.
func (w Worklist) Write(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Schema: SchemaID, Gaps: w.Gaps}); err != nil {
		return fmt.Errorf("encode worklist: %w", err)
	}
	return nil
}

// WriteFile writes the worklist to path.
func (w Worklist) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create worklist file: %w", err)
	}
	defer f.Close()

	return w.Write(f)
}

// Read parses a worklist document from r.
func Read(r io.Reader) (Worklist, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Worklist{}, fmt.Errorf("decode worklist: %w", err)
	}
	if doc.Schema != SchemaID {
		return Worklist{}, fmt.Errorf("invalid schema: expected %q, got %q", SchemaID, doc.Schema)
	}
	return Worklist{Gaps: doc.Gaps}, nil
}

// ReadBytes parses a worklist document from a byte slice.
func ReadBytes(data []byte) (Worklist, error) {
	return Read(bytes.NewReader(data))
}

// ReadFile parses a worklist file from disk.
func ReadFile(path string) (Worklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return Worklist{}, fmt.Errorf("open worklist file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// IsWorklist checks if data looks like a covplan worklist document.
func IsWorklist(data []byte) bool {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return false
	}
	var probe struct {
		Schema string `json:"$schema"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Schema == SchemaID
}

// Stats aggregates a worklist for summaries and exit-code decisions.
type Stats struct {
	TotalGaps    int
	UnitGaps     int
	HasSummary   bool
	WorstDeficit float64
	ByCategory   map[coverage.Category]int
}

// ComputeStats calculates aggregate statistics from a worklist.
func ComputeStats(w Worklist) Stats {
	stats := Stats{
		ByCategory: make(map[coverage.Category]int),
	}

	for _, g := range w.Gaps {
		stats.TotalGaps++
		if g.Summary() {
			stats.HasSummary = true
		} else {
			stats.UnitGaps++
			stats.ByCategory[g.Category]++
		}
		if g.Deficit > stats.WorstDeficit {
			stats.WorstDeficit = g.Deficit
		}
	}

	return stats
}
