package coverage

import (
	"fmt"
	"iter"
)

// Model is an immutable snapshot of coverage measurements. Units keep the
// order they were supplied in at load time.
type Model struct {
	units  []SourceUnit
	byPath map[string]int
}

// Load validates records and builds a Model. It fails with
// *MalformedRecordError on an empty path, a negative count, a covered
// count exceeding its total, or a duplicated path. Validation is
// wholesale: no model is returned alongside an error.
func Load(records []Record) (*Model, error) {
	m := &Model{
		units:  make([]SourceUnit, 0, len(records)),
		byPath: make(map[string]int, len(records)),
	}

	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, err
		}
		if _, dup := m.byPath[rec.Path]; dup {
			return nil, &MalformedRecordError{Path: rec.Path, Reason: "duplicate path"}
		}
		m.byPath[rec.Path] = len(m.units)
		m.units = append(m.units, SourceUnit{
			Path:            rec.Path,
			TotalLines:      rec.TotalLines,
			CoveredLines:    rec.CoveredLines,
			TotalBranches:   rec.TotalBranches,
			CoveredBranches: rec.CoveredBranches,
			Category:        rec.Category,
		})
	}

	return m, nil
}

func validateRecord(rec Record) error {
	if rec.Path == "" {
		return &MalformedRecordError{Path: rec.Path, Reason: "empty path"}
	}
	if rec.TotalLines < 0 || rec.CoveredLines < 0 || rec.TotalBranches < 0 || rec.CoveredBranches < 0 {
		return &MalformedRecordError{Path: rec.Path, Reason: "negative count"}
	}
	if rec.CoveredLines > rec.TotalLines {
		return &MalformedRecordError{
			Path:   rec.Path,
			Reason: fmt.Sprintf("covered lines %d exceed total %d", rec.CoveredLines, rec.TotalLines),
		}
	}
	if rec.CoveredBranches > rec.TotalBranches {
		return &MalformedRecordError{
			Path:   rec.Path,
			Reason: fmt.Sprintf("covered branches %d exceed total %d", rec.CoveredBranches, rec.TotalBranches),
		}
	}
	return nil
}

// Unit returns the unit for path, or *UnitNotFoundError.
func (m *Model) Unit(path string) (SourceUnit, error) {
	idx, ok := m.byPath[path]
	if !ok {
		return SourceUnit{}, &UnitNotFoundError{Path: path}
	}
	return m.units[idx], nil
}

// All yields units in load order. The sequence is restartable: every
// range over it yields the same units in the same order.
func (m *Model) All() iter.Seq[SourceUnit] {
	return func(yield func(SourceUnit) bool) {
		for _, u := range m.units {
			if !yield(u) {
				return
			}
		}
	}
}

// Len returns the number of units in the model.
func (m *Model) Len() int {
	return len(m.units)
}
