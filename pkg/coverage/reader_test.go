package coverage

import (
	"testing"
)

func TestIsRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{
			name: "valid records document",
			data: `{"$schema":"covplan-records","tool":"coverage.py","records":[]}`,
			want: true,
		},
		{
			name: "records with trailing text",
			data: `{"$schema":"covplan-records","records":[]}
TOTAL 1423 89%`,
			want: true,
		},
		{
			name: "wrong schema",
			data: `{"$schema":"lintkit-check","tool":"test"}`,
			want: false,
		},
		{
			name: "empty object",
			data: `{}`,
			want: false,
		},
		{
			name: "not json",
			data: `not json at all`,
			want: false,
		},
		{
			name: "empty",
			data: ``,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRecords([]byte(tt.data))
			if got != tt.want {
				t.Errorf("IsRecords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBytes(t *testing.T) {
	data := []byte(`{
		"$schema": "covplan-records",
		"tool": "coverage.py",
		"records": [
			{"path": "svc/handler.py", "total_lines": 120, "covered_lines": 96, "total_branches": 30, "covered_branches": 24, "category": "core-logic"},
			{"path": "svc/retry.py", "total_lines": 40, "covered_lines": 30, "category": "error-handling"}
		]
	}`)

	m, err := ReadBytes(data)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}

	u, err := m.Unit("svc/handler.py")
	if err != nil {
		t.Fatalf("Unit() error = %v", err)
	}
	if u.Category != CategoryCoreLogic {
		t.Errorf("Category = %q, want %q", u.Category, CategoryCoreLogic)
	}
	if u.TotalBranches != 30 {
		t.Errorf("TotalBranches = %d, want 30", u.TotalBranches)
	}
}

func TestReadBytes_RejectsWrongSchema(t *testing.T) {
	_, err := ReadBytes([]byte(`{"$schema":"something-else","records":[]}`))
	if err == nil {
		t.Fatal("ReadBytes() expected schema error, got nil")
	}
}

func TestReadBytes_RejectsMalformedRecord(t *testing.T) {
	data := []byte(`{
		"$schema": "covplan-records",
		"records": [
			{"path": "ok.py", "total_lines": 10, "covered_lines": 10},
			{"path": "bad.py", "total_lines": 3, "covered_lines": 5}
		]
	}`)

	m, err := ReadBytes(data)
	if err == nil {
		t.Fatal("ReadBytes() expected error for covered > total")
	}
	if m != nil {
		t.Error("ReadBytes() returned a model alongside an error")
	}
}

func TestExtractRecords(t *testing.T) {
	data := []byte(`{"$schema":"covplan-records","records":[]}trailing garbage`)

	extracted := ExtractRecords(data)
	if string(extracted) != `{"$schema":"covplan-records","records":[]}` {
		t.Errorf("ExtractRecords() = %q, want JSON without trailing text", string(extracted))
	}
}
