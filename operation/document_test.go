package operation

import "testing"

func TestMapDocumentGetPath(t *testing.T) {
	doc := MapDocument{
		"Name":        "bucket",
		"IsTruncated": true,
		"Contents": []any{
			map[string]any{"Key": "a"},
			map[string]any{"Key": "b"},
		},
		"Result": map[string]any{
			"NextMarker": "m1",
			"Nested":     map[string]any{"Deep": 42},
		},
		"Empty": nil,
	}

	tests := []struct {
		path string
		want any
	}{
		{"Name", "bucket"},
		{"IsTruncated", true},
		{"Result.NextMarker", "m1"},
		{"Result.Nested.Deep", 42},
		{"Contents.0.Key", "a"},
		{"Contents.1.Key", "b"},
		{"Empty", nil},
		{"Missing", nil},
		{"Result.Missing", nil},
		{"Contents.2.Key", nil},
		{"Contents.x.Key", nil},
		{"Name.Nested", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := doc.GetPath(tt.path); got != tt.want {
			t.Errorf("GetPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMapDocumentGetPathSlice(t *testing.T) {
	doc := MapDocument{"Items": []any{"a", "b", "c"}}

	got := doc.GetPath("Items")
	items, ok := got.([]any)
	if !ok {
		t.Fatalf("GetPath(Items) = %T, want []any", got)
	}
	if len(items) != 3 {
		t.Errorf("len(items) = %d, want 3", len(items))
	}
}
