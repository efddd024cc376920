package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lwertel/gridpack/pkg/errors"
	"github.com/lwertel/gridpack/pkg/grid"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	want := []string{"big_number", "chart", "map", "table", "text"}
	if got := c.Types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Types = %v, want %v", got, want)
	}

	w, err := c.Lookup("chart")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if w.DefaultW != 6 || w.DefaultH != 4 {
		t.Errorf("chart default = %dx%d, want 6x4", w.DefaultW, w.DefaultH)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("nonexistent")
	if !errors.Is(err, errors.ErrCodeWidgetNotFound) {
		t.Errorf("Lookup error = %v, want WIDGET_NOT_FOUND", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	content := `
[[widget]]
type = "gauge"
title = "Gauge"
default_w = 4
default_h = 4
min_w = 2
min_h = 2
max_w = 8

[[widget]]
type = "log-stream"
title = "Log Stream"
default_w = 12
default_h = 6
min_w = 6
min_h = 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{"gauge", "log-stream"}
	if got := c.Types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Types = %v, want %v", got, want)
	}

	w, err := c.Lookup("gauge")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if w.MaxW != 8 {
		t.Errorf("gauge MaxW = %d, want 8", w.MaxW)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty catalog", ``},
		{"bad type name", "[[widget]]\ntype = \"Bad Type\"\ndefault_w = 4\ndefault_h = 4\n"},
		{"zero default size", "[[widget]]\ntype = \"gauge\"\ndefault_w = 0\ndefault_h = 4\n"},
		{"default below min", "[[widget]]\ntype = \"gauge\"\ndefault_w = 2\ndefault_h = 2\nmin_w = 4\n"},
		{"default above max", "[[widget]]\ntype = \"gauge\"\ndefault_w = 6\ndefault_h = 2\nmax_w = 4\n"},
		{
			"duplicate type",
			"[[widget]]\ntype = \"gauge\"\ndefault_w = 4\ndefault_h = 4\n" +
				"[[widget]]\ntype = \"gauge\"\ndefault_w = 2\ndefault_h = 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load should reject invalid catalog")
			}
		})
	}
}

func TestInstantiate(t *testing.T) {
	c := Default()

	r, err := c.Instantiate("table")
	if err != nil {
		t.Fatalf("Instantiate error: %v", err)
	}
	if !strings.HasPrefix(r.ID, "table-") {
		t.Errorf("ID = %q, want table- prefix", r.ID)
	}
	if r.W != 6 || r.H != 6 {
		t.Errorf("size = %dx%d, want 6x6", r.W, r.H)
	}
	if r.MinW != 4 || r.MinH != 3 {
		t.Errorf("min = %dx%d, want 4x3", r.MinW, r.MinH)
	}

	// IDs must be unique across instantiations.
	r2, _ := c.Instantiate("table")
	if r.ID == r2.ID {
		t.Error("Instantiate should mint unique IDs")
	}
}

func TestMinSizesFor(t *testing.T) {
	c := Default()

	a, _ := c.Instantiate("chart")
	b, _ := c.Instantiate("big_number")
	foreign := grid.Rect{ID: "custom", W: 2, H: 2}

	table := c.MinSizesFor(grid.Layout{a, b, foreign})

	if table[a.ID] != (grid.MinSize{W: 3, H: 2}) {
		t.Errorf("chart min = %v, want {3 2}", table[a.ID])
	}
	if table[b.ID] != (grid.MinSize{W: 2, H: 2}) {
		t.Errorf("big_number min = %v, want {2 2}", table[b.ID])
	}
	if _, ok := table["custom"]; ok {
		t.Error("rects minted outside the catalog should be skipped")
	}
}
