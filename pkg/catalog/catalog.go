// Package catalog defines the widget catalog: the set of widget types a
// dashboard may contain, with their default and minimum grid sizes.
//
// A catalog can be loaded from a TOML file so deployments can define
// their own widget palette, or built from the compiled-in defaults.
// Instantiate mints new widgets with unique identifiers, and
// MinSizesFor exports the per-rect shrink floors consumed by the
// layout engine.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/lwertel/gridpack/pkg/errors"
	"github.com/lwertel/gridpack/pkg/grid"
)

// Widget describes one widget type available for placement.
type Widget struct {
	Type     string `toml:"type" json:"type"`
	Title    string `toml:"title" json:"title"`
	DefaultW int    `toml:"default_w" json:"default_w"`
	DefaultH int    `toml:"default_h" json:"default_h"`
	MinW     int    `toml:"min_w" json:"min_w"`
	MinH     int    `toml:"min_h" json:"min_h"`
	MaxW     int    `toml:"max_w,omitempty" json:"max_w,omitempty"`
	MaxH     int    `toml:"max_h,omitempty" json:"max_h,omitempty"`
}

// Catalog is a set of widget types keyed by type name.
type Catalog struct {
	widgets map[string]Widget
}

// catalogFile is the on-disk TOML shape.
type catalogFile struct {
	Widgets []Widget `toml:"widget"`
}

// Default returns the compiled-in widget catalog.
func Default() *Catalog {
	c := &Catalog{widgets: make(map[string]Widget)}
	for _, w := range []Widget{
		{Type: "chart", Title: "Chart", DefaultW: 6, DefaultH: 4, MinW: 3, MinH: 2},
		{Type: "table", Title: "Table", DefaultW: 6, DefaultH: 6, MinW: 4, MinH: 3},
		{Type: "big_number", Title: "Big Number", DefaultW: 3, DefaultH: 2, MinW: 2, MinH: 2},
		{Type: "text", Title: "Text", DefaultW: 4, DefaultH: 2, MinW: 1, MinH: 1},
		{Type: "map", Title: "Map", DefaultW: 8, DefaultH: 6, MinW: 4, MinH: 4},
	} {
		c.widgets[w.Type] = w
	}
	return c
}

// Load reads a catalog from a TOML file.
//
// The file lists widget types as [[widget]] tables:
//
//	[[widget]]
//	type = "chart"
//	title = "Chart"
//	default_w = 6
//	default_h = 4
//	min_w = 3
//	min_h = 2
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{widgets: make(map[string]Widget, len(file.Widgets))}
	for _, w := range file.Widgets {
		if err := validate(w); err != nil {
			return nil, err
		}
		if _, dup := c.widgets[w.Type]; dup {
			return nil, errors.New(errors.ErrCodeInvalidWidget, "duplicate widget type %q", w.Type)
		}
		c.widgets[w.Type] = w
	}
	if len(c.widgets) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidWidget, "catalog defines no widget types")
	}
	return c, nil
}

func validate(w Widget) error {
	if err := errors.ValidateWidgetType(w.Type); err != nil {
		return err
	}
	if w.DefaultW < 1 || w.DefaultH < 1 {
		return errors.New(errors.ErrCodeInvalidWidget, "widget %q needs positive default size", w.Type)
	}
	if w.MinW > w.DefaultW || w.MinH > w.DefaultH {
		return errors.New(errors.ErrCodeInvalidWidget, "widget %q default size below its minimum", w.Type)
	}
	if w.MaxW > 0 && w.MaxW < w.DefaultW || w.MaxH > 0 && w.MaxH < w.DefaultH {
		return errors.New(errors.ErrCodeInvalidWidget, "widget %q default size above its maximum", w.Type)
	}
	return nil
}

// Lookup returns the widget definition for a type.
func (c *Catalog) Lookup(typ string) (Widget, error) {
	w, ok := c.widgets[typ]
	if !ok {
		return Widget{}, errors.New(errors.ErrCodeWidgetNotFound, "unknown widget type %q", typ)
	}
	return w, nil
}

// Types returns all widget type names in sorted order.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.widgets))
	for t := range c.widgets {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Instantiate mints a new widget of the given type at the origin with
// its default size. The caller places it with the layout engine.
func (c *Catalog) Instantiate(typ string) (grid.Rect, error) {
	w, err := c.Lookup(typ)
	if err != nil {
		return grid.Rect{}, err
	}
	return grid.Rect{
		ID:   fmt.Sprintf("%s-%s", w.Type, uuid.NewString()[:8]),
		W:    w.DefaultW,
		H:    w.DefaultH,
		MinW: w.MinW,
		MinH: w.MinH,
		MaxW: w.MaxW,
		MaxH: w.MaxH,
	}, nil
}

// MinSizesFor builds the shrink-floor table for a layout. Each rect
// whose ID carries a known type prefix gets that type's minimum size.
// Rects minted outside the catalog are skipped and keep their own
// MinW/MinH.
func (c *Catalog) MinSizesFor(l grid.Layout) grid.MinSizeTable {
	table := make(grid.MinSizeTable)
	for _, r := range l {
		if t := c.typeOf(r.ID); t != "" {
			w := c.widgets[t]
			table[r.ID] = grid.MinSize{W: w.MinW, H: w.MinH}
		}
	}
	return table
}

// typeOf resolves a rect ID minted by Instantiate back to its widget
// type. Type names may contain dashes, so the longest matching prefix
// wins.
func (c *Catalog) typeOf(id string) string {
	best := ""
	for t := range c.widgets {
		if len(t) > len(best) && strings.HasPrefix(id, t+"-") {
			best = t
		}
	}
	return best
}
