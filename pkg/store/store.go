// Package store provides persistence for named grid layouts.
//
// This package defines a Store interface for layout documents, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable server deployments
//   - null: No-op storage when persistence is disabled
//
// # Architecture
//
// A Document bundles a layout with its grid bounds and per-type minimum
// sizes, plus a monotonically increasing version. Put bumps the version
// on every write, so clients can detect concurrent modification by
// comparing versions.
//
// # Usage
//
// Open a store from a URL-style address:
//
//	// Development
//	st, err := store.Open(ctx, "memory://")
//
//	// CLI
//	st, err := store.Open(ctx, "file://~/.config/gridpack/layouts")
//
//	// Production
//	st, err := store.Open(ctx, "redis://localhost:6379")
//	st, err := store.Open(ctx, "mongodb://localhost:27017/gridpack")
//
// Manage layouts:
//
//	doc := &store.Document{Name: "dashboard", Bounds: grid.Bounds{Cols: 12, MaxRows: 100}}
//	if err := st.Put(ctx, doc); err != nil {
//	    return err
//	}
//
//	doc, err := st.Get(ctx, "dashboard")
//	if errors.Is(err, store.ErrNotFound) {
//	    // Layout does not exist
//	}
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lwertel/gridpack/pkg/grid"
)

// ErrNotFound is returned when a requested layout does not exist.
var ErrNotFound = errors.New("layout not found")

// Document is a stored layout with its grid configuration.
type Document struct {
	Name      string            `json:"name" bson:"_id"`
	Bounds    grid.Bounds       `json:"bounds" bson:"bounds"`
	Layout    grid.Layout       `json:"layout" bson:"layout"`
	MinSizes  grid.MinSizeTable `json:"min_sizes,omitempty" bson:"min_sizes,omitempty"`
	Version   int64             `json:"version" bson:"version"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Layout = d.Layout.Clone()
	if d.MinSizes != nil {
		out.MinSizes = make(grid.MinSizeTable, len(d.MinSizes))
		for k, v := range d.MinSizes {
			out.MinSizes[k] = v
		}
	}
	return &out
}

// touch updates bookkeeping fields before a write.
func (d *Document) touch(now time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	d.Version++
}

// Store is the interface for layout storage backends.
type Store interface {
	// Get retrieves a layout document by name.
	// Returns ErrNotFound if no layout with that name exists.
	Get(ctx context.Context, name string) (*Document, error)

	// Put stores a layout document, bumping its version.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a layout. Deleting a missing layout is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored layouts in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Open creates a store from a URL-style address. Supported schemes are
// memory://, null://, file://<dir>, redis://<addr> and mongodb://<uri>.
// An address without a scheme is treated as a file path.
func Open(ctx context.Context, addr string) (Store, error) {
	switch {
	case addr == "" || addr == "memory://" || addr == "memory":
		return NewMemoryStore(), nil
	case addr == "null://" || addr == "null":
		return NewNullStore(), nil
	case strings.HasPrefix(addr, "file://"):
		return NewFileStore(strings.TrimPrefix(addr, "file://"))
	case strings.HasPrefix(addr, "redis://"), strings.HasPrefix(addr, "rediss://"):
		return NewRedisStore(ctx, addr)
	case strings.HasPrefix(addr, "mongodb://"), strings.HasPrefix(addr, "mongodb+srv://"):
		return NewMongoStore(ctx, addr)
	case strings.Contains(addr, "://"):
		return nil, fmt.Errorf("unsupported store address: %s", addr)
	default:
		return NewFileStore(addr)
	}
}
