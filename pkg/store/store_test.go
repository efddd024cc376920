package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lwertel/gridpack/pkg/grid"
)

func testDocument(name string) *Document {
	return &Document{
		Name:   name,
		Bounds: grid.Bounds{Cols: 12, MaxRows: 100},
		Layout: grid.Layout{
			{ID: "a", X: 0, Y: 0, W: 6, H: 4},
			{ID: "b", X: 6, Y: 0, W: 6, H: 4},
		},
		MinSizes: grid.MinSizeTable{"a": {W: 3, H: 2}},
	}
}

// backends that share full roundtrip behavior.
func testBackends(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	ctx := context.Background()

	for name, st := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			doc := testDocument("dashboard")
			if err := st.Put(ctx, doc); err != nil {
				t.Fatalf("Put error: %v", err)
			}

			got, err := st.Get(ctx, "dashboard")
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if !reflect.DeepEqual(got.Layout, doc.Layout) {
				t.Errorf("Layout = %v, want %v", got.Layout, doc.Layout)
			}
			if got.Bounds != doc.Bounds {
				t.Errorf("Bounds = %v, want %v", got.Bounds, doc.Bounds)
			}
			if got.MinSizes["a"] != (grid.MinSize{W: 3, H: 2}) {
				t.Errorf("MinSizes = %v", got.MinSizes)
			}
		})
	}
}

func TestStoreGetMissing(t *testing.T) {
	ctx := context.Background()

	for name, st := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			_, err := st.Get(ctx, "missing")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreVersionIncrements(t *testing.T) {
	ctx := context.Background()

	for name, st := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			doc := testDocument("dashboard")
			for i := 1; i <= 3; i++ {
				if err := st.Put(ctx, doc); err != nil {
					t.Fatalf("Put #%d error: %v", i, err)
				}
			}

			got, err := st.Get(ctx, "dashboard")
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if got.Version != 3 {
				t.Errorf("Version = %d, want 3", got.Version)
			}
			if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
				t.Error("timestamps should be set")
			}
			if got.UpdatedAt.Before(got.CreatedAt) {
				t.Error("UpdatedAt should not precede CreatedAt")
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()

	for name, st := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			if err := st.Put(ctx, testDocument("dashboard")); err != nil {
				t.Fatalf("Put error: %v", err)
			}
			if err := st.Delete(ctx, "dashboard"); err != nil {
				t.Fatalf("Delete error: %v", err)
			}
			if _, err := st.Get(ctx, "dashboard"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after Delete = %v, want ErrNotFound", err)
			}

			// Deleting a missing layout is not an error.
			if err := st.Delete(ctx, "dashboard"); err != nil {
				t.Errorf("second Delete error: %v", err)
			}
		})
	}
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()

	for name, st := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer st.Close()

			for _, n := range []string{"zeta", "alpha", "mid"} {
				if err := st.Put(ctx, testDocument(n)); err != nil {
					t.Fatalf("Put %s error: %v", n, err)
				}
			}

			names, err := st.List(ctx)
			if err != nil {
				t.Fatalf("List error: %v", err)
			}
			want := []string{"alpha", "mid", "zeta"}
			if !reflect.DeepEqual(names, want) {
				t.Errorf("List = %v, want %v", names, want)
			}
		})
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	doc := testDocument("dashboard")
	if err := st.Put(ctx, doc); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := st.Get(ctx, "dashboard")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	// Mutating the returned copy must not affect the stored document.
	got.Layout[0].X = 99
	again, _ := st.Get(ctx, "dashboard")
	if again.Layout[0].X == 99 {
		t.Error("Get should return an independent copy")
	}
}

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	st := NewNullStore()
	defer st.Close()

	if err := st.Put(ctx, testDocument("dashboard")); err != nil {
		t.Errorf("Put error: %v", err)
	}
	if _, err := st.Get(ctx, "dashboard"); !errors.Is(err, ErrNotFound) {
		t.Error("NullStore should not store data")
	}
	names, err := st.List(ctx)
	if err != nil || len(names) != 0 {
		t.Errorf("List = %v, %v", names, err)
	}
	if err := st.Delete(ctx, "dashboard"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileStoreRejectsBadNames(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	doc := testDocument("../escape")
	if err := st.Put(ctx, doc); err == nil {
		t.Error("Put should reject path traversal names")
	}
	if _, err := st.Get(ctx, "foo/bar"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Get with slash = %v, want validation error", err)
	}
}

func TestOpenSchemes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		addr string
		want string
	}{
		{"memory://", "*store.MemoryStore"},
		{"", "*store.MemoryStore"},
		{"null://", "*store.NullStore"},
	}

	for _, tt := range tests {
		st, err := Open(ctx, tt.addr)
		if err != nil {
			t.Fatalf("Open(%q) error: %v", tt.addr, err)
		}
		if got := reflect.TypeOf(st).String(); got != tt.want {
			t.Errorf("Open(%q) = %s, want %s", tt.addr, got, tt.want)
		}
		st.Close()
	}

	if _, err := Open(ctx, "ftp://example"); err == nil {
		t.Error("Open should reject unknown schemes")
	}

	st, err := Open(ctx, "file://"+t.TempDir())
	if err != nil {
		t.Fatalf("Open file:// error: %v", err)
	}
	if _, ok := st.(*FileStore); !ok {
		t.Errorf("Open file:// = %T, want *FileStore", st)
	}
	st.Close()
}
