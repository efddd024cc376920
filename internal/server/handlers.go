package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lwertel/gridpack/pkg/errors"
	"github.com/lwertel/gridpack/pkg/grid"
	"github.com/lwertel/gridpack/pkg/observability"
	"github.com/lwertel/gridpack/pkg/render"
	"github.com/lwertel/gridpack/pkg/store"
)

// instrument emits operation hook events around an engine call.
// The returned func must be called with the operation's outcome.
func instrument(ctx context.Context, op string, widgets int) func(error) {
	observability.Operation().OnOperationStart(ctx, op, widgets)
	start := time.Now()
	return func(err error) {
		observability.Operation().OnOperationComplete(ctx, op, time.Since(start), err)
	}
}

func (s *Server) handleListWidgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"types": s.catalog.Types()})
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list layouts"))
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"layouts": names})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// putLayoutRequest is the body for creating or replacing a layout.
type putLayoutRequest struct {
	Bounds   grid.Bounds       `json:"bounds"`
	Layout   grid.Layout       `json:"layout"`
	MinSizes grid.MinSizeTable `json:"min_sizes,omitempty"`
}

func (s *Server) handlePutLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateLayoutName(name); err != nil {
		writeError(w, err)
		return
	}

	var req putLayoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := errors.ValidateBounds(req.Bounds.Cols, req.Bounds.MaxRows); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Layout.Validate(req.Bounds); err != nil {
		writeError(w, err)
		return
	}

	doc := &store.Document{
		Name:     name,
		Bounds:   req.Bounds,
		Layout:   req.Layout,
		MinSizes: req.MinSizes,
	}
	if existing, err := s.store.Get(r.Context(), name); err == nil {
		doc.Version = existing.Version
		doc.CreatedAt = existing.CreatedAt
	}
	if err := s.saveDoc(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := []render.SVGOption{render.WithLabels()}
	if cell, err := strconv.Atoi(r.URL.Query().Get("cell")); err == nil && cell > 0 {
		opts = append(opts, render.WithCellSize(cell))
	}
	if r.URL.Query().Get("grid") == "1" {
		opts = append(opts, render.WithGridLines())
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.RenderSVG(doc.Layout, doc.Bounds, opts...))
}

// addWidgetRequest asks for a new widget from the catalog.
type addWidgetRequest struct {
	Type string `json:"type"`
}

// addWidgetResponse reports where the widget landed and what had to move.
type addWidgetResponse struct {
	Document *store.Document `json:"document"`
	ID       string          `json:"id"`
	Pos      grid.Pos        `json:"pos"`
	Shrunk   []string        `json:"shrunk,omitempty"`
}

func (s *Server) handleAddWidget(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req addWidgetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rect, err := s.catalog.Instantiate(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	mins := doc.MinSizes
	if mins == nil {
		mins = s.catalog.MinSizesFor(doc.Layout)
	}
	done := instrument(r.Context(), "add", len(doc.Layout))
	res, err := grid.AutoAdjust(doc.Layout, doc.Bounds, rect.W, rect.H, mins)
	done(err)
	if err != nil {
		writeError(w, err)
		return
	}

	doc.Layout = append(res.Layout, rect.MoveTo(res.Pos.X, res.Pos.Y))
	if err := s.saveDoc(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addWidgetResponse{
		Document: doc,
		ID:       rect.ID,
		Pos:      res.Pos,
		Shrunk:   res.Shrunk,
	})
}

// pushRequest clears a zone of the grid by pushing obstructions away.
type pushRequest struct {
	Zone grid.Rect `json:"zone"`
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req pushRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	done := instrument(r.Context(), "push", len(doc.Layout))
	res, err := grid.Push(doc.Layout, doc.Bounds, req.Zone)
	done(err)
	if err != nil {
		writeError(w, err)
		return
	}

	doc.Layout = res.Layout
	if err := s.saveDoc(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"document": doc, "pushed": res.Pushed})
}

// resizeRequest moves or resizes one widget, displacing overlapped ones.
type resizeRequest struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
	W  int    `json:"w"`
	H  int    `json:"h"`
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req resizeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	done := instrument(r.Context(), "resize", len(doc.Layout))
	res, err := grid.Resize(doc.Layout, doc.Bounds, req.ID, req.X, req.Y, req.W, req.H, doc.MinSizes)
	done(err)
	if err != nil {
		writeError(w, err)
		return
	}

	doc.Layout = res.Layout
	if err := s.saveDoc(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document": doc,
		"moved":    res.Moved,
		"shrunk":   res.Shrunk,
	})
}

// swapRequest exchanges two widgets (A and B), or drops Source at a
// target cell displacing whatever lives there when Source is set.
type swapRequest struct {
	A      string `json:"a,omitempty"`
	B      string `json:"b,omitempty"`
	Source string `json:"source,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req swapRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var displaced []string
	switch {
	case req.Source != "":
		done := instrument(r.Context(), "swap", len(doc.Layout))
		res, err := grid.GroupSwap(doc.Layout, doc.Bounds, req.Source, req.X, req.Y)
		done(err)
		if err != nil {
			writeError(w, err)
			return
		}
		doc.Layout = res.Layout
		displaced = res.Displaced
	case req.A != "" && req.B != "":
		done := instrument(r.Context(), "swap", len(doc.Layout))
		out, err := grid.Swap(doc.Layout, doc.Bounds, req.A, req.B)
		done(err)
		if err != nil {
			writeError(w, err)
			return
		}
		doc.Layout = out
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "swap needs either a and b, or source with x and y"))
		return
	}

	if err := s.saveDoc(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"document": doc, "displaced": displaced})
}

func (s *Server) handleRepack(w http.ResponseWriter, r *http.Request) {
	doc, err := s.loadDoc(r)
	if err != nil {
		writeError(w, err)
		return
	}

	done := instrument(r.Context(), "repack", len(doc.Layout))
	packed, err := grid.Repack(doc.Layout, doc.Bounds)
	done(err)
	if err != nil {
		writeError(w, err)
		return
	}

	doc.Layout = packed
	if err := s.saveDoc(r.Context(), doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// loadDoc fetches the layout named in the URL, translating store
// misses into a coded not-found error.
func (s *Server) loadDoc(r *http.Request) (*store.Document, error) {
	name := chi.URLParam(r, "name")
	doc, err := s.store.Get(r.Context(), name)
	observability.Store().OnLoad(r.Context(), name, err == nil)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.New(errors.ErrCodeLayoutNotFound, "layout %q not found", name)
	}
	return doc, err
}

// saveDoc persists a document and emits the store hook event.
func (s *Server) saveDoc(ctx context.Context, doc *store.Document) error {
	if err := s.store.Put(ctx, doc); err != nil {
		return err
	}
	observability.Store().OnSave(ctx, doc.Name, len(doc.Layout))
	return nil
}
