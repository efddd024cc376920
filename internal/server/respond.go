package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/lwertel/gridpack/pkg/errors"
	"github.com/lwertel/gridpack/pkg/grid"
	"github.com/lwertel/gridpack/pkg/store"
)

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status and JSON body. Engine
// sentinels and structured error codes both carry enough information
// to pick the status; anything unrecognized is an internal error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)

	switch {
	case stderrors.Is(err, store.ErrNotFound), stderrors.Is(err, grid.ErrUnknownRect):
		status = http.StatusNotFound
	case stderrors.Is(err, grid.ErrOutOfBounds), stderrors.Is(err, grid.ErrOverlap):
		status = http.StatusBadRequest
	case stderrors.Is(err, grid.ErrNoSpace),
		stderrors.Is(err, grid.ErrCannotPush),
		stderrors.Is(err, grid.ErrCannotResize),
		stderrors.Is(err, grid.ErrCannotSwap):
		status = http.StatusConflict
	default:
		switch code {
		case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLayout,
			errors.ErrCodeInvalidBounds, errors.ErrCodeInvalidWidget:
			status = http.StatusBadRequest
		case errors.ErrCodeNotFound, errors.ErrCodeLayoutNotFound,
			errors.ErrCodeWidgetNotFound:
			status = http.StatusNotFound
		case errors.ErrCodeInfeasible:
			status = http.StatusConflict
		}
	}

	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
