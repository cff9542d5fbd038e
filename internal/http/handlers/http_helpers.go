package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rogerio-castellano/storefront-tracker/internal/repo"
	"github.com/rogerio-castellano/storefront-tracker/internal/session"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		s.logger.Debug("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}

// writeFetchError maps a session or analysis service error onto a status.
// The session itself is never changed here.
func (s *Server) writeFetchError(w http.ResponseWriter, err error) {
	var apiErr *tracker.APIError
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		s.writeError(w, http.StatusConflict, "dashboard is not authenticated")
	case errors.Is(err, session.ErrLoginInProgress), errors.Is(err, session.ErrAlreadyAuthenticated),
		errors.Is(err, session.ErrLoginSuperseded):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrEmptyProductID):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repo.ErrProductNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, tracker.ErrServiceUnavailable):
		s.writeError(w, http.StatusServiceUnavailable, tracker.Message(err))
	case errors.As(err, &apiErr):
		s.writeError(w, http.StatusBadGateway, tracker.Message(err))
	default:
		s.logger.Error("unexpected error", "error", err)
		s.writeError(w, http.StatusBadGateway, tracker.Message(err))
	}
}
