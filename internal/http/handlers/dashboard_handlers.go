package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/storefront-tracker/internal/session"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
)

// GetDashboard godoc
// @Summary Dashboard session state
// @Description Current authentication state and the last alerts, insights and product analysis received.
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /api/dashboard [get]
func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, toDashboardResponse(s.session.View()))
}

// Login godoc
// @Summary Log the dashboard in to the analysis service
// @Description Without a body the configured service credentials are used. A rejected login returns 401 and the message is kept on the dashboard.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param credentials body LoginRequest false "Service credentials"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} DashboardResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} DashboardResponse
// @Failure 503 {object} DashboardResponse
// @Router /api/dashboard/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	req := LoginRequest{Username: s.username, Password: s.password}
	if r.ContentLength != 0 {
		var body LoginRequest
		if err := readJSON(w, r, &body); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid input")
			return
		}
		req = body
	}

	if errs := validateLogin(req); len(errs) > 0 {
		s.writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
		return
	}

	err := s.session.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		s.writeJSON(w, http.StatusOK, toDashboardResponse(s.session.View()))
	case errors.Is(err, session.ErrLoginInProgress), errors.Is(err, session.ErrAlreadyAuthenticated),
		errors.Is(err, session.ErrLoginSuperseded):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		status := http.StatusBadGateway
		switch {
		case tracker.IsUnauthorized(err):
			status = http.StatusUnauthorized
		case errors.Is(err, tracker.ErrServiceUnavailable):
			status = http.StatusServiceUnavailable
		}
		s.writeJSON(w, status, toDashboardResponse(s.session.View()))
	}
}

// Logout godoc
// @Summary Log the dashboard out
// @Description Clears the session, every feed, and the stored credential.
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/logout [post]
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(r.Context()); err != nil {
		s.logger.Error("logout could not clear stored credential", "error", err)
		s.writeError(w, http.StatusInternalServerError, "logged out, but the stored credential could not be cleared")
		return
	}
	s.writeJSON(w, http.StatusOK, toDashboardResponse(s.session.View()))
}

// RefreshAlerts godoc
// @Summary Refresh price alerts
// @Tags dashboard
// @Produce json
// @Param threshold query number false "Minimum change percentage" default(3)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard/alerts/refresh [post]
func (s *Server) RefreshAlerts(w http.ResponseWriter, r *http.Request) {
	threshold, errs := parseThreshold(r.URL.Query().Get("threshold"), s.session.AlertThreshold())
	if len(errs) > 0 {
		s.writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
		return
	}

	if _, err := s.session.RefreshAlerts(r.Context(), threshold); err != nil {
		s.writeFetchError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDashboardResponse(s.session.View()))
}

// RefreshInsights godoc
// @Summary Refresh market insights
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard/insights/refresh [post]
func (s *Server) RefreshInsights(w http.ResponseWriter, r *http.Request) {
	if _, err := s.session.RefreshInsights(r.Context()); err != nil {
		s.writeFetchError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDashboardResponse(s.session.View()))
}

// Analyze godoc
// @Summary Analyze one product's price trend
// @Tags dashboard
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} DashboardResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/dashboard/analyze/{productId} [post]
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	if _, err := s.session.Analyze(r.Context(), chi.URLParam(r, "productId")); err != nil {
		s.writeFetchError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toDashboardResponse(s.session.View()))
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"dashboard": s.session.State().String(),
	})
}
