package session

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
	"github.com/rogerio-castellano/storefront-tracker/internal/telemetry"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
)

const (
	feedAlerts   = "alerts"
	feedInsights = "insights"
	feedAnalysis = "analysis"
)

// feed is one replaceable snapshot. Each request takes a sequence number
// when it starts; its response is applied only if no later request has
// already been applied.
type feed[T any] struct {
	data      T
	present   bool
	updatedAt time.Time
	issued    uint64
	applied   uint64
}

func (f *feed[T]) issue() uint64 {
	f.issued++
	return f.issued
}

func (f *feed[T]) apply(seq uint64, data T, at time.Time) bool {
	if seq < f.applied {
		return false
	}
	f.data, f.present, f.updatedAt, f.applied = data, true, at, seq
	return true
}

// begin reserves a sequence number on one feed. It must be called with mu
// held and fails unless the session is authenticated.
func (s *Session) begin(f interface{ issue() uint64 }) (token string, gen, seq uint64, err error) {
	if s.state != Authenticated {
		return "", 0, 0, ErrNotAuthenticated
	}
	return s.token, s.generation, f.issue(), nil
}

func (s *Session) fetchFailed(name string, err error) {
	telemetry.FeedRefreshed(name, telemetry.ResultFailed)
	if tracker.IsUnauthorized(err) {
		s.logger.Warn("analysis service rejected token", "feed", name, "error", err)
		return
	}
	s.logger.Warn("feed refresh failed", "feed", name, "error", err)
}

func (s *Session) recordApply(name string, applied bool) {
	if applied {
		telemetry.FeedRefreshed(name, telemetry.ResultApplied)
		return
	}
	telemetry.FeedRefreshed(name, telemetry.ResultStale)
	s.logger.Debug("discarded stale response", "feed", name)
}

// RefreshAlerts fetches alerts at threshold and replaces the alerts
// snapshot. On failure the snapshot is left as it was.
func (s *Session) RefreshAlerts(ctx context.Context, threshold float64) ([]models.AlertRecord, error) {
	s.mu.Lock()
	token, gen, seq, err := s.begin(&s.alerts)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	alerts, err := s.svc.Alerts(ctx, token, threshold)
	if err != nil {
		s.fetchFailed(feedAlerts, err)
		return nil, err
	}

	s.mu.Lock()
	applied := gen == s.generation && s.alerts.apply(seq, slices.Clone(alerts), s.now())
	s.mu.Unlock()
	s.recordApply(feedAlerts, applied)
	return alerts, nil
}

func (s *Session) RefreshInsights(ctx context.Context) (models.InsightsSnapshot, error) {
	s.mu.Lock()
	token, gen, seq, err := s.begin(&s.insights)
	s.mu.Unlock()
	if err != nil {
		return models.InsightsSnapshot{}, err
	}

	insights, err := s.svc.Insights(ctx, token)
	if err != nil {
		s.fetchFailed(feedInsights, err)
		return models.InsightsSnapshot{}, err
	}

	s.mu.Lock()
	applied := gen == s.generation && s.insights.apply(seq, cloneInsights(insights), s.now())
	s.mu.Unlock()
	s.recordApply(feedInsights, applied)
	return insights, nil
}

// Analyze fetches the trend report for one product. Only explicit calls
// reach here; nothing analyzes automatically.
func (s *Session) Analyze(ctx context.Context, productID string) (models.PriceAnalysis, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return models.PriceAnalysis{}, ErrEmptyProductID
	}

	s.mu.Lock()
	token, gen, seq, err := s.begin(&s.analysis)
	s.mu.Unlock()
	if err != nil {
		return models.PriceAnalysis{}, err
	}

	analysis, err := s.svc.Analyze(ctx, token, productID)
	if err != nil {
		s.fetchFailed(feedAnalysis, err)
		return models.PriceAnalysis{}, err
	}

	s.mu.Lock()
	applied := gen == s.generation && s.analysis.apply(seq, analysis, s.now())
	if applied {
		s.analysisID = productID
	}
	s.mu.Unlock()
	s.recordApply(feedAnalysis, applied)
	return analysis, nil
}

type FeedView[T any] struct {
	Data      T          `json:"data"`
	Present   bool       `json:"present"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func viewOf[T any](f feed[T], clone func(T) T) FeedView[T] {
	v := FeedView[T]{Data: clone(f.data), Present: f.present}
	if f.present {
		at := f.updatedAt
		v.UpdatedAt = &at
	}
	return v
}

// View is a consistent copy of the session at one instant.
type View struct {
	State             State                             `json:"state"`
	IsAuthenticated   bool                              `json:"is_authenticated"`
	LoginError        string                            `json:"login_error,omitempty"`
	Alerts            FeedView[[]models.AlertRecord]    `json:"alerts"`
	Insights          FeedView[models.InsightsSnapshot] `json:"insights"`
	Analysis          FeedView[models.PriceAnalysis]    `json:"analysis"`
	AnalysisProductID string                            `json:"analysis_product_id,omitempty"`
}

func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		State:             s.state,
		IsAuthenticated:   s.token != "",
		LoginError:        s.loginErr,
		Alerts:            viewOf(s.alerts, func(a []models.AlertRecord) []models.AlertRecord { return slices.Clone(a) }),
		Insights:          viewOf(s.insights, cloneInsights),
		Analysis:          viewOf(s.analysis, func(a models.PriceAnalysis) models.PriceAnalysis { return a }),
		AnalysisProductID: s.analysisID,
	}
}

func cloneInsights(in models.InsightsSnapshot) models.InsightsSnapshot {
	in.Categories = slices.Clone(in.Categories)
	if in.PriceRange != nil {
		r := *in.PriceRange
		in.PriceRange = &r
	}
	return in
}
