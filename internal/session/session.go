// Package session owns the dashboard's authenticated session against the
// analysis service: login, restore from the credential store, logout, and the
// three data feeds (alerts, insights, per-product analysis).
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/storefront-tracker/internal/credstore"
	"github.com/rogerio-castellano/storefront-tracker/internal/models"
	"github.com/rogerio-castellano/storefront-tracker/internal/telemetry"
	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
)

// DefaultAlertThreshold is the change percentage used for automatic alert
// refreshes.
const DefaultAlertThreshold = 3.0

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrLoginInProgress      = errors.New("login already in progress")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrLoginSuperseded      = errors.New("login superseded by logout")
	ErrEmptyProductID       = errors.New("product id is required")
)

// AnalysisService is the remote side of the session. *tracker.Client
// implements it.
type AnalysisService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Analyze(ctx context.Context, token, productID string) (models.PriceAnalysis, error)
	Alerts(ctx context.Context, token string, threshold float64) ([]models.AlertRecord, error)
	Insights(ctx context.Context, token string) (models.InsightsSnapshot, error)
}

type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	AuthenticationFailed
)

var stateNames = []string{"unauthenticated", "authenticating", "authenticated", "authentication_failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Session struct {
	svc       AnalysisService
	store     credstore.Store
	policy    RestorePolicy
	logger    *slog.Logger
	threshold float64
	now       func() time.Time

	mu         sync.RWMutex
	state      State
	token      string
	loginErr   string
	generation uint64
	alerts     feed[[]models.AlertRecord]
	insights   feed[models.InsightsSnapshot]
	analysis   feed[models.PriceAnalysis]
	analysisID string

	// persistMu orders store writes so a Clear from logout is never
	// overtaken by a Save from an earlier login.
	persistMu sync.Mutex

	wg sync.WaitGroup
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithRestorePolicy(p RestorePolicy) Option {
	return func(s *Session) { s.policy = p }
}

func WithAlertThreshold(threshold float64) Option {
	return func(s *Session) { s.threshold = threshold }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(svc AnalysisService, store credstore.Store, opts ...Option) *Session {
	s := &Session{
		svc:       svc,
		store:     store,
		policy:    Optimistic{},
		logger:    slog.Default(),
		threshold: DefaultAlertThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	telemetry.SessionStateChanged(stateNames, s.state.String())
	return s
}

func (s *Session) AlertThreshold() float64 {
	return s.threshold
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// setState must be called with mu held.
func (s *Session) setState(state State) {
	if s.state == state {
		return
	}
	s.logger.Info("session state changed", "from", s.state.String(), "to", state.String())
	s.state = state
	telemetry.SessionStateChanged(stateNames, state.String())
}

// Restore picks up a token left in the credential store by an earlier run.
// Whether the token is trusted is up to the restore policy.
func (s *Session) Restore(ctx context.Context) error {
	token, ok, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored credential: %w", err)
	}
	if !ok || token == "" {
		return nil
	}

	accepted, err := s.policy.Accept(ctx, s.svc, token)
	if err != nil {
		return fmt.Errorf("restore policy: %w", err)
	}
	if !accepted {
		s.logger.Info("stored credential rejected, discarding")
		s.persistMu.Lock()
		defer s.persistMu.Unlock()
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear rejected credential: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	if s.state != Unauthenticated {
		s.mu.Unlock()
		return nil
	}
	s.token = token
	s.setState(Authenticated)
	gen := s.generation
	s.mu.Unlock()

	s.logger.Info("session restored from credential store")
	s.refreshOnEntry(ctx, gen)
	return nil
}

// Login exchanges credentials for a token. It is only valid from
// Unauthenticated or AuthenticationFailed. A rejected login moves the
// session to AuthenticationFailed and records the message for View.
func (s *Session) Login(ctx context.Context, username, password string) error {
	s.mu.Lock()
	switch s.state {
	case Authenticating:
		s.mu.Unlock()
		return ErrLoginInProgress
	case Authenticated:
		s.mu.Unlock()
		return ErrAlreadyAuthenticated
	}
	s.loginErr = ""
	s.setState(Authenticating)
	gen := s.generation
	s.mu.Unlock()

	token, err := s.svc.Login(ctx, username, password)

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return ErrLoginSuperseded
	}
	if err != nil {
		s.loginErr = loginMessage(err)
		s.setState(AuthenticationFailed)
		s.mu.Unlock()
		s.logger.Warn("login failed", "error", err)
		return fmt.Errorf("login: %w", err)
	}
	s.token = token
	s.setState(Authenticated)
	s.mu.Unlock()

	s.persist(ctx, gen, token)
	s.refreshOnEntry(ctx, gen)
	return nil
}

// persist saves the token. A failure is logged and the session stays
// authenticated in memory; it just won't survive a restart.
func (s *Session) persist(ctx context.Context, gen uint64, token string) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.RLock()
	current := s.generation == gen
	s.mu.RUnlock()
	if !current {
		return
	}

	if err := s.store.Save(ctx, token); err != nil {
		s.logger.Error("failed to persist credential", "error", err)
	}
}

// Logout returns to Unauthenticated from any state, drops every feed and
// clears the stored credential. Responses still in flight are discarded
// when they land.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.token = ""
	s.loginErr = ""
	s.alerts = feed[[]models.AlertRecord]{}
	s.insights = feed[models.InsightsSnapshot]{}
	s.analysis = feed[models.PriceAnalysis]{}
	s.analysisID = ""
	s.setState(Unauthenticated)
	s.mu.Unlock()

	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored credential: %w", err)
	}
	return nil
}

// refreshOnEntry fetches alerts and insights once, concurrently, after the
// session becomes authenticated. It runs detached from ctx's cancellation.
func (s *Session) refreshOnEntry(ctx context.Context, gen uint64) {
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.mu.RLock()
		current := s.generation == gen
		s.mu.RUnlock()
		if !current {
			return
		}

		var g errgroup.Group
		g.Go(func() error {
			_, err := s.RefreshAlerts(ctx, s.threshold)
			return err
		})
		g.Go(func() error {
			_, err := s.RefreshInsights(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			s.logger.Warn("initial dashboard refresh incomplete", "error", err)
		}
	}()
}

// Wait blocks until background refreshes started by Login or Restore finish.
func (s *Session) Wait() {
	s.wg.Wait()
}

func loginMessage(err error) string {
	var apiErr *tracker.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, tracker.ErrServiceUnavailable) {
		return tracker.Message(err)
	}
	return "Login failed"
}
