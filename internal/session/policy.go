package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rogerio-castellano/storefront-tracker/internal/tracker"
)

// RestorePolicy decides whether a token found in the credential store at
// startup is trusted.
type RestorePolicy interface {
	Accept(ctx context.Context, svc AnalysisService, token string) (bool, error)
}

// Optimistic trusts any stored token. A token the service no longer accepts
// shows up later as failed feed refreshes.
type Optimistic struct{}

func (Optimistic) Accept(context.Context, AnalysisService, string) (bool, error) {
	return true, nil
}

// VerifyOnRestore rejects a stored token whose exp claim has passed, then
// asks the service. Only an explicit 401 rejects the token; if the service
// is unreachable the token is kept.
type VerifyOnRestore struct {
	Leeway time.Duration
	Now    func() time.Time
	Logger *slog.Logger
}

func (p VerifyOnRestore) Accept(ctx context.Context, svc AnalysisService, token string) (bool, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Signature can't be checked here; the service is the authority.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		exp, err := claims.GetExpirationTime()
		if err == nil && exp != nil && exp.Add(p.Leeway).Before(now()) {
			logger.Info("stored token expired", "expired_at", exp.Time)
			return false, nil
		}
	}

	if _, err := svc.Insights(ctx, token); err != nil {
		if tracker.IsUnauthorized(err) {
			return false, nil
		}
		logger.Warn("could not verify stored token, keeping it", "error", err)
	}
	return true, nil
}
