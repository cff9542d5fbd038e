package handlers

import (
	"log/slog"

	"github.com/rogerio-castellano/storefront-tracker/internal/repo"
	"github.com/rogerio-castellano/storefront-tracker/internal/session"
)

// Server holds what the HTTP handlers read from: the catalog and the single
// dashboard session.
type Server struct {
	products repo.ProductRepository
	session  *session.Session
	logger   *slog.Logger

	username string
	password string
}

type Option func(*Server)

// WithDefaultCredentials sets the credentials used when a login request has
// no body.
func WithDefaultCredentials(username, password string) Option {
	return func(s *Server) {
		s.username, s.password = username, password
	}
}

func NewServer(products repo.ProductRepository, sess *session.Session, logger *slog.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{products: products, session: sess, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
