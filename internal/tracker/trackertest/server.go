// Package trackertest runs an in-process fake of the price analysis service.
// It mints real HS256 tokens and checks bcrypt-hashed credentials so the
// client and session code can be exercised end to end.
package trackertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/storefront-tracker/internal/models"
)

const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

// Request is what the fake saw for one call.
type Request struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
}

type Server struct {
	*httptest.Server

	secret   []byte
	tokenTTL time.Duration

	mu        sync.Mutex
	users     map[string][]byte
	alerts    []models.AlertRecord
	insights  models.InsightsSnapshot
	analyses  map[string]models.PriceAnalysis
	failure   int
	failMsg   string
	delay     time.Duration
	requests  []Request
	lastAlert float64
}

// New starts a fake service with one user, DefaultUsername/DefaultPassword.
// Close it when done.
func New() *Server {
	s := &Server{
		secret:   []byte("trackertest-secret"),
		tokenTTL: 24 * time.Hour,
		users:    map[string][]byte{},
		analyses: map[string]models.PriceAnalysis{},
		alerts: []models.AlertRecord{
			{ProductID: "e1", CurrentPrice: 4950, PreviousPrice: 5200, ChangePercent: 4.81, AlertType: "price_change"},
		},
		insights: models.InsightsSnapshot{
			TotalProducts: 18,
			MarketTrend:   "stable",
			Categories:    models.Categories(),
		},
	}
	s.AddUser(DefaultUsername, DefaultPassword)
	s.analyses["e1"] = models.PriceAnalysis{
		ProductID:      "e1",
		CurrentPrice:   4950,
		PriceChange:    -250,
		Trend:          "decreasing",
		PredictedPrice: 4800,
		DataPoints:     5,
	}

	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/api/auth/login", s.login)
	r.Group(func(r chi.Router) {
		r.Use(s.requireBearer)
		r.Get("/api/alerts", s.getAlerts)
		r.Get("/api/insights", s.getInsights)
		r.Get("/api/analyze/{productID}", s.analyze)
	})
	return r
}

func (s *Server) AddUser(username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	s.users[username] = hash
	s.mu.Unlock()
}

// IssueToken mints a token the fake will accept until ttl elapses. A
// negative ttl yields an already expired token.
func (s *Server) IssueToken(username string, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return token
}

func (s *Server) SetAlerts(alerts []models.AlertRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = alerts
}

func (s *Server) SetInsights(insights models.InsightsSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = insights
}

func (s *Server) SetAnalysis(productID string, analysis models.PriceAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyses[productID] = analysis
}

// Fail makes every authorized endpoint answer status with message. Fail(0, "")
// restores normal behavior.
func (s *Server) Fail(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure, s.failMsg = status, message
}

// Delay holds every response for d.
func (s *Server) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests hit path.
func (s *Server) Count(path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) LastThreshold() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAlert
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		delay := s.delay
		s.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		s.mu.Lock()
		status, msg := s.failure, s.failMsg
		s.mu.Unlock()
		if status != 0 {
			writeError(w, status, msg)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	hash, ok := s.users[creds.Username]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":   s.IssueToken(creds.Username, s.tokenTTL),
		"message": "Login successful",
	})
}

func (s *Server) getAlerts(w http.ResponseWriter, r *http.Request) {
	threshold := 5.0
	if v := r.URL.Query().Get("threshold"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			threshold = t
		}
	}

	s.mu.Lock()
	s.lastAlert = threshold
	out := make([]models.AlertRecord, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.ChangePercent >= threshold {
			out = append(out, a)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getInsights(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	insights := s.insights
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, insights)
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	s.mu.Lock()
	analysis, ok := s.analyses[id]
	s.mu.Unlock()
	if !ok {
		// The real service answers 200 with an error body here.
		writeJSON(w, http.StatusOK, map[string]string{"error": "Product not found"})
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
