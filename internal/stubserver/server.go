// Package stubserver is a self-contained backend implementing the admin API
// contract consumed by the client core. It exists for local development and
// tests; the real trust boundary stays server-side.
package stubserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"uadm/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

const maxRequestBytes = 1 << 20

type Config struct {
	SigningKey []byte
	TokenTTL   time.Duration
	Logger     *slog.Logger
	Now        func() time.Time
	Seed       []User
}

type Server struct {
	signingKey []byte
	tokenTTL   time.Duration
	logger     *slog.Logger
	now        func() time.Time
	store      *userStore
	router     chi.Router
}

// DefaultSeed returns the roster the server starts with when the caller
// supplies none.
func DefaultSeed() []User {
	return []User{
		{Name: "Ada Admin", Email: "ada@example.com", Password: "hunter2"},
		{Name: "Grace Operator", Email: "grace@example.com", Password: "swordfish"},
	}
}

func New(cfg Config) *Server {
	if len(cfg.SigningKey) == 0 {
		cfg.SigningKey = []byte("dev-secret-key-change-in-production")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 15 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Seed == nil {
		cfg.Seed = DefaultSeed()
	}

	s := &Server{
		signingKey: cfg.SigningKey,
		tokenTTL:   cfg.TokenTTL,
		logger:     cfg.Logger,
		now:        cfg.Now,
		store:      newUserStore(cfg.Seed),
	}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/forgot-password", s.handleForgotPassword)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/users", s.handleListUsers)
			r.Post("/users/block", s.handleBlock)
			r.Post("/users/unblock", s.handleUnblock)
			r.Delete("/users", s.handleDelete)
		})
	})

	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := s.now()
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("took", s.now().Sub(start)),
		)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type bulkRequest struct {
	UserIDs []string `json:"userIds"`
}

type accountResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	LastLoginTime string `json:"last_login_time,omitempty"`
	Status        string `json:"status"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, ok := s.store.byEmail(req.Email)
	if !ok || user.Password != req.Password {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}
	if user.Status == domain.StatusBlocked {
		writeMessage(w, http.StatusForbidden, "Your account is blocked.")
		return
	}

	now := s.now()
	s.store.touchLogin(user.ID, now)

	token, err := s.mintToken(user, now)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not issue a token.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Name, email and password are required.")
		return
	}

	if _, ok := s.store.create(req.Name, req.Email, req.Password); !ok {
		writeMessage(w, http.StatusBadRequest, "An account with this email already exists.")
		return
	}

	writeMessage(w, http.StatusCreated, "Registration successful. You can now log in.")
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Deliberately indistinguishable for unknown addresses.
	writeMessage(w, http.StatusOK, "If the email exists, a reset link has been sent.")
}

func (s *Server) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	users := s.store.list()
	out := make([]accountResponse, 0, len(users))
	for _, user := range users {
		entry := accountResponse{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Status: string(user.Status),
		}
		if !user.LastLogin.IsZero() {
			entry.LastLoginTime = user.LastLogin.UTC().Format(time.RFC3339)
		}
		out = append(out, entry)
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	s.bulkStatus(w, r, domain.StatusBlocked, "blocked")
}

func (s *Server) handleUnblock(w http.ResponseWriter, r *http.Request) {
	s.bulkStatus(w, r, domain.StatusActive, "unblocked")
}

func (s *Server) bulkStatus(w http.ResponseWriter, r *http.Request, status domain.AccountStatus, verb string) {
	var req bulkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.UserIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "userIds must not be empty.")
		return
	}

	updated := s.store.setStatus(req.UserIDs, status)
	writeMessage(w, http.StatusOK, fmt.Sprintf("%d users %s", updated, verb))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.UserIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "userIds must not be empty.")
		return
	}

	removed := s.store.remove(req.UserIDs)
	writeMessage(w, http.StatusOK, fmt.Sprintf("%d users deleted", removed))
}

// requireAuth verifies the bearer token and re-checks the caller's own row:
// an operator whose account was deleted gets 401, a blocked one gets 403,
// which is exactly the signal the client uses to force a logout mid-session.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r.Header.Get("Authorization"))
		if raw == "" {
			writeMessage(w, http.StatusUnauthorized, "Missing bearer token.")
			return
		}

		subject, err := s.verifyToken(raw)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Token rejected.")
			return
		}

		user, ok := s.store.byID(subject)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "Account no longer exists.")
			return
		}
		if user.Status == domain.StatusBlocked {
			writeMessage(w, http.StatusForbidden, "Your account is blocked.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) mintToken(user *User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

func (s *Server) verifyToken(raw string) (string, error) {
	parsed, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("token missing subject")
	}

	return subject, nil
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not read request body.")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		writeMessage(w, http.StatusBadRequest, "Malformed JSON body.")
		return false
	}

	return true
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
