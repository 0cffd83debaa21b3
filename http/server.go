package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/compose"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxRequestSize caps JSON request bodies. Pasted posts are text.
const DefaultMaxRequestSize = 1 << 20

// Server exposes the compose flow as a JSON API.
type Server struct {
	composer       *compose.Composer
	tokens         postcraft.TokenCounter
	logger         *slog.Logger
	requestTimeout time.Duration
	maxRequestSize int64
	router         chi.Router
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the request logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTokenCounter makes /api/prompt report the token count of the
// instruction text.
func WithTokenCounter(tc postcraft.TokenCounter) ServerOption {
	return func(s *Server) {
		s.tokens = tc
	}
}

// WithRequestTimeout bounds each request. Zero disables the bound.
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.requestTimeout = d
	}
}

// NewServer creates a Server backed by composer.
func NewServer(composer *compose.Composer, opts ...ServerOption) *Server {
	s := &Server{
		composer:       composer,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxRequestSize: DefaultMaxRequestSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(s.maxRequestSize))
	if s.requestTimeout > 0 {
		r.Use(middleware.Timeout(s.requestTimeout))
	}

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/platforms", s.handlePlatforms)
		r.Post("/extract", s.handleExtract)
		r.Post("/fetch-content", s.handleFetchContent)
		r.Post("/prompt", s.handlePrompt)
		r.Post("/generate", s.handleGenerate)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// logRequests writes one log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger.Info("http request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type platformsResponse struct {
	Default   postcraft.PlatformKey      `json:"default"`
	Platforms []postcraft.PlatformPolicy `json:"platforms"`
}

func (s *Server) handlePlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, platformsResponse{
		Default:   postcraft.DefaultPlatform,
		Platforms: postcraft.Policies(),
	})
}

type extractRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, r, postcraft.Errorf(postcraft.EEMPTYINPUT, compose.MsgMissingContent))
		return
	}
	writeJSON(w, http.StatusOK, postcraft.Extract(req.Text))
}

type fetchContentResponseBody struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// handleFetchContent speaks the same protocol ContentClient consumes, so one
// postcraft server can act as the content fetcher for another.
func (s *Server) handleFetchContent(w http.ResponseWriter, r *http.Request) {
	var req fetchContentRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	raw, err := s.composer.Fetch(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	content := postcraft.Extract(raw)
	writeJSON(w, http.StatusOK, fetchContentResponseBody{
		Content: raw,
		Title:   content.Title,
		Body:    content.Body,
	})
}

type promptResponse struct {
	*compose.Draft
	Tokens int `json:"tokens,omitempty"`
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	var in compose.Input
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	draft, err := s.composer.Prepare(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := promptResponse{Draft: draft}
	if s.tokens != nil {
		n, err := s.tokens.CountTokens(r.Context(), draft.Request.InstructionText)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Tokens = n
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in compose.Input
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	post, err := s.composer.Compose(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// StatusCode maps an error to the HTTP status the API reports for it.
// Errors without a postcraft code come from upstream services.
func StatusCode(err error) int {
	switch postcraft.ErrorCode(err) {
	case postcraft.EINVALID, postcraft.EEMPTYINPUT, postcraft.EUNKNOWNPLATFORM:
		return http.StatusBadRequest
	case postcraft.ENOTFOUND:
		return http.StatusNotFound
	case postcraft.EINTERNAL:
		return http.StatusInternalServerError
	case "":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error("http error",
			"request_id", middleware.GetReqID(r.Context()),
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, code, errorResponse{Error: postcraft.ErrorMessage(err)})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return postcraft.Errorf(postcraft.EINVALID, "request body too large")
		}
		return postcraft.Errorf(postcraft.EINVALID, "invalid JSON body: %v", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
