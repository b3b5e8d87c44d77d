// Package http exposes the newsroom over HTTP and fetches source pages with
// plain GET requests.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/newsdesk"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Response messages returned to clients.
const (
	msgStoryCreated   = "Notícia gerada com sucesso!"
	msgStoryFailed    = "Erro ao processar a notícia"
	msgTextCorrected  = "Texto revisado com sucesso!"
	msgTextFailed     = "Erro ao revisar o texto"
	msgImageCreated   = "Imagem gerada e salva com sucesso!"
	msgImageFailed    = "Erro interno ao gerar a imagem."
	msgLinkRequired   = "O campo links é obrigatório"
	msgTextRequired   = "O campo texto é obrigatório"
	msgPromptRequired = "O campo imagePrompt é obrigatório."
	msgInvalidRequest = "Corpo da requisição inválido"
)

// maxRequestBodySize caps JSON request bodies.
const maxRequestBodySize = 5 << 20

// ImagePath is the route prefix stored images are served under.
const ImagePath = "/imagens/"

// Server is the HTTP front of a newsdesk.StoryService.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the address to listen on, e.g. ":3000".
	Addr string

	// ImageDir holds the files served under ImagePath. Empty disables the route.
	ImageDir string

	Logger       *slog.Logger
	StoryService newsdesk.StoryService
}

// NewServer returns a Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/gerador-noticias", s.handleGenerateStory)
	s.router.Post("/corretor-noticias", s.handleCorrectText)
	s.router.Post("/gerador-imagens", s.handleGenerateImage)
	s.router.Get(ImagePath+"*", s.handleImage)

	s.server.Handler = s.router
	return s
}

// Open starts listening on Addr. Call Serve to accept connections.
func (s *Server) Open() (err error) {
	if s.StoryService == nil {
		return errors.New("story service required")
	}
	s.ln, err = net.Listen("tcp", s.Addr)
	return err
}

// Serve accepts connections until Close is called. It returns nil after a
// graceful shutdown.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Port returns the TCP port the server listens on, or 0 before Open.
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Close gracefully shuts the server down, waiting for in-flight requests
// until ctx expires.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeHTTP routes a single request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

type storyResponse struct {
	Message string          `json:"message"`
	Data    *newsdesk.Story `json:"data"`
}

type imageResponse struct {
	Message     string `json:"message"`
	ImageURL    string `json:"imagemUrl"`
	ImageBase64 string `json:"imagemBase64"`
}

type errorResponse struct {
	Message  string             `json:"message"`
	Error    string             `json:"error,omitempty"`
	Upstream *newsdesk.Upstream `json:"upstream,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerateStory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Links string `json:"links"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Links) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgLinkRequired})
		return
	}

	story, err := s.StoryService.FromURL(r.Context(), req.Links)
	if err != nil {
		s.Error(w, r, msgStoryFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, storyResponse{Message: msgStoryCreated, Data: story})
}

func (s *Server) handleCorrectText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"texto"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgTextRequired})
		return
	}

	story, err := s.StoryService.FromText(r.Context(), req.Text)
	if err != nil {
		s.Error(w, r, msgTextFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, storyResponse{Message: msgTextCorrected, Data: story})
}

func (s *Server) handleGenerateImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"imagePrompt"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgPromptRequired})
		return
	}

	img, err := s.StoryService.Illustrate(r.Context(), req.Prompt, req.Prompt)
	if err != nil {
		s.Error(w, r, msgImageFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{
		Message:     msgImageCreated,
		ImageURL:    img.URL,
		ImageBase64: img.DataURL,
	})
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	if s.ImageDir == "" {
		http.NotFound(w, r)
		return
	}
	http.StripPrefix(ImagePath, http.FileServer(http.Dir(s.ImageDir))).ServeHTTP(w, r)
}

// decode reads a JSON request body into v. It writes a 400 response and
// returns false when the body is not valid JSON.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgInvalidRequest, Error: err.Error()})
		return false
	}
	return true
}

// Error writes err as a JSON response under the given endpoint message.
// Server-side failures are logged.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, message string, err error) {
	code := newsdesk.ErrorCode(err)
	status := ErrorStatusCode(code)

	if status >= http.StatusInternalServerError {
		s.logger().Error(message,
			"request_id", middleware.GetReqID(r.Context()),
			"code", code,
			"err", err,
		)
	}

	writeJSON(w, status, errorResponse{
		Message:  message,
		Error:    newsdesk.ErrorMessage(err),
		Upstream: newsdesk.UpstreamOf(err),
	})
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	newsdesk.EINVALID:     http.StatusBadRequest,
	newsdesk.ENOTFOUND:    http.StatusNotFound,
	newsdesk.EUNSUPPORTED: http.StatusInternalServerError,
	newsdesk.EUPSTREAM:    http.StatusBadGateway,
	newsdesk.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// logRequests logs one line per request after it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger().Info("request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
