// Package server serves a preview of the signup page over HTTP. Posted values
// are replayed through a fresh form container and the resulting state is
// rendered; nothing is stored or forwarded.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-signup/pkg/components"
	"github.com/goliatone/go-signup/pkg/form"
	"github.com/goliatone/go-signup/pkg/render"
)

// StateHeader carries the form state reached by the rendered response.
const StateHeader = "X-Signup-State"

const shutdownTimeout = 5 * time.Second

// Logger is satisfied by *log.Logger from github.com/charmbracelet/log.
type Logger interface {
	form.Logger
	Error(msg any, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
func (nopLogger) Info(any, ...any)  {}
func (nopLogger) Error(any, ...any) {}

// Option configures a Server.
type Option func(*Server)

// WithPage sets the page shell rendered for every request.
func WithPage(page components.Page) Option {
	return func(s *Server) {
		s.page = page
	}
}

// WithRenderOptions sets the base render options.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(s *Server) {
		s.renderOpts = opts
	}
}

// WithFormOptions are applied to the form container built per request.
func WithFormOptions(opts ...form.Option) Option {
	return func(s *Server) {
		s.formOpts = append(s.formOpts, opts...)
	}
}

// WithLogger routes request and lifecycle logging to logger.
func WithLogger(logger Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAssets serves files under prefix, e.g. "/assets/".
func WithAssets(prefix string, files fs.FS) Option {
	return func(s *Server) {
		s.assetsPrefix = prefix
		s.assets = files
	}
}

// Server is the preview http.Handler.
type Server struct {
	renderer     render.Renderer
	page         components.Page
	renderOpts   render.RenderOptions
	formOpts     []form.Option
	logger       Logger
	assetsPrefix string
	assets       fs.FS
	mux          *http.ServeMux
}

// New builds a server that renders with renderer.
func New(renderer render.Renderer, options ...Option) (*Server, error) {
	if renderer == nil {
		return nil, errors.New("server: renderer is required")
	}
	s := &Server{
		renderer: renderer,
		page:     components.DefaultPage(),
		logger:   nopLogger{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handlePage)
	if s.assets != nil && s.assetsPrefix != "" {
		prefix := "/" + strings.Trim(s.assetsPrefix, "/") + "/"
		s.mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.FS(s.assets))))
	}
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	f := form.New(append([]form.Option{form.WithLogger(s.logger)}, s.formOpts...)...)
	f.OnCompleted(func(c form.Completion) {
		s.logger.Info("signup completed", "firstName", c.Data.Get(form.FieldFirstName), "email", c.Data.Get(form.FieldEmail), "timestamp", c.ISOTimestamp())
	})

	status := http.StatusOK
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		var err error
		status, err = s.replay(r, f)
		if err != nil {
			s.logger.Error("replay submission", "err", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	opts := s.renderOpts
	opts.Fragment = opts.Fragment || r.URL.Query().Get("fragment") != ""
	if locale := strings.TrimSpace(r.URL.Query().Get("locale")); locale != "" {
		opts.Locale = locale
	}
	if opts.Action == "" {
		opts.Action = "/"
	}

	out, err := s.renderer.Render(r.Context(), render.View{Page: s.page, Form: f, Options: opts})
	if err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.Header().Set(StateHeader, f.State().String())
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(out)
	}
}

// replay feeds posted values to f as field changes followed by a submit.
func (s *Server) replay(r *http.Request, f *form.Form) (int, error) {
	if err := r.ParseForm(); err != nil {
		return 0, err
	}
	for _, name := range form.Fields() {
		if _, ok := r.PostForm[string(name)]; !ok {
			continue
		}
		if err := f.OnFieldChange(name, r.PostForm.Get(string(name))); err != nil {
			return 0, err
		}
	}

	err := f.OnSubmitRequested()
	var verr *form.ValidationError
	switch {
	case err == nil:
		return http.StatusOK, nil
	case errors.As(err, &verr):
		s.logger.Debug("submission rejected", "fields", len(verr.Errors))
		return http.StatusUnprocessableEntity, nil
	default:
		return 0, err
	}
}
