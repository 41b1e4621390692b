package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"droughtwatch/internal/cache"
	"droughtwatch/internal/core"
	"droughtwatch/internal/dataset"
	applog "droughtwatch/internal/log"
	"droughtwatch/internal/mapimage"
	appweb "droughtwatch/web"
)

// ExportNotifier publishes an event when a comparison export is downloaded.
// A nil notifier disables publishing.
type ExportNotifier interface {
	PublishExported(ctx context.Context, leftYear, rightYear int) error
}

// Options carries everything the server needs. The dataset is loaded once
// before the server starts and never reloaded while it runs.
type Options struct {
	Addr             string
	Dataset          *core.Dataset
	Origin           dataset.Origin
	LoadedAt         time.Time
	Resolver         *mapimage.Resolver
	Notifier         ExportNotifier
	DefaultLeftYear  int
	DefaultRightYear int
	DefaultTheme     string
}

type Server struct {
	http.Server
	templates *template.Template

	ds       *core.Dataset
	origin   dataset.Origin
	loadedAt time.Time
	resolver *mapimage.Resolver
	notifier ExportNotifier

	defaultLeftYear  int
	defaultRightYear int
	defaultTheme     string

	rateLimiter *rateLimiter

	// Rendered comparison partials keyed by left-right-theme.
	partialCache *cache.LRU[string]
	caches       *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		ds:               opts.Dataset,
		origin:           opts.Origin,
		loadedAt:         opts.LoadedAt,
		resolver:         opts.Resolver,
		notifier:         opts.Notifier,
		defaultLeftYear:  opts.DefaultLeftYear,
		defaultRightYear: opts.DefaultRightYear,
		defaultTheme:     opts.DefaultTheme,
		rateLimiter:      newRateLimiter(),
		partialCache:     cache.NewLRU[string](200, 5*time.Minute),
		caches:           cache.NewManager(),
	}

	s.caches.Register(s.partialCache)
	if s.resolver != nil {
		s.caches.Register(s.resolver.Cache())
	}
	s.caches.StartCleanup(10 * time.Minute)

	// Parse embedded templates at startup.
	t, err := template.New("").Funcs(templateFuncs()).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates",
			applog.FieldComponent, applog.ComponentTemplate,
			applog.FieldError, err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Tiny cache for static assets
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	// UI partials
	mux.HandleFunc("/ui/compare", s.withSecurityHeaders(s.handleComparePartial))
	mux.HandleFunc("/ui/last-updated", s.withSecurityHeaders(s.handleLastUpdated))
	// JSON API for the chart renderers
	mux.HandleFunc("/api/years", s.withSecurityHeaders(s.handleYears))
	mux.HandleFunc("/api/compare", s.withSecurityHeaders(s.handleCompareJSON))
	mux.HandleFunc("/api/trend", s.withSecurityHeaders(s.handleTrend))
	mux.HandleFunc("/export.csv", s.withSecurityHeaders(s.handleExport))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.caches != nil {
			s.caches.Stop()
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withSecurityHeaders adds security headers, rate limiting, and request logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.DebugContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldClientIP, clientIP,
			applog.FieldUserAgent, r.Header.Get("User-Agent"))

		if !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, clientIP,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatus, rw.statusCode,
			applog.FieldDuration, duration.Milliseconds(),
			applog.FieldClientIP, clientIP)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ds == nil || s.ds.Len() == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("no dataset"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
