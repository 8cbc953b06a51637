package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/osse101/RecipeBook_Go/internal/auth"
	"github.com/osse101/RecipeBook_Go/internal/database"
	"github.com/osse101/RecipeBook_Go/internal/handler"
	"github.com/osse101/RecipeBook_Go/internal/logger"
	"github.com/osse101/RecipeBook_Go/internal/metrics"
	"github.com/osse101/RecipeBook_Go/internal/recipe"
	"github.com/osse101/RecipeBook_Go/internal/store"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	TrustedProxies []string
	AllowedOrigins []string
	RateLimitRPS   int
	RateLimitBurst int
	Cookie         handler.CookieConfig
}

// Dependencies are the gateways the routes call into
type Dependencies struct {
	DBPool   database.Pool
	Auth     auth.Service
	Recipes  recipe.Service
	Sessions *store.Registry
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routes and middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimitRPS, opts.RateLimitBurst)
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{HeaderAuthorization, "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(auth.Middleware(deps.Auth, opts.Cookie.Name))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handler.HandleSignUp(deps.Auth))
			r.Post("/signin", handler.HandleSignIn(deps.Auth, opts.Cookie))
			r.Post("/signout", handler.HandleSignOut(deps.Auth, deps.Sessions, opts.Cookie))
			r.Get("/session", handler.HandleSession(deps.Auth, opts.Cookie))
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", handler.HandleListIngredients(deps.Sessions))
			r.Post("/", handler.HandleCreateIngredient(deps.Sessions))
			r.Delete("/{id}", handler.HandleDeleteIngredient(deps.Sessions))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(deps.Sessions))
			r.Post("/", handler.HandleCreateRecipe(deps.Sessions))
			r.Get("/{id}", handler.HandleGetRecipe(deps.Recipes))
			r.Put("/{id}", handler.HandleUpdateRecipe(deps.Sessions))
			r.Delete("/{id}", handler.HandleDeleteRecipe(deps.Sessions))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleCatalog(deps.Recipes))
			r.Get("/ids", handler.HandleCatalogIDs(deps.Recipes))
			r.Get("/{id}", handler.HandleCatalogRecipe(deps.Recipes))
		})

		r.Route("/views", func(r chi.Router) {
			r.Get("/ingredients", handler.HandleIngredientsView(deps.Sessions))
			r.Get("/recipes", handler.HandleRecipesView(deps.Sessions))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func quiet(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// sanitizeHeaders hides credentials; session cookies carry bearer tokens too
func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			out[k] = []string{logger.RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if quiet(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
