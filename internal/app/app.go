package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/idyllic-labs/idyllic-api/internal/common/config"
	commonhttp "github.com/idyllic-labs/idyllic-api/internal/common/http"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	greetinghttp "github.com/idyllic-labs/idyllic-api/internal/greeting/http"
	greetingservice "github.com/idyllic-labs/idyllic-api/internal/greeting/service"
	userhttp "github.com/idyllic-labs/idyllic-api/internal/user/http"
	userrepo "github.com/idyllic-labs/idyllic-api/internal/user/repository"
	userservice "github.com/idyllic-labs/idyllic-api/internal/user/service"
)

// App wires the route table to a per-instance store. Constructing two apps
// yields fully independent state; nothing is process-wide.
type App struct {
	Config  config.Config
	Log     *logger.Logger
	Users   *userservice.UserService
	Handler http.Handler
}

func New(cfg config.Config, log *logger.Logger) *App {
	repo := userrepo.NewMemoryRepository()
	users := userservice.NewUserService(repo, log)
	greeting := greetingservice.NewGreetingService()
	errs := commonhttp.NewErrorHandler(log, cfg.Debug)

	usersHandler := userhttp.NewHandler(users, errs, cfg.RequestTimeout, log)
	greetingHandler := greetinghttp.NewHandler(greeting, errs, log)

	mux := http.NewServeMux()
	mux.Handle("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/users", usersHandler)
	mux.Handle("/users/", usersHandler)
	mux.Handle("/hello/", greetingHandler)
	mux.Handle("/", greetingHandler)

	rateLimiter := commonhttp.NewPathRateLimiter()
	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/health" || path == "/metrics" {
			baseHandler.ServeHTTP(w, r)
			return
		}
		rateLimiter.MiddlewareForRequest(r)(baseHandler).ServeHTTP(w, r)
	})

	return &App{
		Config:  cfg,
		Log:     log,
		Users:   users,
		Handler: handler,
	}
}
