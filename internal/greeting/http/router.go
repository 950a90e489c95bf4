package http

import (
	"net/http"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
	commonhttp "github.com/idyllic-labs/idyllic-api/internal/common/http"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	"github.com/idyllic-labs/idyllic-api/internal/greeting/service"
)

const helloPrefix = "/hello/"

type Handler struct {
	greeting *service.GreetingService
	errs     *commonhttp.ErrorHandler
	log      *logger.Logger
}

// NewHandler serves the welcome and greeting routes. The root route doubles
// as the fallback, so any unmatched path yields a JSON 404 before the
// method check runs.
func NewHandler(greeting *service.GreetingService, errs *commonhttp.ErrorHandler, log *logger.Logger) http.Handler {
	h := &Handler{greeting: greeting, errs: errs, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.fallback(commonhttp.RequireMethod(http.MethodGet)(h.welcome)))
	mux.HandleFunc(helloPrefix, commonhttp.RequireMethod(http.MethodGet)(h.hello))
	return mux
}

func (h *Handler) fallback(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			h.errs.HandleError(w, r, commonerrors.ErrRouteNotMatched)
			return
		}
		next(w, r)
	}
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	commonhttp.WriteJSON(w, http.StatusOK, h.greeting.Welcome())
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	name, ok := commonhttp.PathSegment(r.URL.Path, helloPrefix)
	if !ok {
		h.errs.HandleError(w, r, commonerrors.ErrRouteNotMatched)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, h.greeting.Greet(name))
}
