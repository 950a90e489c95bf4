package http

import (
	"net/http"
	"time"

	commonerrors "github.com/idyllic-labs/idyllic-api/internal/common/errors"
	commonhttp "github.com/idyllic-labs/idyllic-api/internal/common/http"
	"github.com/idyllic-labs/idyllic-api/internal/common/logger"
	"github.com/idyllic-labs/idyllic-api/internal/user/domain"
	"github.com/idyllic-labs/idyllic-api/internal/user/service"
)

const idPrefix = "/users/"

type usersResponse struct {
	Users []domain.User `json:"users"`
}

type Handler struct {
	users *service.UserService
	errs  *commonhttp.ErrorHandler
	log   *logger.Logger
}

func NewHandler(users *service.UserService, errs *commonhttp.ErrorHandler, timeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{users: users, errs: errs, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/users", commonhttp.WithTimeout(timeout)(h.collection))
	mux.HandleFunc(idPrefix, commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(timeout)(h.byID)))
	return mux
}

func (h *Handler) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, usersResponse{Users: users})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := commonhttp.DecodeJSON(r, &input); err != nil {
		h.log.Warnf("create user failed: invalid json: %v", err)
		h.errs.HandleError(w, r, commonerrors.ErrInvalidJSON.WithCause(err))
		return
	}

	user, err := h.users.CreateUser(r.Context(), input)
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request) {
	id, err := commonhttp.ParseUserID(r.URL.Path, idPrefix)
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, user)
}
