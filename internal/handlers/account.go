package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/middleware"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/internal/response"
)

type AccountService interface {
	ListAccounts(ctx context.Context, uid string) ([]*models.Account, error)
	GetAccount(ctx context.Context, uid, accountID string) (*models.Account, error)
	CreateAccount(ctx context.Context, uid string, req dto.CreateAccountRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, uid, accountID string) error
}

type accountHandlers struct {
	ResponseHandler response.ResponseHandler
	AccountSvc      AccountService
}

func NewAccountHandlers(deps *Deps) *accountHandlers {
	return &accountHandlers{
		ResponseHandler: deps.ResponseHandler,
		AccountSvc:      deps.AccountSvc,
	}
}

func (h *accountHandlers) AccountRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListAccounts)
	r.Post("/", h.CreateAccount)
	r.Get("/{accountId}", h.GetAccount)
	r.Delete("/{accountId}", h.DeleteAccount)
	return r
}

func (h *accountHandlers) ListAccounts(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	accounts, err := h.AccountSvc.ListAccounts(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, accounts)
}

func (h *accountHandlers) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}
	uid := middleware.UID(r.Context())
	account, err := h.AccountSvc.CreateAccount(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, account)
}

func (h *accountHandlers) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	uid := middleware.UID(r.Context())
	account, err := h.AccountSvc.GetAccount(r.Context(), uid, accountID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, account)
}

func (h *accountHandlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	uid := middleware.UID(r.Context())
	if err := h.AccountSvc.DeleteAccount(r.Context(), uid, accountID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
