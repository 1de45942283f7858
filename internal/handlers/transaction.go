package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/middleware"
	"github.com/AdeenMir/SpendingTracker/internal/models"
	"github.com/AdeenMir/SpendingTracker/internal/response"
)

// LedgerService is the reconciliation surface the transaction routes use.
type LedgerService interface {
	PostTransaction(ctx context.Context, uid string, req dto.PostTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, uid string, q dto.TransactionQuery) ([]models.Transaction, error)
	EditTransaction(ctx context.Context, uid, transactionID string, req dto.EditTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, uid, transactionID string) error
	SettleLoan(ctx context.Context, uid, transactionID string) (*models.Transaction, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	LedgerSvc       LedgerService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		LedgerSvc:       deps.LedgerSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.PostTransaction)
	r.Get("/", h.ListTransactions)
	r.Get("/{transactionId}", h.GetTransaction)
	r.Put("/{transactionId}", h.EditTransaction)
	r.Delete("/{transactionId}", h.DeleteTransaction)
	r.Post("/{transactionId}/settle", h.SettleLoan)
	return r
}

func (h *transactionHandlers) PostTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.LedgerSvc.PostTransaction(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q, err := parseTransactionQuery(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	txs, err := h.LedgerSvc.ListTransactions(r.Context(), uid, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	tx, err := h.LedgerSvc.GetTransaction(r.Context(), uid, transactionID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) EditTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	var req dto.EditTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}
	uid := middleware.UID(r.Context())
	tx, err := h.LedgerSvc.EditTransaction(r.Context(), uid, transactionID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	if err := h.LedgerSvc.DeleteTransaction(r.Context(), uid, transactionID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *transactionHandlers) SettleLoan(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	uid := middleware.UID(r.Context())
	tx, err := h.LedgerSvc.SettleLoan(r.Context(), uid, transactionID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, tx)
}

func parseTransactionQuery(r *http.Request) (dto.TransactionQuery, error) {
	var q dto.TransactionQuery
	params := r.URL.Query()

	if v := params.Get("kind"); v != "" {
		kind := models.TransactionKind(v)
		q.Kind = &kind
	}
	if v := params.Get("category"); v != "" {
		q.Category = &v
	}
	if v := params.Get("accountId"); v != "" {
		q.AccountID = &v
	}
	if v := params.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return q, errs.NewValidationError("from must be RFC3339")
		}
		q.PostedFrom = &t
	}
	if v := params.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return q, errs.NewValidationError("to must be RFC3339")
		}
		q.PostedTo = &t
	}
	if v := params.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, errs.NewValidationError("limit must be a non-negative integer")
		}
		q.Limit = n
	}
	return q, nil
}
