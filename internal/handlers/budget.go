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

type BudgetService interface {
	CreateBudget(ctx context.Context, uid string, req dto.CreateBudgetRequest) (*models.Budget, error)
	ListBudgets(ctx context.Context, uid string) ([]*models.Budget, error)
	UpdateBudget(ctx context.Context, uid, budgetID string, req dto.UpdateBudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, uid, budgetID string) error
	GetBudgetStatus(ctx context.Context, uid, budgetID string) (dto.BudgetStatus, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       BudgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListBudgets)
	r.Post("/", h.CreateBudget)
	r.Put("/{budgetId}", h.UpdateBudget)
	r.Delete("/{budgetId}", h.DeleteBudget)
	r.Get("/{budgetId}/status", h.GetBudgetStatus)
	return r
}

func (h *budgetHandlers) ListBudgets(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	budgets, err := h.BudgetSvc.ListBudgets(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budgets)
}

func (h *budgetHandlers) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.CreateBudget(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, budget)
}

func (h *budgetHandlers) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	var req dto.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}
	uid := middleware.UID(r.Context())
	budget, err := h.BudgetSvc.UpdateBudget(r.Context(), uid, budgetID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, budget)
}

func (h *budgetHandlers) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	if err := h.BudgetSvc.DeleteBudget(r.Context(), uid, budgetID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *budgetHandlers) GetBudgetStatus(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "budgetId")
	uid := middleware.UID(r.Context())
	status, err := h.BudgetSvc.GetBudgetStatus(r.Context(), uid, budgetID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, status)
}
