package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AdeenMir/SpendingTracker/internal/dto"
	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/internal/middleware"
	"github.com/AdeenMir/SpendingTracker/internal/response"
)

type AnalyticsService interface {
	GetSummary(ctx context.Context, uid string, args dto.SummaryArgs) (dto.SummaryResult, error)
	GetOverview(ctx context.Context, uid string) (dto.OverviewResult, error)
}

type analyticsHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    AnalyticsService
}

func NewAnalyticsHandlers(deps *Deps) *analyticsHandlers {
	return &analyticsHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
	}
}

func (h *analyticsHandlers) AnalyticsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.GetSummary)
	r.Get("/overview", h.GetOverview)
	return r
}

func (h *analyticsHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	var args dto.SummaryArgs
	params := r.URL.Query()
	if v := params.Get("accountId"); v != "" {
		args.AccountID = &v
	}
	if v := params.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("from must be RFC3339"))
			return
		}
		args.DateFrom = &t
	}
	if v := params.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("to must be RFC3339"))
			return
		}
		args.DateTo = &t
	}

	uid := middleware.UID(r.Context())
	result, err := h.AnalyticsSvc.GetSummary(r.Context(), uid, args)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetOverview(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	result, err := h.AnalyticsSvc.GetOverview(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
