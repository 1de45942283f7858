package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AdeenMir/SpendingTracker/internal/errs"
	"github.com/AdeenMir/SpendingTracker/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.AccountNotFoundError:
		log.Warn("account not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "account_not_found", e.Message)

	case *errs.TransactionNotFoundError:
		log.Warn("transaction not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "transaction_not_found", e.Message)

	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.AlreadyExistsError:
		log.Warn("resource already exists", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, "already_exists", e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.InvalidStateError:
		log.Warn("invalid state", "error", e.Message)
		h.WriteError(w, r, http.StatusConflict, "invalid_state", e.Message)

	case *errs.PartialFailureError:
		// The record and the balance are out of step; keep the failed
		// step visible so the caller can reconcile or retry.
		log.Error("partial failure",
			"step", e.Step,
			"error", e.Message,
			"cause", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "partial_failure", e.Message)

	case *errs.DatabaseError:
		log.Error("database error",
			"operation", e.Operation,
			"error", e.Message,
			"cause", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
