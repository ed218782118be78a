package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"lark/internal/core/domain"
)

// errorBody is the JSON body of every failed request.
type errorBody struct {
	Error     string                       `json:"error"`
	Details   string                       `json:"details,omitempty"`
	Max       int64                        `json:"max,omitempty"`
	Conflicts []domain.BeneficiaryConflict `json:"conflicts,omitempty"`
	Progress  *domain.CreationProgress     `json:"progress,omitempty"`
}

func vaultStatus(code domain.VaultErrorCode) int {
	switch code {
	case domain.VaultMissingBearer:
		return http.StatusUnauthorized
	case domain.VaultBadRequest:
		return http.StatusBadRequest
	case domain.VaultForbidden:
		return http.StatusForbidden
	case domain.VaultNotFound:
		return http.StatusNotFound
	case domain.VaultMimeNotAllowed:
		return http.StatusUnsupportedMediaType
	case domain.VaultQuotaExceeded, domain.VaultFileTooLarge:
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// errorResponse maps an error to its status code and body.
func errorResponse(err error) (int, errorBody) {
	var (
		vault     *domain.VaultError
		partial   *domain.IncompleteCreationError
		conflict  *domain.BeneficiaryConflictError
		conflicts *domain.BeneficiaryConflictsError
		upload    *domain.UploadError
		query     *domain.QueryError
		backend   *domain.BackendError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &vault):
		return vaultStatus(vault.Code), errorBody{Error: string(vault.Code), Details: vault.Details, Max: vault.Max}
	case errors.As(err, &partial):
		return http.StatusInternalServerError, errorBody{
			Error:    "incomplete_creation",
			Details:  partial.Error(),
			Progress: &partial.Progress,
		}
	case errors.Is(err, errMissingCaller):
		return http.StatusUnauthorized, errorBody{Error: string(domain.VaultMissingBearer)}
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, errorBody{Error: "body_too_large", Max: tooLarge.Limit}
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest, errorBody{Error: string(domain.VaultBadRequest), Details: err.Error()}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorBody{Error: "validation", Details: err.Error()}
	case errors.As(err, &conflict):
		return http.StatusConflict, errorBody{
			Error:     "beneficiary_conflict",
			Details:   conflict.Error(),
			Conflicts: []domain.BeneficiaryConflict{conflict.Conflict},
		}
	case errors.As(err, &conflicts):
		return http.StatusConflict, errorBody{
			Error:     "beneficiary_conflict",
			Details:   conflicts.Error(),
			Conflicts: conflicts.Conflicts,
		}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody{Error: "not_found"}
	case errors.As(err, &upload):
		return http.StatusBadGateway, errorBody{Error: "upload_failed", Details: upload.FileName}
	case errors.As(err, &query):
		return http.StatusServiceUnavailable, errorBody{Error: "query_failed", Details: query.Op}
	case errors.As(err, &backend):
		return http.StatusBadGateway, errorBody{Error: "backend_error", Details: backend.Error()}
	}
	return http.StatusInternalServerError, errorBody{Error: "internal"}
}

// writeError logs server side failures and writes the mapped response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	h.writeJSON(w, status, body)
}
