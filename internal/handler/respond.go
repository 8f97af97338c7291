package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
)

// respondData пишет конверт успешного ответа
func respondData(w http.ResponseWriter, logger *slog.Logger, status int, message string, data any) {
	w.WriteHeader(status)
	resp := dto.APIResponse{
		Message: message,
		Success: true,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondError пишет конверт ошибки
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	w.WriteHeader(status)
	resp := dto.APIResponse{
		Message: message,
		Success: false,
		Data:    nil,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// handleServiceError транслирует бизнес-ошибку сервиса в HTTP статус.
// id > 0 добавляется в сообщение not-found ошибок.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error, id int64) {
	switch {
	case errors.Is(err, domain.ErrRegionNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrCalculationNotFound):
		msg := err.Error()
		if id > 0 {
			msg += " with id " + strconv.FormatInt(id, 10)
		}
		respondError(w, logger, http.StatusNotFound, msg)

	case errors.Is(err, domain.ErrDuplicateRegionName),
		errors.Is(err, domain.ErrDuplicateOrganizationName),
		errors.Is(err, domain.ErrDuplicateEmployeeName),
		errors.Is(err, domain.ErrDuplicatePinfl),
		errors.Is(err, domain.ErrSelfReference),
		errors.Is(err, domain.ErrCyclicReference),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrEmployeeRequired):
		respondError(w, logger, http.StatusBadRequest, err.Error())

	default:
		logger.Error("internal error", slog.Any("error", err))
		respondError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}
