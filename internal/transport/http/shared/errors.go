package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"empdir/internal/domain/directory"
	"empdir/internal/transport/http/api"
)

// FailDirectory maps directory errors onto the response envelope.
func FailDirectory(w http.ResponseWriter, r *http.Request, err error, requestID string) {
	switch {
	case errors.Is(err, directory.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, directory.ErrLocationNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "location not found", requestID)
	case errors.Is(err, directory.ErrSourceUnavailable):
		slog.Warn("employee source unavailable", "path", r.URL.Path, "requestId", requestID, "err", err)
		api.Fail(w, http.StatusBadGateway, "source_unavailable", "employee data is unavailable", requestID)
	default:
		slog.Error("directory request failed", "path", r.URL.Path, "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
