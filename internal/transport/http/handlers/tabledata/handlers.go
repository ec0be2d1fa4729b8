package tabledatahandler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"empdir/internal/domain/directory"
	"empdir/internal/platform/source"
	"empdir/internal/transport/http/api"
	"empdir/internal/transport/http/middleware"
)

// Path is where the table-data backend has always lived.
const Path = "/api/backend_dev/gettabledata.php"

// Handler stands in for the table-data backend so a deployment, or another
// instance using DATA_SOURCE=remote, has something to call.
type Handler struct {
	Source      directory.Source
	Credentials source.Credentials
}

func NewHandler(src directory.Source, creds source.Credentials) *Handler {
	return &Handler{Source: src, Credentials: creds}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post(Path, h.HandleTableData)
}

func (h *Handler) HandleTableData(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var creds source.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if !h.authorized(creds) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	records, err := h.Source.FetchRecords(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "internal_error", "table data unavailable", reqID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(source.NewPayload(records))
}

func (h *Handler) authorized(creds source.Credentials) bool {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(h.Credentials.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(h.Credentials.Password)) == 1
	return userOK && passOK && creds.Username != ""
}
