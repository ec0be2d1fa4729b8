package employeeshandler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"empdir/internal/domain/directory"
	"empdir/internal/platform/format"
	"empdir/internal/transport/http/api"
	"empdir/internal/transport/http/middleware"
	"empdir/internal/transport/http/shared"
)

type Handler struct {
	Service *directory.Service
	Printer *format.Printer
}

func NewHandler(svc *directory.Service, printer *format.Printer) *Handler {
	return &Handler{Service: svc, Printer: printer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/positions", h.handlePositions)
		r.Get("/{name}", h.handleGet)
		r.Get("/{name}/profile.pdf", h.handleProfilePDF)
	})
}

type listResponse struct {
	Employees []directory.Employee `json:"employees"`
	Total     int                  `json:"total"`
	Positions []string             `json:"positions"`
}

// handleList returns the filtered list plus the unfiltered total and
// position choices for the filter dropdown.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}

	q := shared.ParseListQuery(r)
	api.Success(w, listResponse{
		Employees: directory.FilterAndSearch(employees, q.Search, q.Position),
		Total:     len(employees),
		Positions: directory.DistinctPositions(employees),
	}, reqID)
}

func (h *Handler) handlePositions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}
	api.Success(w, directory.DistinctPositions(employees), reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	profile, err := h.Service.Profile(r.Context(), shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}
	api.Success(w, profile, reqID)
}

func (h *Handler) handleProfilePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	profile, err := h.Service.Profile(r.Context(), shared.PathParam(r, "name"))
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}

	var buf bytes.Buffer
	if err := profilePDF(profile, h.Printer).Output(&buf); err != nil {
		slog.Error("profile pdf failed", "employeeId", profile.EmployeeID, "requestId", reqID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render profile", reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="profile-`+fileSafe(profile.EmployeeID, "employee")+`.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
