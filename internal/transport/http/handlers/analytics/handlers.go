package analyticshandler

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

const maxSeriesLength = 100

type Handler struct {
	Service *directory.Service
	Printer *format.Printer
}

func NewHandler(svc *directory.Service, printer *format.Printer) *Handler {
	return &Handler{Service: svc, Printer: printer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/charts", h.handleCharts)
		r.Get("/locations", h.handleLocations)
		r.Get("/locations/{location}", h.handleLocation)
		r.Get("/report.pdf", h.handleReportPDF)
	})
}

type positionView struct {
	directory.PositionAggregate
	Label string `json:"label"`
}

type locationView struct {
	directory.LocationAggregate
	Coordinates directory.Office `json:"coordinates"`
}

type chartsResponse struct {
	Summary   directory.Summary       `json:"summary"`
	Salaries  []directory.SalaryPoint `json:"salaries"`
	Positions []positionView          `json:"positions"`
}

func positionViews(aggregates []directory.PositionAggregate) []positionView {
	out := make([]positionView, 0, len(aggregates))
	for _, agg := range aggregates {
		out = append(out, positionView{PositionAggregate: agg, Label: directory.PositionLabel(agg.Position)})
	}
	return out
}

func locationViews(aggregates []directory.LocationAggregate) []locationView {
	out := make([]locationView, 0, len(aggregates))
	for _, agg := range aggregates {
		out = append(out, locationView{LocationAggregate: agg, Coordinates: directory.OfficeFor(agg.Location)})
	}
	return out
}

// handleCharts summarises every employee; the filters only scope the salary
// series and position breakdown.
func (h *Handler) handleCharts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	limit := shared.ParseLimit(r, v, directory.DefaultSeriesLength, maxSeriesLength)
	if v.Reject(w, reqID) {
		return
	}

	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}

	q := shared.ParseListQuery(r)
	scoped := directory.FilterAndSearch(employees, q.Search, q.Position)
	api.Success(w, chartsResponse{
		Summary:   directory.SummaryStats(employees),
		Salaries:  directory.TopSalarySeries(scoped, limit),
		Positions: positionViews(directory.PositionCounts(scoped)),
	}, reqID)
}

func (h *Handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}
	api.Success(w, locationViews(directory.LocationStats(employees)), reqID)
}

func (h *Handler) handleLocation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}
	agg, err := directory.FindLocation(directory.LocationStats(employees), shared.PathParam(r, "location"))
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}
	api.Success(w, locationView{LocationAggregate: agg, Coordinates: directory.OfficeFor(agg.Location)}, reqID)
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Service.Employees(r.Context())
	if err != nil {
		shared.FailDirectory(w, r, err, reqID)
		return
	}

	report := reportData{
		Summary:   directory.SummaryStats(employees),
		Positions: directory.PositionCounts(employees),
		Locations: directory.LocationStats(employees),
	}
	var buf bytes.Buffer
	if err := reportPDF(report, h.Printer).Output(&buf); err != nil {
		slog.Error("report pdf failed", "requestId", reqID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "pdf_failed", "failed to render report", reqID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="directory-report.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
