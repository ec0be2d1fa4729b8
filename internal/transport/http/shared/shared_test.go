package shared

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"empdir/internal/domain/directory"
)

func TestParseListQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?search=+tokyo+&position=Developer", nil)
	q := ParseListQuery(req)
	if q.Search != "tokyo" || q.Position != "Developer" {
		t.Fatalf("unexpected query: %+v", q)
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      int
		wantIssue bool
	}{
		{name: "absent", raw: "", want: 10},
		{name: "explicit", raw: "5", want: 5},
		{name: "clamped", raw: "500", want: 100},
		{name: "zero", raw: "0", want: 10, wantIssue: true},
		{name: "negative", raw: "-3", want: 10, wantIssue: true},
		{name: "garbage", raw: "ten", want: 10, wantIssue: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?limit="+tc.raw, nil)
			v := NewValidator()
			got := ParseLimit(req, v, 10, 100)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if v.HasIssues() != tc.wantIssue {
				t.Fatalf("expected issue=%v, got %v", tc.wantIssue, v.Issues())
			}
		})
	}
}

func TestPathParamDecodes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/employees/Tiger%20Nixon", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("name", "Tiger%20Nixon")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	if got := PathParam(req, "name"); got != "Tiger Nixon" {
		t.Fatalf("expected decoded name, got %q", got)
	}
}

func TestValidatorReject(t *testing.T) {
	v := NewValidator()
	v.Required("username", " ", "is required")
	v.Required("password", "", "is required")
	v.Add("ignored", " ")

	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var env struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Fields []ValidationIssue `json:"fields"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	fields := env.Error.Details.Fields
	if env.Error.Code != "validation_error" || len(fields) != 2 || fields[0].Field != "password" {
		t.Fatalf("unexpected error body: %+v", env.Error)
	}

	if NewValidator().Reject(httptest.NewRecorder(), "") {
		t.Fatal("expected empty validator not to reject")
	}
}

func TestFailDirectory(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{directory.ErrEmployeeNotFound, http.StatusNotFound, "not_found"},
		{directory.ErrLocationNotFound, http.StatusNotFound, "not_found"},
		{fmt.Errorf("%w: %w", directory.ErrSourceUnavailable, errors.New("dial tcp")), http.StatusBadGateway, "source_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		FailDirectory(rec, httptest.NewRequest(http.MethodGet, "/", nil), tc.err, "req")
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"code":"`+tc.code+`"`) {
			t.Fatalf("%v: expected code %s, got %s", tc.err, tc.code, rec.Body.String())
		}
	}
}
