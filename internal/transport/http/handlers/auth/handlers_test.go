package authhandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"empdir/internal/domain/auth"
	"empdir/internal/transport/http/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	provider, err := auth.NewStaticProvider("test", "123456")
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	sessions := auth.NewRevocations()
	h := NewHandler(provider, "secret", time.Hour, sessions)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Auth("secret", sessions))
	h.RegisterRoutes(r)
	return r
}

func do(t *testing.T, router http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func TestLoginLogoutFlow(t *testing.T) {
	router := newRouter(t)

	rec, env := do(t, router, http.MethodPost, "/auth/login", `{"username":"test","password":"123456"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var login loginResponse
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if login.Token == "" || login.User.Username != "test" {
		t.Fatalf("unexpected login response: %+v", login)
	}

	rec, env = do(t, router, http.MethodGet, "/me", "", login.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /me 200, got %d", rec.Code)
	}
	var me map[string]any
	_ = json.Unmarshal(env.Data, &me)
	if me["username"] != "test" || me["id"] != login.User.UserID {
		t.Fatalf("unexpected /me payload: %v", me)
	}

	rec, _ = do(t, router, http.MethodPost, "/auth/logout", "", login.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected logout 200, got %d", rec.Code)
	}

	rec, env = do(t, router, http.MethodGet, "/me", "", login.Token)
	if rec.Code != http.StatusUnauthorized || env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("expected revoked token to be rejected, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestLoginFailures(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{name: "wrong password", body: `{"username":"test","password":"nope"}`, status: http.StatusUnauthorized, code: "invalid_credentials"},
		{name: "unknown user", body: `{"username":"admin","password":"123456"}`, status: http.StatusUnauthorized, code: "invalid_credentials"},
		{name: "missing fields", body: `{}`, status: http.StatusBadRequest, code: "validation_error"},
		{name: "not json", body: `username=test`, status: http.StatusBadRequest, code: "invalid_payload"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rec, env := do(t, router, http.MethodPost, "/auth/login", tc.body, "")
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if env.Success || env.Error == nil || env.Error.Code != tc.code {
				t.Fatalf("unexpected envelope: %s", rec.Body.String())
			}
		})
	}
}

func TestMeRequiresToken(t *testing.T) {
	rec, _ := do(t, newRouter(t), http.MethodGet, "/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
