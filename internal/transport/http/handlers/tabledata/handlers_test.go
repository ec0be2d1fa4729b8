package tabledatahandler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"empdir/internal/platform/source"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	fixture, err := source.NewFixture()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	r := chi.NewRouter()
	NewHandler(fixture, source.Credentials{Username: "test", Password: "123456"}).RegisterRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestRemoteSourceReadsMockBackend(t *testing.T) {
	ts := newServer(t)

	remote := source.NewRemote(ts.URL+Path, source.Credentials{Username: "test", Password: "123456"}, ts.Client())
	records, err := remote.FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 30 || records[0].FullName != "Tiger Nixon" {
		t.Fatalf("unexpected records: %d", len(records))
	}
}

func TestWrongCredentials(t *testing.T) {
	ts := newServer(t)

	remote := source.NewRemote(ts.URL+Path, source.Credentials{Username: "test", Password: "bad"}, ts.Client())
	if _, err := remote.FetchRecords(context.Background()); err == nil {
		t.Fatal("expected upstream status error")
	}

	for _, body := range []string{`{"username":"","password":""}`, `{}`} {
		resp, err := ts.Client().Post(ts.URL+Path, "application/json", bytes.NewBufferString(body))
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", body, resp.StatusCode)
		}
	}
}

func TestMalformedBody(t *testing.T) {
	ts := newServer(t)
	resp, err := ts.Client().Post(ts.URL+Path, "application/json", bytes.NewBufferString("not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
