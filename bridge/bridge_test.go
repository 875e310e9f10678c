package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openfolio/folio"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds struct{ Email, Password string }
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("cannot decode login payload: %v", err)
		}
		if creds.Email != "jo@example.com" || creds.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))
	defer srv.Close()

	token, err := Login(context.Background(), srv.URL, "jo@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("Login() = %q, want tok-123", token)
	}

	if _, err := Login(context.Background(), srv.URL, "jo@example.com", "wrong"); err == nil {
		t.Error("Login() with bad password returned no error")
	}
}

func TestConnector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q, want the session token", got)
		}
		var body struct {
			Credentials map[string]string `json:"credentials"`
		}
		json.NewDecoder(r.Body).Decode(&body)

		switch {
		case strings.Contains(r.URL.Path, "acme-broker"):
			json.NewEncoder(w).Encode(map[string]string{"status": "connected"})
		case strings.Contains(r.URL.Path, "first-bank"):
			// This platform wants an OTP; without one the attempt fails.
			if body.Credentials["otp"] == "123456" {
				json.NewEncoder(w).Encode(map[string]string{"status": "connected"})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"status": "failed", "reason": "otp required"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	connect := New(srv.URL, "tok-123").Connector()
	ctx := context.Background()

	if err := connect(ctx, "acme-broker", nil); err != nil {
		t.Errorf("connect(acme-broker) unexpected error: %v", err)
	}
	err := connect(ctx, "first-bank", nil)
	if err == nil {
		t.Fatal("connect(first-bank) without otp returned no error")
	}
	if !strings.Contains(err.Error(), "otp required") {
		t.Errorf("connect(first-bank) error = %v, want the backend reason", err)
	}
	if err := connect(ctx, "first-bank", map[string]string{"otp": "123456"}); err != nil {
		t.Errorf("connect(first-bank) with otp unexpected error: %v", err)
	}
	if err := connect(ctx, "unknown", nil); err == nil {
		t.Error("connect(unknown) returned no error on http 404")
	}
}

func TestFetchPortfolio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/portfolio" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"as_of": "2026-08-25T18:00:00Z",
			"positions": [
				{"symbol": "VTI", "name": "Total Market", "platform": "acme-broker",
				 "quantity": "10", "price": {"currency": "USD", "amount": "250.00"}},
				{"symbol": "CASH", "platform": "first-bank",
				 "quantity": "1", "price": {"currency": "USD", "amount": "1200.50"}}
			]
		}`))
	}))
	defer srv.Close()

	p, err := New(srv.URL, "tok-123").FetchPortfolio(context.Background())
	if err != nil {
		t.Fatalf("FetchPortfolio() unexpected error: %v", err)
	}
	if len(p.Positions) != 2 {
		t.Fatalf("FetchPortfolio() returned %d positions, want 2", len(p.Positions))
	}
	if got, want := p.Total("USD"), folio.M(3700.50, "USD"); !got.Equal(want) {
		t.Errorf("Total(USD) = %v, want %v", got, want)
	}
	if got := p.PlatformIDs(); len(got) != 2 || got[0] != "acme-broker" {
		t.Errorf("PlatformIDs() = %v, want [acme-broker first-bank]", got)
	}
}

func TestPlatforms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "acme-broker", "name": "Acme Brokerage", "kind": "broker"},
			{"id": "first-bank", "name": "First Bank", "kind": "bank"}
		]`))
	}))
	defer srv.Close()

	platforms, err := New(srv.URL, "tok-123").Platforms(context.Background())
	if err != nil {
		t.Fatalf("Platforms() unexpected error: %v", err)
	}
	if len(platforms) != 2 || platforms[1].Kind != "bank" {
		t.Errorf("Platforms() = %+v, want the two catalog entries", platforms)
	}
}

func TestLatestQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v1/quotes/VTI/chart") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"series": {"intraday": {"data": [[1756195200, 249.10], [1756198800, 250.25]]}}}`))
	}))
	defer srv.Close()

	price, err := New(srv.URL, "tok-123").LatestQuote(context.Background(), "VTI")
	if err != nil {
		t.Fatalf("LatestQuote() unexpected error: %v", err)
	}
	if price != 250.25 {
		t.Errorf("LatestQuote() = %v, want 250.25", price)
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	if err := SaveToken("tok-xyz"); err != nil {
		t.Fatalf("SaveToken() unexpected error: %v", err)
	}
	defer ClearToken()

	token, err := LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() unexpected error: %v", err)
	}
	if token != "tok-xyz" {
		t.Errorf("LoadToken() = %q, want tok-xyz", token)
	}
	if err := ClearToken(); err != nil {
		t.Errorf("ClearToken() unexpected error: %v", err)
	}
	if _, err := LoadToken(); err == nil {
		t.Error("LoadToken() after ClearToken() returned no error")
	}
}
