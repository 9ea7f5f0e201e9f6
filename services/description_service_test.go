package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateReturnsModelText(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Velvety espresso kissed with caramel.  "}]}}]}`))
	}))
	defer srv.Close()

	svc := NewDescriptionService(srv.URL, "test-key")
	got := svc.Generate("Caramel Macchiato", "Hot Coffee")
	if got != "Velvety espresso kissed with caramel." {
		t.Fatalf("unexpected description: %q", got)
	}
	if !strings.Contains(gotPath, "gemini-3-flash-preview:generateContent") {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if !strings.Contains(gotBody, "Caramel Macchiato") || !strings.Contains(gotBody, "Hot Coffee") {
		t.Fatalf("prompt missing item details: %s", gotBody)
	}
}

func TestGenerateFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewDescriptionService(srv.URL, "test-key")
	if got := svc.Generate("Cold Brew", "Ice Coffee"); got != fallbackDescription {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGenerateFallsBackWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	svc := NewDescriptionService(srv.URL, "test-key")
	if got := svc.Generate("Cold Brew", "Ice Coffee"); got != fallbackDescription {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGenerateDefaultsOnEmptyAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`))
	}))
	defer srv.Close()

	svc := NewDescriptionService(srv.URL, "test-key")
	if got := svc.Generate("Earl Grey Tea", "Tea"); got != emptyDescription {
		t.Fatalf("expected stock line for empty answer, got %q", got)
	}
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	svc := NewDescriptionService("https://example.invalid", "")
	if got := svc.Generate("Latte", "Hot Coffee"); got != fallbackDescription {
		t.Fatalf("expected fallback without key, got %q", got)
	}
}
