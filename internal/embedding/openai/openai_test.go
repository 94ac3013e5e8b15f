package openai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	t.Setenv("TEST_API_KEY", "secret")
	c, err := NewClient(Config{
		BaseURL:   url,
		APIKeyEnv: "TEST_API_KEY",
		Model:     "test-model",
		Timeout:   2 * time.Second,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewClientMissingKey(t *testing.T) {
	t.Setenv("TEST_API_KEY", "")
	if _, err := NewClient(Config{APIKeyEnv: "TEST_API_KEY"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		var req embedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Input != "hello" || req.Model != "test-model" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	vec, err := c.Embed("hello")
	if err != nil {
		t.Fatalf("Embed() = %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("vector length = %d", len(vec))
	}
	if c.Dimension() != 3 {
		t.Errorf("Dimension() = %d after first embed, want 3", c.Dimension())
	}
}

func TestEmbedRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{1}}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Embed("hello"); err != nil {
		t.Fatalf("Embed() should succeed after retry, got %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Load())
	}
}

func TestEmbedClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Embed("hello"); err == nil {
		t.Fatal("expected error for 400 response")
	}
	if calls.Load() != 1 {
		t.Errorf("client errors must not be retried, got %d calls", calls.Load())
	}
}

func TestEmbedConcurrentFirstUse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.1, 0.2, 0.3}}},
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Embed("hello"); err != nil {
				t.Errorf("Embed() = %v", err)
			}
		}()
	}
	wg.Wait()
	if c.Dimension() != 3 {
		t.Errorf("Dimension() = %d after concurrent embeds, want 3", c.Dimension())
	}
}

func TestEmbedEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if _, err := c.Embed("hello"); err == nil {
		t.Error("expected error for empty embedding data")
	}
}
