package httputil

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept-Encoding") != "gzip" {
			t.Errorf("Accept-Encoding = %q, want gzip", r.Header.Get("Accept-Encoding"))
		}
		if r.Header.Get("Authorization") != BasicAuth("u", "p") {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		zw.Write([]byte(`{"a":1}`))
		zw.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.Write(buf.Bytes())
	}))
	defer server.Close()

	resp, err := Get(context.Background(), NewClient(Options{}), server.URL, map[string]string{
		"Authorization": BasicAuth("u", "p"),
	})
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if string(resp.Body) != `{"a":1}` {
		t.Errorf("Body = %q, want decompressed JSON", resp.Body)
	}
}

func TestGetReturnsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	resp, err := Get(context.Background(), NewClient(Options{}), server.URL, nil)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.StatusCode != http.StatusNotModified {
		t.Errorf("StatusCode = %d, want 304", resp.StatusCode)
	}
	if len(resp.Body) != 0 {
		t.Errorf("Body = %q, want empty", resp.Body)
	}
}

func TestTLSVerification(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	ctx := context.Background()

	// Self-signed certificate is rejected by default
	if _, err := Get(ctx, NewClient(Options{}), server.URL, nil); err == nil {
		t.Error("expected TLS verification error with default options")
	}

	resp, err := Get(ctx, NewClient(Options{InsecureSkipVerify: true}), server.URL, nil)
	if err != nil {
		t.Fatalf("Get() with InsecureSkipVerify error: %v", err)
	}
	if string(resp.Body) != "ok" {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestNewClientTimeout(t *testing.T) {
	if c := NewClient(Options{Timeout: 5 * time.Second}); c.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", c.Timeout)
	}
}

func TestGetContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Get(ctx, NewClient(Options{}), server.URL, nil); err == nil {
		t.Error("expected error for canceled context")
	}
}
