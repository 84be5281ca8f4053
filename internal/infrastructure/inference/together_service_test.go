package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dx4Harsh/image-generate-server/internal/config"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

func serviceFor(url string, timeout time.Duration) *TogetherService {
	return NewTogetherService(&config.Config{
		TogetherAPIKey:  "test-key",
		TogetherAPIURL:  url,
		UpstreamTimeout: timeout,
	})
}

func samplePayload() *GenerationPayload {
	return &GenerationPayload{
		Model:  "black-forest-labs/FLUX.1-schnell-Free",
		Prompt: "a cat",
		Width:  1024,
		Height: 1024,
		Steps:  12,
		N:      1,
	}
}

func TestGenerateSuccess(t *testing.T) {
	var gotAuth string
	var gotBody GenerationPayload
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"url":"https://img.example/1.png"},{"b64_json":"aGVsbG8="}]}`))
	}))
	defer ts.Close()

	svc := serviceFor(ts.URL, 5*time.Second)
	result, err := svc.Generate(context.Background(), samplePayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer auth header, got %q", gotAuth)
	}
	if gotBody.Model != "black-forest-labs/FLUX.1-schnell-Free" || gotBody.Prompt != "a cat" {
		t.Fatalf("unexpected forwarded payload: %+v", gotBody)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(result.Data))
	}
	if result.Data[0].URL != "https://img.example/1.png" || result.Data[1].B64JSON != "aGVsbG8=" {
		t.Fatalf("unexpected entries: %+v", result.Data)
	}
}

func TestGenerateUpstreamErrorStatusPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer ts.Close()

	svc := serviceFor(ts.URL, 5*time.Second)
	_, err := svc.Generate(context.Background(), samplePayload())
	if err == nil {
		t.Fatalf("expected error for 429 response")
	}
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlatformError, got %T", err)
	}
	if perr.GetUUID() != "together-http-error" {
		t.Fatalf("expected together-http-error, got %q", perr.GetUUID())
	}
	if perr.HTTPStatus() != http.StatusTooManyRequests {
		t.Fatalf("expected upstream status 429, got %d", perr.HTTPStatus())
	}
	if !strings.Contains(perr.Message, "rate limited") {
		t.Fatalf("expected upstream detail in message, got %q", perr.Message)
	}
}

func TestGenerateUpstreamErrorRawBodyFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	svc := serviceFor(ts.URL, 5*time.Second)
	_, err := svc.Generate(context.Background(), samplePayload())
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlatformError, got %v", err)
	}
	if perr.HTTPStatus() != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", perr.HTTPStatus())
	}
	if !strings.Contains(perr.Message, "upstream exploded") {
		t.Fatalf("expected raw body in message, got %q", perr.Message)
	}
}

func TestGenerateTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{"data":[]}`))
	}))
	defer ts.Close()

	svc := serviceFor(ts.URL, 50*time.Millisecond)
	_, err := svc.Generate(context.Background(), samplePayload())
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlatformError, got %T", err)
	}
	if perr.GetUUID() != "together-timeout" {
		t.Fatalf("expected together-timeout, got %q", perr.GetUUID())
	}
	if perr.HTTPStatus() != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d", perr.HTTPStatus())
	}
}

func TestGenerateTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	svc := serviceFor(ts.URL, 5*time.Second)
	_, err := svc.Generate(context.Background(), samplePayload())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PlatformError, got %T", err)
	}
	if perr.GetErrorType() != platformerrors.ErrorTypeExternal {
		t.Fatalf("expected external error type, got %q", perr.GetErrorType())
	}
	if perr.HTTPStatus() != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", perr.HTTPStatus())
	}
}

func TestGenerateSeedOmittedWhenNil(t *testing.T) {
	var raw map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"data":[{"url":"https://img.example/1.png"}]}`))
	}))
	defer ts.Close()

	svc := serviceFor(ts.URL, 5*time.Second)
	if _, err := svc.Generate(context.Background(), samplePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := raw["seed"]; present {
		t.Fatalf("seed must be omitted when unset, body: %v", raw)
	}
}
