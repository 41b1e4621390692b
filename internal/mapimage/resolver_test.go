package mapimage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func newTestResolver() *Resolver {
	return NewResolver(2*time.Second, 10, time.Minute)
}

func TestResolveFetchesAndEnhances(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	img := newTestResolver().Resolve(context.Background(), srv.URL)
	if img.Status != StatusFetched {
		t.Fatalf("expected fetched, got %s", img.Status)
	}
	if !strings.HasPrefix(img.DataURI, "data:image/png;base64,") {
		t.Fatalf("expected PNG data URI")
	}
}

func TestResolvePlaceholderOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	img := newTestResolver().Resolve(context.Background(), srv.URL)
	if img.Status != StatusPlaceholder {
		t.Fatalf("expected placeholder on 404, got %s", img.Status)
	}
	if !strings.HasPrefix(img.DataURI, "data:image/png;base64,") {
		t.Fatalf("placeholder must still be a PNG data URI")
	}
}

func TestResolvePlaceholderOnDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	if img := newTestResolver().Resolve(context.Background(), srv.URL); img.Status != StatusPlaceholder {
		t.Fatalf("expected placeholder on decode failure, got %s", img.Status)
	}
}

func TestResolvePlaceholderOnBadURL(t *testing.T) {
	r := newTestResolver()
	for _, url := range []string{"", "://not-a-url", "http://127.0.0.1:1"} {
		if img := r.Resolve(context.Background(), url); img.Status != StatusPlaceholder {
			t.Fatalf("url %q: expected placeholder, got %s", url, img.Status)
		}
	}
}

func TestPlaceholderIsDeterministic(t *testing.T) {
	a := placeholderImage()
	b := placeholderImage()
	if a.DataURI != b.DataURI {
		t.Fatalf("placeholder bytes must be stable")
	}
}

func TestResolveCachesByURL(t *testing.T) {
	payload := testPNG(t)
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	r := newTestResolver()
	r.Resolve(context.Background(), srv.URL)
	r.Resolve(context.Background(), srv.URL)
	if hits != 1 {
		t.Fatalf("expected 1 upstream fetch, got %d", hits)
	}
}

func TestResolvePair(t *testing.T) {
	payload := testPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	left, right := newTestResolver().ResolvePair(context.Background(), srv.URL+"/a", "http://127.0.0.1:1/bad")
	if left.Status != StatusFetched {
		t.Fatalf("left should fetch, got %s", left.Status)
	}
	if right.Status != StatusPlaceholder {
		t.Fatalf("right should degrade independently, got %s", right.Status)
	}
}
