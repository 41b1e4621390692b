package mapimage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"droughtwatch/internal/cache"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Status tags how an image was produced, so tests and logs can tell the
// intended "unreachable URL" degradation apart from unexpected failures.
type Status string

const (
	StatusFetched     Status = "fetched"
	StatusPlaceholder Status = "placeholder"
)

// Image is a displayable map image: always a PNG data URI, never an error.
type Image struct {
	Status  Status
	DataURI string
}

const (
	displaySize  = 600
	maxBodyBytes = 20 << 20 // refuse to decode absurdly large responses
)

// Resolver turns a record's map image URL into a displayable image,
// applying the fixed enhancement pipeline and degrading to a flat gray
// placeholder on any failure. Results are LRU-cached by URL.
type Resolver struct {
	client *http.Client
	cache  *cache.LRU[Image]
}

func NewResolver(timeout time.Duration, cacheSize int, cacheTTL time.Duration) *Resolver {
	return &Resolver{
		client: &http.Client{Timeout: timeout},
		cache:  cache.NewLRU[Image](cacheSize, cacheTTL),
	}
}

// Cache exposes the image cache for cleanup registration.
func (r *Resolver) Cache() *cache.LRU[Image] {
	return r.cache
}

// Resolve fetches, enhances and encodes the image at url. Every failure
// mode (empty or malformed URL, network error, non-200, decode failure,
// timeout) yields the placeholder; the cause is logged, not returned.
func (r *Resolver) Resolve(ctx context.Context, url string) Image {
	if url == "" {
		return placeholderImage()
	}
	if img, ok := r.cache.Get(url); ok {
		return img
	}

	img, err := r.fetch(ctx, url)
	if err != nil {
		slog.WarnContext(ctx, "Map image unavailable, using placeholder", "url", url, "error", err)
		img = placeholderImage()
	}
	r.cache.Set(url, img)
	return img
}

// ResolvePair resolves the two selected years' images concurrently so a
// slow fetch on one side never serializes behind the other.
func (r *Resolver) ResolvePair(ctx context.Context, leftURL, rightURL string) (left, right Image) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		left = r.Resolve(gctx, leftURL)
		return nil
	})
	g.Go(func() error {
		right = r.Resolve(gctx, rightURL)
		return nil
	})
	_ = g.Wait() // Resolve never errors
	return left, right
}

func (r *Resolver) fetch(ctx context.Context, url string) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Image{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Image{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Image{}, fmt.Errorf("read body: %w", err)
	}

	src, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return Image{}, fmt.Errorf("decode: %w", err)
	}

	// Fixed enhancement chain: resize to the display size, then a light
	// sharpen/contrast/saturation lift for the satellite imagery.
	out := imaging.Resize(src, displaySize, displaySize, imaging.Lanczos)
	out = imaging.Sharpen(out, 0.8)
	out = imaging.AdjustContrast(out, 10)
	out = imaging.AdjustSaturation(out, 10)

	uri, err := encodeDataURI(out)
	if err != nil {
		return Image{}, err
	}
	return Image{Status: StatusFetched, DataURI: uri}, nil
}

var (
	placeholderOnce sync.Once
	placeholder     Image
)

// placeholderImage returns the deterministic flat light-gray stand-in,
// built once.
func placeholderImage() Image {
	placeholderOnce.Do(func() {
		img := imaging.New(displaySize, displaySize, color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff})
		uri, err := encodeDataURI(img)
		if err != nil {
			// encoding a uniform in-memory image cannot fail at runtime
			panic(fmt.Sprintf("encode placeholder: %v", err))
		}
		placeholder = Image{Status: StatusPlaceholder, DataURI: uri}
	})
	return placeholder
}

func encodeDataURI(img *image.NRGBA) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
