package imaging

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
)

// Loader resolves an addressable image resource (local path or http(s) URL)
// into a decoded image, caching results so repeated detections on the same
// photo avoid redundant I/O.
//
// Loader is safe for concurrent use by multiple goroutines. Cached images
// remain in memory until explicitly removed via Evict() or Clear().
type Loader struct {
	mu     sync.RWMutex
	images map[string]image.Image
	client *http.Client
}

// NewLoader creates an empty loader ready for immediate use.
//
// Remote fetches use a bounded-timeout HTTP client; there is no internal
// retry — retry policy belongs to the caller that owns image acquisition.
func NewLoader() *Loader {
	return &Loader{
		images: make(map[string]image.Image),
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load retrieves an image from the cache or resolves it from disk or the
// network if not cached.
//
// Resources beginning with "http://" or "https://" are fetched remotely;
// anything else is treated as a file path. Local files are opened with EXIF
// auto-orientation applied so that photos taken on rotated phones sample
// along the correct axis.
//
// The image is cached using the exact resource string provided.
func (l *Loader) Load(ctx context.Context, resource string) (image.Image, error) {
	l.mu.RLock()
	if img, ok := l.images[resource]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	var img image.Image
	var err error
	if isRemote(resource) {
		img, err = l.fetch(ctx, resource)
	} else {
		img, err = imaging.Open(resource, imaging.AutoOrientation(true))
		if err != nil {
			err = fmt.Errorf("failed to open image: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.images[resource] = img
	l.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.images = make(map[string]image.Image)
	l.mu.Unlock()
}

// Evict removes a specific image from the cache by its resource string.
// If the resource is not cached, this method does nothing.
func (l *Loader) Evict(resource string) {
	l.mu.Lock()
	delete(l.images, resource)
	l.mu.Unlock()
}

// fetch downloads and decodes a remote image. A non-2xx status is a decode
// failure as far as the pipeline is concerned.
func (l *Loader) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, image/gif, */*")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch image: status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func isRemote(resource string) bool {
	return strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://")
}
