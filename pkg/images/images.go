// Package images holds the named images consumed by ribbon items.
//
// Images are registered by the bootstrap layer, decoded once and looked up by
// the key an item declares. PNG, JPEG, GIF, BMP, TIFF and WebP data is
// accepted; the format is sniffed from the header.
package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source resolves an image key.
type Source interface {
	Image(key string) (image.Image, bool)
}

// Registry is a concurrency-safe Source.
type Registry struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{images: make(map[string]image.Image)}
}

// Register stores img under key. Keys compare case-insensitively.
func (r *Registry) Register(key string, img image.Image) {
	if img == nil {
		return
	}
	r.mu.Lock()
	if r.images == nil {
		r.images = make(map[string]image.Image)
	}
	r.images[normalize(key)] = img
	r.mu.Unlock()
}

// RegisterBytes decodes data and stores it under key.
func (r *Registry) RegisterBytes(key string, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("images: decode %q: %w", key, err)
	}
	r.Register(key, img)
	return nil
}

// RegisterFS decodes the file at name and stores it under key and under the
// file's base name without extension.
func (r *Registry) RegisterFS(key string, fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("images: %w", err)
	}
	if err := r.RegisterBytes(key, data); err != nil {
		return err
	}
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if base != "" && normalize(base) != normalize(key) {
		r.Register(base, r.mustGet(key))
	}
	return nil
}

// Image implements Source.
func (r *Registry) Image(key string) (image.Image, bool) {
	if key == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[normalize(key)]
	return img, ok
}

// Lookup returns the image for key or fallback when there is none.
func (r *Registry) Lookup(key string, fallback image.Image) image.Image {
	if img, ok := r.Image(key); ok {
		return img
	}
	return fallback
}

// Len is the number of registered keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}

func (r *Registry) mustGet(key string) image.Image {
	img, _ := r.Image(key)
	return img
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
