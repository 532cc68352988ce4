package codec

import (
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// Cache provides thread-safe caching of decoded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an
// image is loaded, subsequent Load() calls for the same path return the cached copy
// without disk I/O. Cached images are shared and never mutated; LoadBuffer hands
// each caller its own pixel buffer.
//
// Cache is safe for concurrent use by multiple goroutines. All methods use
// appropriate locking to prevent data races.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// For long-running processes handling many images, consider periodic cleanup to
// prevent unbounded memory growth.
//
// # Example Usage
//
//	cache := codec.NewCache()
//	buf, err := cache.LoadBuffer("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Run the pipeline on buf...
//	cache.Evict("/path/to/image.png") // Optional: free memory
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates and initializes a new empty image cache.
//
// The returned cache is ready for immediate use and is safe for concurrent access.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
	}
}

// Open decodes the image file at path without touching any cache.
//
// Supported formats are PNG, JPEG, GIF, TIFF, and BMP, detected from the file
// content. Callers that read the same file repeatedly should go through a
// Cache instead.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, TIFF, and BMP.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image format
//     and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
// Concurrent first loads of the same path may decode it more than once; the last
// store wins and later calls share that copy.
func (c *Cache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// LoadBuffer loads an image through the cache and converts it into a pixel buffer.
//
// Every call returns a fresh buffer, so callers are free to mutate it without
// affecting the cached image or other callers.
//
// Parameters:
//   - path: Path to the image file, as accepted by Load.
//
// Returns:
//   - *pixel.Buffer: A new buffer holding the image's pixels.
//   - error: Non-nil if the image cannot be loaded or has no pixels.
func (c *Cache) LoadBuffer(path string) (*pixel.Buffer, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// Clear removes all images from the cache, freeing the associated memory.
//
// This method is useful for long-running processes that need to release memory
// after processing a batch of images. After Clear(), all images must be reloaded
// from disk on subsequent Load() calls.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// Parameters:
//   - path: The exact path string used when the image was loaded.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}
