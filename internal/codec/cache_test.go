package codec

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"testing"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// createTestImage creates a simple test image file and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestNewCache(t *testing.T) {
	cache := NewCache()
	if cache == nil {
		t.Fatal("NewCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewCache did not initialize images map")
	}
}

func TestOpen(t *testing.T) {
	imgPath := createTestImage(t, 40, 30, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	img, err := Open(imgPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 30 {
		t.Errorf("unexpected dimensions: got %dx%d, want 40x30", bounds.Dx(), bounds.Dy())
	}
}

func TestOpen_NonExistent(t *testing.T) {
	_, err := Open("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Open should fail for non-existent file")
	}
}

func TestCache_Load(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 100, 100, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	// First load
	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1 == nil {
		t.Fatal("Load returned nil image")
	}

	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x100", bounds.Dx(), bounds.Dy())
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestCache_Load_NonExistent(t *testing.T) {
	cache := NewCache()
	_, err := cache.Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestCache_Load_InvalidImage(t *testing.T) {
	cache := NewCache()

	// Create a file with invalid image data
	tmpFile, err := os.CreateTemp("", "invalid-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.WriteString("not an image")
	tmpFile.Close()
	defer os.Remove(tmpFile.Name())

	_, err = cache.Load(tmpFile.Name())
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestCache_LoadBuffer(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 12, 8, color.RGBA{200, 100, 50, 255})
	defer os.Remove(imgPath)

	buf, err := cache.LoadBuffer(imgPath)
	if err != nil {
		t.Fatalf("LoadBuffer failed: %v", err)
	}

	if buf.Width() != 12 || buf.Height() != 8 {
		t.Errorf("unexpected dimensions: got %dx%d, want 12x8", buf.Width(), buf.Height())
	}

	c := buf.At(5, 3)
	if c.R != 200 || c.G != 100 || c.B != 50 {
		t.Errorf("pixel (5,3): got (%v,%v,%v), want (200,100,50)", c.R, c.G, c.B)
	}
}

func TestCache_LoadBuffer_Independent(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 6, 6, color.RGBA{10, 20, 30, 255})
	defer os.Remove(imgPath)

	buf1, err := cache.LoadBuffer(imgPath)
	if err != nil {
		t.Fatalf("first LoadBuffer failed: %v", err)
	}

	// Mutating one buffer must not leak into later loads
	buf1.Set(0, 0, pixel.RGB{R: 255, G: 255, B: 255})

	buf2, err := cache.LoadBuffer(imgPath)
	if err != nil {
		t.Fatalf("second LoadBuffer failed: %v", err)
	}

	c := buf2.At(0, 0)
	if c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("second buffer saw mutation: got (%v,%v,%v), want (10,20,30)", c.R, c.G, c.B)
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 255, 0, 255})
	defer os.Remove(imgPath)

	// Load image
	_, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Clear cache
	cache.Clear()

	// Verify cache is empty by checking internal state
	cache.mu.RLock()
	count := len(cache.images)
	cache.mu.RUnlock()

	if count != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", count)
	}
}

func TestCache_Evict(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{0, 0, 255, 255})
	defer os.Remove(imgPath)

	// Load image
	_, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Evict
	cache.Evict(imgPath)

	// Verify image is evicted
	cache.mu.RLock()
	_, exists := cache.images[imgPath]
	cache.mu.RUnlock()

	if exists {
		t.Error("Evict did not remove image from cache")
	}
}

func TestCache_Evict_NonExistent(t *testing.T) {
	cache := NewCache()
	// Should not panic
	cache.Evict("/nonexistent/path")
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache()
	imgPath := createTestImage(t, 50, 50, color.RGBA{128, 128, 128, 255})
	defer os.Remove(imgPath)

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	// Concurrent loads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := cache.Load(imgPath)
			if err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("concurrent Load error: %v", err)
	}
}
