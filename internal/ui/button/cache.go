package button

import (
	"image"
	"sync"
)

// Cache memoises composed button surfaces for the life of the process.
// There is no eviction: the set of real buttons is a small fixed space of
// sizes, labels and styles, so entries are cheap to keep forever.
//
// Lookup and Store are safe to call from multiple goroutines. Rendering is
// expected to stay on the draw thread, but the lock keeps the pair correct
// if asset loading ever moves off it.
type Cache struct {
	mu       sync.RWMutex
	surfaces map[Descriptor]*image.RGBA
}

// NewCache returns an empty surface cache.
func NewCache() *Cache {
	return &Cache{surfaces: make(map[Descriptor]*image.RGBA)}
}

// Lookup returns the cached surface for d, if one has been stored.
func (c *Cache) Lookup(d Descriptor) (*image.RGBA, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.surfaces[d]
	return img, ok
}

// Store records img as the surface for d and returns img unchanged, so a
// store can sit inline in a return expression.
func (c *Cache) Store(d Descriptor, img *image.RGBA) *image.RGBA {
	c.mu.Lock()
	c.surfaces[d] = img
	c.mu.Unlock()
	return img
}

// Len reports how many distinct surfaces are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.surfaces)
}
