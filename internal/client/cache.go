package client

import (
	"sync"

	"github.com/tarunbommali/ekart/internal/models"
)

// Cache is the client's local projection of server state. It is
// authoritative only until the next server interaction: acknowledged
// mutations patch it in place and nothing else re-syncs it except
// Replace.
type Cache struct {
	mu       sync.RWMutex
	products []models.Product
	stale    bool
}

func NewCache() *Cache {
	return &Cache{products: []models.Product{}}
}

// Replace installs a full server snapshot and clears staleness.
func (c *Cache) Replace(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make([]models.Product, len(products))
	copy(c.products, products)
	c.stale = false
}

// Append records a server-acknowledged creation.
func (c *Cache) Append(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
}

// Merge folds the updated fields into the cached record with the same
// id. It reports whether the cache contained the id; a miss marks the
// projection stale so the caller knows a refetch is due.
func (c *Cache) Merge(updated models.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == updated.ID {
			c.products[i].Name = updated.Name
			c.products[i].Price = updated.Price
			c.products[i].Quantity = updated.Quantity
			return true
		}
	}
	c.stale = true
	return false
}

// Remove drops the record with the given id, reporting whether it was
// present.
func (c *Cache) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the cached list in display order.
func (c *Cache) Snapshot() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Stale reports whether the projection is known to have drifted from
// server state.
func (c *Cache) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stale
}
