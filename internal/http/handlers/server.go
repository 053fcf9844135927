package handlers

import (
	"github.com/tarunbommali/ekart/internal/redissvc"
	repo "github.com/tarunbommali/ekart/internal/repo"
)

var (
	productRepo repo.ProductRepository
	listCache   *redissvc.ListCache
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

// SetListCache installs the redis list cache. Passing nil disables it.
func SetListCache(c *redissvc.ListCache) {
	listCache = c
}
