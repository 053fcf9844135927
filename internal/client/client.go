// Package client is the Go counterpart of the browser product client:
// it issues CRUD operations against the product service and keeps a
// local cached list reconciled with each acknowledged mutation. No
// optimistic writes: the cache only ever reflects what the server has
// confirmed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tarunbommali/ekart/internal/models"
)

// ErrNotFound is returned when the service reports no product with the
// requested id.
var ErrNotFound = errors.New("product not found")

// ProductPayload carries the three mutable fields of a product.
type ProductPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Client struct {
	baseURL  string
	http     *http.Client
	cache    *Cache
	notifier Notifier
}

// New builds a client for the service at baseURL. A nil httpClient
// falls back to http.DefaultClient, a nil notifier discards
// notifications.
func New(baseURL string, httpClient *http.Client, notifier Notifier) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     httpClient,
		cache:    NewCache(),
		notifier: notifier,
	}
}

// Cache exposes the local projection.
func (c *Client) Cache() *Cache { return c.cache }

// Products returns a snapshot of the cached list.
func (c *Client) Products() []models.Product { return c.cache.Snapshot() }

// Load fetches the full list once and installs it in the cache. On
// failure the cache stays empty, a notification is raised and no retry
// happens.
func (c *Client) Load(ctx context.Context) error {
	products, err := c.fetchAll(ctx)
	if err != nil {
		c.notifier.Error("Error fetching products")
		return err
	}
	c.cache.Replace(products)
	return nil
}

// Refresh refetches the full list, clearing any staleness.
func (c *Client) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// StartRefreshLoop refetches on the given interval until ctx is done.
// It is the optional re-sync collaborator for deployments where other
// clients mutate the same store.
func (c *Client) StartRefreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.Refresh(ctx)
		}
	}
}

// Create posts a new product. On success the server-returned record,
// carrying the store-assigned id, is appended to the cache.
func (c *Client) Create(ctx context.Context, payload ProductPayload) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/", payload, &created); err != nil {
		c.notifier.Error("Error creating product")
		return models.Product{}, err
	}
	c.cache.Append(created)
	c.notifier.Success("Product created successfully")
	return created, nil
}

// Update replaces the product's mutable fields. The returned bool
// reports whether the local cache contained the id; false means the
// projection has drifted and a Refresh is due.
func (c *Client) Update(ctx context.Context, id string, payload ProductPayload) (models.Product, bool, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, c.baseURL+"/"+id, payload, &updated); err != nil {
		c.notifier.Error("Error updating product")
		return models.Product{}, false, err
	}
	inCache := c.cache.Merge(updated)
	c.notifier.Success("Product updated successfully")
	return updated, inCache, nil
}

// Delete removes the product and drops it from the cache.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.baseURL+"/"+id, nil, nil); err != nil {
		c.notifier.Error("Error deleting product")
		return err
	}
	c.cache.Remove(id)
	c.notifier.Success("Product deleted successfully")
	return nil
}

func (c *Client) fetchAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, url, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
