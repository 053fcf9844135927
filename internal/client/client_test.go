package client_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunbommali/ekart/internal/client"
	api "github.com/tarunbommali/ekart/internal/http"
	handler "github.com/tarunbommali/ekart/internal/http/handlers"
	"github.com/tarunbommali/ekart/internal/models"
	"github.com/tarunbommali/ekart/internal/repo"
)

var productRepo = repo.NewInMemoryProductRepository()

func init() {
	handler.SetProductRepo(productRepo)
}

// recorder collects notifications so tests can assert on user-visible
// outcomes.
type recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (r *recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, message)
}

func (r *recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

func (r *recorder) errorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors)
}

func newTestClient(t *testing.T) (*client.Client, *recorder) {
	t.Helper()
	productRepo.Clear()
	srv := httptest.NewServer(api.NewRouter())
	t.Cleanup(srv.Close)
	notes := &recorder{}
	return client.New(srv.URL, srv.Client(), notes), notes
}

func TestLoadPopulatesCache(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	seedA, err := productRepo.Create(ctx, models.Product{Name: "Pen", Price: 10, Quantity: 5})
	require.NoError(t, err)
	seedB, err := productRepo.Create(ctx, models.Product{Name: "Pencil", Price: 2, Quantity: 9})
	require.NoError(t, err)

	require.NoError(t, c.Load(ctx))

	products := c.Products()
	require.Len(t, products, 2)
	assert.Equal(t, seedA, products[0])
	assert.Equal(t, seedB, products[1])
	assert.False(t, c.Cache().Stale())
}

func TestLoadFailureLeavesCacheEmpty(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter())
	notes := &recorder{}
	c := client.New(srv.URL, srv.Client(), notes)
	srv.Close()

	err := c.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, c.Cache().Len())
	assert.Equal(t, 1, notes.errorCount())
}

func TestCreateAppendsServerRecord(t *testing.T) {
	c, notes := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))

	created, err := c.Create(ctx, client.ProductPayload{Name: "Pen", Price: 1000, Quantity: 5})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "cache must use the server-assigned id")

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, created, products[0])
	assert.Contains(t, notes.successes, "Product created successfully")
}

func TestUpdateMergesIntoCache(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	created, err := c.Create(ctx, client.ProductPayload{Name: "Pen", Price: 1000, Quantity: 5})
	require.NoError(t, err)

	updated, inCache, err := c.Update(ctx, created.ID, client.ProductPayload{Name: "Pen", Price: 900, Quantity: 5})
	require.NoError(t, err)
	assert.True(t, inCache)
	assert.Equal(t, created.ID, updated.ID)

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 900.0, products[0].Price)
	assert.Equal(t, 5, products[0].Quantity)
	assert.False(t, c.Cache().Stale())
}

func TestUpdateMissMarksCacheStale(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))

	// Another client created this record after our load, so it exists
	// on the server but not in our projection.
	external, err := productRepo.Create(ctx, models.Product{Name: "Pen", Price: 10, Quantity: 1})
	require.NoError(t, err)

	_, inCache, err := c.Update(ctx, external.ID, client.ProductPayload{Name: "Pen", Price: 20, Quantity: 1})
	require.NoError(t, err)
	assert.False(t, inCache)
	assert.True(t, c.Cache().Stale())

	// The refresh hook reconciles the projection.
	require.NoError(t, c.Refresh(ctx))
	assert.False(t, c.Cache().Stale())
	require.Len(t, c.Products(), 1)
	assert.Equal(t, 20.0, c.Products()[0].Price)
}

func TestUpdateNotFound(t *testing.T) {
	c, notes := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	created, err := c.Create(ctx, client.ProductPayload{Name: "Pen", Price: 10, Quantity: 1})
	require.NoError(t, err)

	_, _, err = c.Update(ctx, "no-such-id", client.ProductPayload{Name: "Pen", Price: 20, Quantity: 1})
	require.ErrorIs(t, err, client.ErrNotFound)

	// Failed operations never touch the cache.
	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, created, products[0])
	assert.Equal(t, 1, notes.errorCount())
}

func TestDeleteRemovesFromCache(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Load(ctx))
	created, err := c.Create(ctx, client.ProductPayload{Name: "Pen", Price: 10, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, created.ID))
	assert.Equal(t, 0, c.Cache().Len())

	// A second delete of the same id fails and leaves the cache alone.
	err = c.Delete(ctx, created.ID)
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, 0, c.Cache().Len())
}
