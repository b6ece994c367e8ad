package repository_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-storefront/internal/catalog/repository"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) (*repository.FileRepository, string, string) {
	t.Helper()
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "products.json")
	backupsDir := filepath.Join(dir, "backups")
	repo, err := repository.NewFileRepository(dataFile, backupsDir, zap.NewNop())
	require.NoError(t, err)
	return repo, dataFile, backupsDir
}

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	repo, _, _ := newRepo(t)

	products, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestLoadAppliesDefaults(t *testing.T) {
	repo, dataFile, _ := newRepo(t)
	doc := `[
		{"id": 1, "name": "Silk Scarf", "category": "Accessories", "price": 19.9},
		{"id": 2, "name": "Leather Bag", "category": "Bags", "price": 89, "rating": 0},
		{"id": 3, "name": "Odd", "category": "", "price": 1, "rating": 9}
	]`
	require.NoError(t, os.WriteFile(dataFile, []byte(doc), 0o644))

	products, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Absent rating defaults to 5; explicit values are kept and clamped.
	assert.Equal(t, 5, products[0].Rating)
	assert.Equal(t, 0, products[1].Rating)
	assert.Equal(t, 5, products[2].Rating)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("19.9")))
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	repo, dataFile, _ := newRepo(t)
	require.NoError(t, os.WriteFile(dataFile, []byte("{not json"), 0o644))

	_, err := repo.Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	repo, dataFile, _ := newRepo(t)
	products := []model.Product{
		{ID: 1, Name: "Silk Scarf", Category: "Accessories", Price: decimal.RequireFromString("19.90"), Rating: 5, Icon: "🧣"},
		{ID: 2, Name: "Leather Bag", Category: "Bags", Price: decimal.RequireFromString("89.00"), Rating: 4, Badge: "New"},
	}

	require.NoError(t, repo.Save(products))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, products[0].Name, loaded[0].Name)
	assert.Equal(t, products[1].Badge, loaded[1].Badge)
	assert.True(t, loaded[0].Price.Equal(products[0].Price))

	// No temp file left behind.
	_, err = os.Stat(dataFile + ".tmp")
	assert.True(t, os.IsNotExist(err))

	// The document stays valid JSON on disk.
	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestSaveBacksUpPreviousVersion(t *testing.T) {
	repo, _, backupsDir := newRepo(t)
	first := []model.Product{{ID: 1, Name: "Silk Scarf", Price: decimal.RequireFromString("19.90"), Rating: 5}}
	second := []model.Product{{ID: 2, Name: "Leather Bag", Price: decimal.RequireFromString("89.00"), Rating: 4}}

	require.NoError(t, repo.Save(first))
	entries, err := os.ReadDir(backupsDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "first save has nothing to back up")

	require.NoError(t, repo.Save(second))
	entries, err = os.ReadDir(backupsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), "products_")
}
