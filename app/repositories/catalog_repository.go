package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-digistore/app/db/seeders"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/storage"
)

type CatalogRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	SearchProducts(ctx context.Context, category models.Category, keyword string) ([]models.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	SaveProducts(ctx context.Context, products []models.Product) error
}

type catalogRepository struct {
	store storage.Store
}

func NewCatalogRepository(store storage.Store) CatalogRepositoryImpl {
	return &catalogRepository{store: store}
}

// GetProducts returns the persisted catalog copy, falling back to the seed
// catalog only when the key has never been written. A corrupt entry is an
// error, never a fallback.
func (c *catalogRepository) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.store.Get(ctx, storage.KeyProducts, &products)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return seeders.Products(), nil
		}
		return nil, err
	}
	return products, nil
}

func (c *catalogRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := c.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (c *catalogRepository) SearchProducts(ctx context.Context, category models.Category, keyword string) ([]models.Product, error) {
	products, err := c.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	matched := []models.Product{}
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (c *catalogRepository) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	products, err := c.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (c *catalogRepository) SaveProducts(ctx context.Context, products []models.Product) error {
	return c.store.Set(ctx, storage.KeyProducts, products)
}
