package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakhulsr/go-digistore/app/db/seeders"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/storage"
)

type BundleRepositoryImpl interface {
	GetBundles(ctx context.Context) ([]models.Bundle, error)
	GetBundleByID(ctx context.Context, id string) (*models.Bundle, error)
	SearchBundles(ctx context.Context, keyword string) ([]models.Bundle, error)
	GetBundlesContaining(ctx context.Context, productID string) ([]models.Bundle, error)
	SaveBundles(ctx context.Context, bundles []models.Bundle) error
}

type bundleRepository struct {
	store storage.Store
}

func NewBundleRepository(store storage.Store) BundleRepositoryImpl {
	return &bundleRepository{store: store}
}

func (b *bundleRepository) GetBundles(ctx context.Context) ([]models.Bundle, error) {
	var bundles []models.Bundle
	err := b.store.Get(ctx, storage.KeyBundles, &bundles)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return seeders.Bundles(), nil
		}
		return nil, err
	}
	return bundles, nil
}

func (b *bundleRepository) GetBundleByID(ctx context.Context, id string) (*models.Bundle, error) {
	bundles, err := b.GetBundles(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bundles {
		if bundles[i].ID == id {
			return &bundles[i], nil
		}
	}
	return nil, nil
}

func (b *bundleRepository) SearchBundles(ctx context.Context, keyword string) ([]models.Bundle, error) {
	bundles, err := b.GetBundles(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	matched := []models.Bundle{}
	for _, bundle := range bundles {
		if needle != "" && !strings.Contains(strings.ToLower(bundle.Title), needle) {
			continue
		}
		matched = append(matched, bundle)
	}
	return matched, nil
}

func (b *bundleRepository) GetBundlesContaining(ctx context.Context, productID string) ([]models.Bundle, error) {
	bundles, err := b.GetBundles(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Bundle{}
	for _, bundle := range bundles {
		if bundle.Contains(productID) {
			matched = append(matched, bundle)
		}
	}
	return matched, nil
}

func (b *bundleRepository) SaveBundles(ctx context.Context, bundles []models.Bundle) error {
	return b.store.Set(ctx, storage.KeyBundles, bundles)
}
