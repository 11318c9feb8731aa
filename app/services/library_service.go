package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
)

// LibraryService derives the buyer's owned-asset view from the purchase
// ledger and the live catalog.
type LibraryService struct {
	productRepo repositories.CatalogRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	ledgerRepo  repositories.LedgerRepositoryImpl
}

func NewLibraryService(
	productRepo repositories.CatalogRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	ledgerRepo repositories.LedgerRepositoryImpl,
) *LibraryService {
	return &LibraryService{
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// OwnedAssets flattens the ownership set into full product records:
// persisted purchases unioned with the user's built-in purchases, bundle
// composites expanded to their member products, deduplicated by product id
// in first-seen order. Ids that no longer resolve against the catalog are
// silently omitted.
func (s *LibraryService) OwnedAssets(ctx context.Context, user *models.User) ([]models.Product, error) {
	persisted, err := s.ledgerRepo.GetPurchasedIDs(ctx)
	if err != nil {
		return nil, err
	}

	assetIDs := []string{}
	seenAsset := map[string]bool{}
	for _, id := range append(append([]string{}, persisted...), user.Purchases...) {
		if seenAsset[id] {
			continue
		}
		seenAsset[id] = true
		assetIDs = append(assetIDs, id)
	}

	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	byID := map[string]models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}

	owned := []models.Product{}
	seenProduct := map[string]bool{}
	collect := func(productID string) {
		p, ok := byID[productID]
		if !ok || seenProduct[productID] {
			return
		}
		seenProduct[productID] = true
		owned = append(owned, p)
	}

	for _, assetID := range assetIDs {
		id, isBundle := models.ParseAssetID(assetID)
		if !isBundle {
			collect(id)
			continue
		}

		bundle, err := s.bundleRepo.GetBundleByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if bundle == nil {
			// Ownership of a deleted bundle stays in the ledger but
			// resolves to nothing.
			continue
		}
		for _, productID := range bundle.ProductIDs {
			collect(productID)
		}
	}

	return owned, nil
}

func (s *LibraryService) History(ctx context.Context) ([]models.OrderRecord, error) {
	return s.ledgerRepo.GetHistory(ctx)
}

// Profile resolves the display identity: the last checkout customer when
// one exists, otherwise the session user.
func (s *LibraryService) Profile(ctx context.Context, user *models.User) (models.Customer, error) {
	customer, err := s.ledgerRepo.GetLastCustomer(ctx)
	if err != nil {
		return models.Customer{}, err
	}
	if customer != nil {
		return *customer, nil
	}
	return models.Customer{Name: user.Name, Email: user.Email}, nil
}

// Owns reports whether the product is in the derived library, directly or
// through an owned bundle.
func (s *LibraryService) Owns(ctx context.Context, user *models.User, productID string) (bool, error) {
	owned, err := s.OwnedAssets(ctx, user)
	if err != nil {
		return false, err
	}
	for _, p := range owned {
		if p.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

// LicenseDocument renders the simulated download payload for an owned
// asset.
func (s *LibraryService) LicenseDocument(p models.Product, licensee string) string {
	if licensee == "" {
		licensee = "Owner"
	}
	return fmt.Sprintf(
		"AASHOKDIGITAL LICENSED ASSET\n\nLicensee: %s\n\nAsset Title: %s\n\n%s\n\n[Full Secure Download Package - End of Document Content]",
		licensee, p.Title, p.LongDescription,
	)
}
