package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-digistore/app/db/seeders"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLibraryFixture(t *testing.T) (*LibraryService, repositories.LedgerRepositoryImpl, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	productRepo := repositories.NewCatalogRepository(store)
	bundleRepo := repositories.NewBundleRepository(store)
	ledgerRepo := repositories.NewLedgerRepository(store)

	return NewLibraryService(productRepo, bundleRepo, ledgerRepo), ledgerRepo, store
}

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestLibraryService_EmptyLedgerEmptyLibrary(t *testing.T) {
	service, _, _ := newLibraryFixture(t)
	user := seeders.BuiltInUser()

	owned, err := service.OwnedAssets(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestLibraryService_BundleExpandsToMembers(t *testing.T) {
	service, ledgerRepo, _ := newLibraryFixture(t)
	ctx := context.Background()
	user := seeders.BuiltInUser()

	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "bundle-b1"))

	owned, err := service.OwnedAssets(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, productIDs(owned))
}

func TestLibraryService_DedupesBundleMemberAgainstDirectPurchase(t *testing.T) {
	service, ledgerRepo, _ := newLibraryFixture(t)
	ctx := context.Background()
	user := seeders.BuiltInUser()

	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "1"))
	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "bundle-b1"))

	owned, err := service.OwnedAssets(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, productIDs(owned))
}

func TestLibraryService_UserPurchasesAreUnionedIn(t *testing.T) {
	service, ledgerRepo, _ := newLibraryFixture(t)
	ctx := context.Background()

	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "2"))
	user := seeders.BuiltInUser()
	user.Purchases = []string{"2", "3"}

	owned, err := service.OwnedAssets(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, productIDs(owned))
}

func TestLibraryService_UnresolvedIDsAreOmitted(t *testing.T) {
	service, ledgerRepo, _ := newLibraryFixture(t)
	ctx := context.Background()
	user := seeders.BuiltInUser()

	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "gone"))
	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "bundle-gone"))
	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "2"))

	owned, err := service.OwnedAssets(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, productIDs(owned))
}

func TestLibraryService_Owns(t *testing.T) {
	service, ledgerRepo, _ := newLibraryFixture(t)
	ctx := context.Background()
	user := seeders.BuiltInUser()

	require.NoError(t, ledgerRepo.RecordOwnership(ctx, "bundle-b1"))

	owns, err := service.Owns(ctx, user, "4")
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = service.Owns(ctx, user, "2")
	require.NoError(t, err)
	assert.False(t, owns)
}

func TestLibraryService_ProfilePrefersLastCustomer(t *testing.T) {
	service, ledgerRepo, _ := newLibraryFixture(t)
	ctx := context.Background()
	user := seeders.BuiltInUser()

	profile, err := service.Profile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.Name, profile.Name)
	assert.Equal(t, user.Email, profile.Email)

	require.NoError(t, ledgerRepo.SaveLastCustomer(ctx, models.Customer{Name: "Sam", Email: "sam@aashok.com"}))

	profile, err = service.Profile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
}

func TestLibraryService_LicenseDocument(t *testing.T) {
	service, _, _ := newLibraryFixture(t)
	product := models.Product{Title: "The SaaS Blueprint", LongDescription: "A long read."}

	doc := service.LicenseDocument(product, "Alex Rivera")
	assert.Contains(t, doc, "AASHOKDIGITAL LICENSED ASSET")
	assert.Contains(t, doc, "Licensee: Alex Rivera")
	assert.Contains(t, doc, "Asset Title: The SaaS Blueprint")
	assert.Contains(t, doc, "A long read.")

	anonymous := service.LicenseDocument(product, "")
	assert.Contains(t, anonymous, "Licensee: Owner")
}
