package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/Rakhulsr/go-digistore/app/storage"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*CatalogService, repositories.CatalogRepositoryImpl, repositories.BundleRepositoryImpl) {
	t.Helper()

	store := storage.NewMemoryStore()
	productRepo := repositories.NewCatalogRepository(store)
	bundleRepo := repositories.NewBundleRepository(store)

	return NewCatalogService(productRepo, bundleRepo, validator.New()), productRepo, bundleRepo
}

func validProductForm() ProductForm {
	return ProductForm{
		Title:         "Go Services in Practice",
		Description:   "A practical guide.",
		Category:      models.CategoryEbook,
		Price:         "29",
		OriginalPrice: "49",
		Features:      "200 pages, Source code, Lifetime updates",
		Author:        "Alex Rivera",
		PageCount:     "200",
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service, productRepo, _ := newCatalogFixture(t)
	ctx := context.Background()

	product, fieldErrors, err := service.SaveProduct(ctx, "", validProductForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	require.NotNil(t, product)

	assert.True(t, strings.HasPrefix(product.ID, "p-"))
	assert.Equal(t, float64(5), product.Rating)
	assert.Equal(t, 0, product.ReviewsCount)
	assert.Empty(t, product.Reviews)
	assert.Equal(t, "12MB PDF", product.FileSize)
	assert.Equal(t, []string{"200 pages", "Source code", "Lifetime updates"}, product.Features)
	assert.Equal(t, product.Description, product.LongDescription)

	products, err := productRepo.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, product.ID, products[0].ID)
}

func TestCatalogService_CreateProductValidation(t *testing.T) {
	service, _, _ := newCatalogFixture(t)

	form := validProductForm()
	form.Title = ""
	form.Category = "Gadget"

	product, fieldErrors, err := service.SaveProduct(context.Background(), "", form)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.Contains(t, fieldErrors, "title")
	assert.Contains(t, fieldErrors, "category")
}

func TestCatalogService_UnparseablePriceBecomesZero(t *testing.T) {
	service, _, _ := newCatalogFixture(t)

	form := validProductForm()
	form.Price = "not-a-number"
	form.OriginalPrice = ""

	product, fieldErrors, err := service.SaveProduct(context.Background(), "", form)
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	assert.True(t, product.Price.IsZero())
	assert.True(t, product.OriginalPrice.IsZero())
}

func TestCatalogService_UpdatePreservesReviewState(t *testing.T) {
	service, productRepo, _ := newCatalogFixture(t)
	ctx := context.Background()

	form := validProductForm()
	form.Title = "Renamed Blueprint"
	form.Category = models.CategoryCourse

	product, fieldErrors, err := service.SaveProduct(ctx, "1", form)
	require.NoError(t, err)
	require.Empty(t, fieldErrors)

	assert.Equal(t, "1", product.ID)
	assert.Equal(t, "Renamed Blueprint", product.Title)
	assert.Equal(t, 4.8, product.Rating)
	assert.Equal(t, 2, product.ReviewsCount)
	assert.Len(t, product.Reviews, 2)
	assert.Equal(t, "45MB ZIP", product.FileSize)

	products, err := productRepo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalogService_UpdateUnknownProduct(t *testing.T) {
	service, _, _ := newCatalogFixture(t)

	_, _, err := service.SaveProduct(context.Background(), "nope", validProductForm())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_DeleteProductCascadesToBundles(t *testing.T) {
	service, productRepo, bundleRepo := newCatalogFixture(t)
	ctx := context.Background()

	require.NoError(t, service.DeleteProduct(ctx, "1"))

	products, err := productRepo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	bundles, err := bundleRepo.GetBundles(ctx)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, []string{"4"}, bundles[0].ProductIDs)
}

func TestCatalogService_DeleteUnknownProduct(t *testing.T) {
	service, _, _ := newCatalogFixture(t)

	err := service.DeleteProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_CreateBundle(t *testing.T) {
	service, _, bundleRepo := newCatalogFixture(t)
	ctx := context.Background()

	form := BundleForm{
		Title:         "Starter Pack",
		Description:   "Two assets to get going.",
		Price:         "39",
		OriginalPrice: "58",
		ProductIDs:    []string{"2", "3"},
	}

	bundle, fieldErrors, err := service.SaveBundle(ctx, "", form)
	require.NoError(t, err)
	require.Empty(t, fieldErrors)

	assert.True(t, strings.HasPrefix(bundle.ID, "b-"))
	assert.Equal(t, []string{"2", "3"}, bundle.ProductIDs)
	assert.NotEmpty(t, bundle.Image)

	bundles, err := bundleRepo.GetBundles(ctx)
	require.NoError(t, err)
	require.Len(t, bundles, 2)
	assert.Equal(t, bundle.ID, bundles[0].ID)
}

func TestCatalogService_CreateBundleWithNoMembers(t *testing.T) {
	service, _, _ := newCatalogFixture(t)

	bundle, fieldErrors, err := service.SaveBundle(context.Background(), "", BundleForm{
		Title:       "Empty Pack",
		Description: "Nothing inside yet.",
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	assert.Equal(t, []string{}, bundle.ProductIDs)
}

func TestCatalogService_UpdateBundleKeepsImage(t *testing.T) {
	service, _, bundleRepo := newCatalogFixture(t)
	ctx := context.Background()

	existing, err := bundleRepo.GetBundleByID(ctx, "b1")
	require.NoError(t, err)
	require.NotNil(t, existing)

	bundle, fieldErrors, err := service.SaveBundle(ctx, "b1", BundleForm{
		Title:       "Founder Pack v2",
		Description: "Updated selection.",
		Price:       "64",
		ProductIDs:  []string{"1"},
	})
	require.NoError(t, err)
	require.Empty(t, fieldErrors)

	assert.Equal(t, existing.Image, bundle.Image)
	assert.Equal(t, []string{"1"}, bundle.ProductIDs)
}

func TestCatalogService_DeleteBundleLeavesProducts(t *testing.T) {
	service, productRepo, bundleRepo := newCatalogFixture(t)
	ctx := context.Background()

	require.NoError(t, service.DeleteBundle(ctx, "b1"))

	bundles, err := bundleRepo.GetBundles(ctx)
	require.NoError(t, err)
	assert.Empty(t, bundles)

	products, err := productRepo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)

	err = service.DeleteBundle(ctx, "b1")
	assert.ErrorIs(t, err, ErrBundleNotFound)
}
