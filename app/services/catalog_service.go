package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Rakhulsr/go-digistore/app/helpers"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("catalog: product not found")
	ErrBundleNotFound  = errors.New("catalog: bundle not found")
	ErrInvalidReview   = errors.New("catalog: invalid review")
)

// CatalogService owns the admin mutations over the persisted catalog copies
// and the review submission flow. Every save writes the entire list back
// under its storage key, last write wins.
type CatalogService struct {
	productRepo repositories.CatalogRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	validator   *validator.Validate
}

func NewCatalogService(
	productRepo repositories.CatalogRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	validator *validator.Validate,
) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		validator:   validator,
	}
}

type ProductForm struct {
	Title         string          `validate:"required"`
	Description   string          `validate:"required"`
	Category      models.Category `validate:"required,oneof=eBook Course Template Tool"`
	Price         string
	OriginalPrice string
	Image         string
	Features      string
	DownloadURL   string
	Author        string
	PageCount     string
}

type BundleForm struct {
	Title         string `validate:"required"`
	Description   string `validate:"required"`
	Price         string
	OriginalPrice string
	ProductIDs    []string
}

// parsePrice coerces unparseable input to zero instead of rejecting it,
// matching the original NaN-to-0 behavior on price fields.
func parsePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return price
}

func splitFeatures(raw string) []string {
	features := []string{}
	for _, f := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}

func fileSizeFor(category models.Category) string {
	if category == models.CategoryEbook {
		return "12MB PDF"
	}
	return "45MB ZIP"
}

// SaveProduct creates a product when id is empty, otherwise updates it in
// place. Creates get a timestamp-based synthetic id, a default rating of 5
// and no reviews; updates preserve the existing rating and review state.
func (s *CatalogService) SaveProduct(ctx context.Context, id string, form ProductForm) (*models.Product, map[string]string, error) {
	if err := s.validator.Struct(&form); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return nil, helpers.FormatValidationErrors(errs), nil
		}
		return nil, nil, err
	}

	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, nil, err
	}

	pageCount, _ := strconv.Atoi(strings.TrimSpace(form.PageCount))

	product := models.Product{
		ID:              id,
		Title:           form.Title,
		Description:     form.Description,
		Price:           parsePrice(form.Price),
		OriginalPrice:   parsePrice(form.OriginalPrice),
		Category:        form.Category,
		Image:           form.Image,
		Features:        splitFeatures(form.Features),
		LongDescription: form.Description,
		FileSize:        fileSizeFor(form.Category),
		DownloadURL:     form.DownloadURL,
		Author:          form.Author,
		PageCount:       pageCount,
		Rating:          5,
		ReviewsCount:    0,
		Reviews:         []models.Review{},
	}

	if id == "" {
		product.ID = fmt.Sprintf("p-%d", time.Now().UnixMilli())
		products = append([]models.Product{product}, products...)
	} else {
		found := false
		for i := range products {
			if products[i].ID != id {
				continue
			}
			product.Rating = products[i].Rating
			product.ReviewsCount = products[i].ReviewsCount
			product.Reviews = products[i].Reviews
			products[i] = product
			found = true
			break
		}
		if !found {
			return nil, nil, ErrProductNotFound
		}
	}

	if err := s.productRepo.SaveProducts(ctx, products); err != nil {
		return nil, nil, err
	}
	log.Printf("SaveProduct: persisted product %s (%s)", product.ID, product.Title)
	return &product, nil, nil
}

// DeleteProduct removes the product and strips its id from every bundle's
// member list in the same operation. This is the only place referential
// integrity between bundles and products is actively maintained.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return err
	}

	remaining := []models.Product{}
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}
	if !found {
		return ErrProductNotFound
	}

	bundles, err := s.bundleRepo.GetBundles(ctx)
	if err != nil {
		return err
	}
	for i := range bundles {
		memberIDs := []string{}
		for _, pid := range bundles[i].ProductIDs {
			if pid != id {
				memberIDs = append(memberIDs, pid)
			}
		}
		bundles[i].ProductIDs = memberIDs
	}

	if err := s.productRepo.SaveProducts(ctx, remaining); err != nil {
		return err
	}
	if err := s.bundleRepo.SaveBundles(ctx, bundles); err != nil {
		return err
	}
	log.Printf("DeleteProduct: removed product %s and stripped it from %d bundles", id, len(bundles))
	return nil
}

// SaveBundle creates or updates a bundle. Member selection is free: no
// non-empty check and no enforcement that the bundle price undercuts the
// sum of its members.
func (s *CatalogService) SaveBundle(ctx context.Context, id string, form BundleForm) (*models.Bundle, map[string]string, error) {
	if err := s.validator.Struct(&form); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return nil, helpers.FormatValidationErrors(errs), nil
		}
		return nil, nil, err
	}

	bundles, err := s.bundleRepo.GetBundles(ctx)
	if err != nil {
		return nil, nil, err
	}

	memberIDs := form.ProductIDs
	if memberIDs == nil {
		memberIDs = []string{}
	}

	bundle := models.Bundle{
		ID:            id,
		Title:         form.Title,
		Description:   form.Description,
		Price:         parsePrice(form.Price),
		OriginalPrice: parsePrice(form.OriginalPrice),
		ProductIDs:    memberIDs,
		Image:         "https://picsum.photos/seed/bundle/800/600",
	}

	if id == "" {
		bundle.ID = fmt.Sprintf("b-%d", time.Now().UnixMilli())
		bundles = append([]models.Bundle{bundle}, bundles...)
	} else {
		found := false
		for i := range bundles {
			if bundles[i].ID != id {
				continue
			}
			bundle.Image = bundles[i].Image
			bundles[i] = bundle
			found = true
			break
		}
		if !found {
			return nil, nil, ErrBundleNotFound
		}
	}

	if err := s.bundleRepo.SaveBundles(ctx, bundles); err != nil {
		return nil, nil, err
	}
	log.Printf("SaveBundle: persisted bundle %s (%s)", bundle.ID, bundle.Title)
	return &bundle, nil, nil
}

// DeleteBundle removes the bundle only. Ownership already granted from the
// bundle and its history records are left untouched.
func (s *CatalogService) DeleteBundle(ctx context.Context, id string) error {
	bundles, err := s.bundleRepo.GetBundles(ctx)
	if err != nil {
		return err
	}

	remaining := []models.Bundle{}
	found := false
	for _, b := range bundles {
		if b.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, b)
	}
	if !found {
		return ErrBundleNotFound
	}

	return s.bundleRepo.SaveBundles(ctx, remaining)
}
