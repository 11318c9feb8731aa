package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/utils/calc"
)

// SubmitReview prepends a review to the product and recomputes the rating
// as the weighted mean of the prior rating over the prior count plus the
// new rating, rounded to one decimal. Reviews are append-only; nothing in
// the flow edits or removes one.
func (s *CatalogService) SubmitReview(ctx context.Context, productID string, reviewer *models.User, rating int, comment string) (*models.Product, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidReview)
	}
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("%w: comment must not be blank", ErrInvalidReview)
	}

	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != productID {
			continue
		}

		now := time.Now()
		review := models.Review{
			ID:         fmt.Sprintf("rev-%d", now.UnixMilli()),
			UserName:   reviewer.Name,
			UserAvatar: reviewer.Avatar,
			Rating:     rating,
			Comment:    comment,
			Date:       now.Format("2006-01-02"),
		}

		products[i].Rating = calc.WeightedRating(products[i].Rating, products[i].ReviewsCount, rating)
		products[i].Reviews = append([]models.Review{review}, products[i].Reviews...)
		products[i].ReviewsCount = len(products[i].Reviews)

		if err := s.productRepo.SaveProducts(ctx, products); err != nil {
			return nil, err
		}
		log.Printf("SubmitReview: review %s added to product %s, rating now %.1f", review.ID, productID, products[i].Rating)
		return &products[i], nil
	}

	return nil, ErrProductNotFound
}
