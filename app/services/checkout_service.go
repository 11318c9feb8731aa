package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Rakhulsr/go-digistore/app/helpers"
	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/Rakhulsr/go-digistore/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CheckoutService struct {
	productRepo repositories.CatalogRepositoryImpl
	bundleRepo  repositories.BundleRepositoryImpl
	ledgerRepo  repositories.LedgerRepositoryImpl
	validator   *validator.Validate
	stepDelay   time.Duration
}

func NewCheckoutService(
	productRepo repositories.CatalogRepositoryImpl,
	bundleRepo repositories.BundleRepositoryImpl,
	ledgerRepo repositories.LedgerRepositoryImpl,
	validator *validator.Validate,
	stepDelay time.Duration,
) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		bundleRepo:  bundleRepo,
		ledgerRepo:  ledgerRepo,
		validator:   validator,
		stepDelay:   stepDelay,
	}
}

// Begin resolves the checkout target from a raw product id or a
// "bundle-<id>" composite. An unknown id returns ErrItemNotFound before any
// state machine exists.
func (s *CheckoutService) Begin(ctx context.Context, assetID string) (*Checkout, error) {
	id, isBundle := models.ParseAssetID(assetID)

	if isBundle {
		bundle, err := s.bundleRepo.GetBundleByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if bundle == nil {
			return nil, ErrItemNotFound
		}
		return newCheckout(CheckoutItem{
			AssetID: assetID,
			Type:    ItemTypeBundle,
			Title:   bundle.Title,
			Price:   bundle.Price,
			Image:   bundle.Image,
		}), nil
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrItemNotFound
	}
	return newCheckout(CheckoutItem{
		AssetID: product.ID,
		Type:    ItemTypeProduct,
		Title:   product.Title,
		Price:   product.Price,
		Image:   product.Image,
	}), nil
}

// Submit validates the buyer form and, on success, moves the machine into
// the processing stage. On validation failure the machine stays in form and
// the field errors are returned alongside ErrFormValidation.
func (s *CheckoutService) Submit(co *Checkout, form CheckoutForm) (map[string]string, error) {
	if co.Stage() != StageForm {
		return nil, ErrNotInForm
	}

	fieldErrors := map[string]string{}
	if err := s.validator.Struct(&form); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			fieldErrors = helpers.FormatValidationErrors(errs)
		} else {
			return nil, err
		}
	}

	// Card details are checked by string length only, matching the original
	// flow. No checksum, no expiry validation.
	if form.Method == MethodCard {
		if len(form.CardNumber) < 16 {
			fieldErrors["cardnumber"] = "Please enter valid card details."
		}
		if len(form.CVC) < 3 {
			fieldErrors["cvc"] = "Please enter valid card details."
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors, ErrFormValidation
	}

	return nil, co.submit(form)
}

// Process drives the machine through all processing steps and commits the
// purchase when success is reached. Context cancellation mid-processing
// abandons the run with nothing committed; once the commit sequence starts
// it is not cancellable.
func (s *CheckoutService) Process(ctx context.Context, co *Checkout) (*models.OrderRecord, error) {
	if co.Stage() != StageProcessing {
		return nil, ErrNotProcessing
	}

	for co.Stage() == StageProcessing {
		log.Printf("Process: %s", co.StepText())

		if s.stepDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.stepDelay):
			}
		}

		if err := co.advance(); err != nil {
			return nil, err
		}
	}

	return s.commit(ctx, co)
}

// commit runs the success side effects exactly once: ownership, then
// history, then last-customer. The three writes are not transactional; a
// failure mid-sequence leaves a partially updated ledger.
func (s *CheckoutService) commit(ctx context.Context, co *Checkout) (*models.OrderRecord, error) {
	if co.committed {
		return nil, nil
	}

	item := co.Item()
	form := co.Form()

	if err := s.ledgerRepo.RecordOwnership(ctx, item.AssetID); err != nil {
		return nil, fmt.Errorf("failed to record ownership: %w", err)
	}

	order := models.OrderRecord{
		OrderID: NewOrderCode(),
		Date:    time.Now().Format("Jan 2, 2006"),
		Title:   item.Title,
		Price:   item.Price,
		Status:  models.OrderStatusPaidDelivered,
		Method:  strings.ToUpper(string(form.Method)),
	}
	if err := s.ledgerRepo.RecordOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to record order history: %w", err)
	}

	if err := s.ledgerRepo.SaveLastCustomer(ctx, models.Customer{Name: form.Name, Email: form.Email}); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	co.committed = true
	log.Printf("commit: order %s recorded for asset %s", order.OrderID, item.AssetID)
	return &order, nil
}

func NewOrderCode() string {
	return fmt.Sprintf("NX-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
}
