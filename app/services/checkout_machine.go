package services

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Stage string

const (
	StageForm       Stage = "form"
	StageProcessing Stage = "processing"
	StageSuccess    Stage = "success"
)

type PaymentMethod string

const (
	MethodCard   PaymentMethod = "card"
	MethodPaypal PaymentMethod = "paypal"
	MethodUPI    PaymentMethod = "upi"
)

// ProcessingSteps are the status lines shown while the simulated gateway
// "settles" the payment. Success is reached only after every step has been
// advanced through; nothing here is tied to a real settlement.
var ProcessingSteps = []string{
	"Connecting to secure payment gateway...",
	"Verifying payment credentials with bank...",
	"Authorizing transaction amount...",
	"Finalizing digital asset allocation...",
	"Generating secure license keys...",
}

const (
	ItemTypeProduct = "product"
	ItemTypeBundle  = "bundle"
)

// CheckoutItem is the resolved checkout target: either a product or a
// bundle, flattened to what the order summary and ledger need.
type CheckoutItem struct {
	AssetID string
	Type    string
	Title   string
	Price   decimal.Decimal
	Image   string
}

type CheckoutForm struct {
	Name       string        `validate:"required"`
	Email      string        `validate:"required"`
	Method     PaymentMethod `validate:"required,oneof=card paypal upi"`
	CardNumber string
	Expiry     string
	CVC        string
	UPIID      string
}

var (
	ErrNotInForm      = errors.New("checkout: submit is only valid in the form stage")
	ErrNotProcessing  = errors.New("checkout: advance is only valid in the processing stage")
	ErrItemNotFound   = errors.New("checkout: item not found")
	ErrFormValidation = errors.New("checkout: form validation failed")
)

// Checkout is a single purchase driven through form -> processing ->
// success by explicit events. Transitions are linear; there is no backward
// edge and no failure state past form validation.
type Checkout struct {
	item      CheckoutItem
	form      CheckoutForm
	stage     Stage
	step      int
	committed bool
}

func newCheckout(item CheckoutItem) *Checkout {
	return &Checkout{item: item, stage: StageForm}
}

func (c *Checkout) Item() CheckoutItem {
	return c.item
}

func (c *Checkout) Stage() Stage {
	return c.stage
}

func (c *Checkout) Form() CheckoutForm {
	return c.form
}

// StepText returns the processing line for the current step, or "" outside
// the processing stage.
func (c *Checkout) StepText() string {
	if c.stage != StageProcessing || c.step >= len(ProcessingSteps) {
		return ""
	}
	return ProcessingSteps[c.step]
}

// submit moves the machine into processing after the form passes
// validation. Validation failures keep the machine in the form stage.
func (c *Checkout) submit(form CheckoutForm) error {
	if c.stage != StageForm {
		return ErrNotInForm
	}
	c.form = form
	c.stage = StageProcessing
	c.step = 0
	return nil
}

// advance moves to the next processing step; after the final step it
// transitions to success. The success commit belongs to the service, not
// the machine.
func (c *Checkout) advance() error {
	if c.stage != StageProcessing {
		return ErrNotProcessing
	}
	c.step++
	if c.step >= len(ProcessingSteps) {
		c.stage = StageSuccess
	}
	return nil
}
