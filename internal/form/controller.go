// Package form owns the edit session behind the product form: which
// record, if any, is being edited, and the raw text values of the three
// fields.
package form

import (
	"context"
	"strconv"

	"github.com/tarunbommali/ekart/internal/client"
	"github.com/tarunbommali/ekart/internal/models"
	"github.com/tarunbommali/ekart/internal/normalize"
)

// Controller is a single edit session. The zero value is an idle,
// empty form.
type Controller struct {
	name     string
	price    string
	quantity string
	targetID string
}

func New() *Controller { return &Controller{} }

// SetName, SetPrice and SetQuantity record raw field input as typed.
func (c *Controller) SetName(text string)     { c.name = text }
func (c *Controller) SetPrice(text string)    { c.price = text }
func (c *Controller) SetQuantity(text string) { c.quantity = text }

// Fields returns the current raw field values.
func (c *Controller) Fields() (name, price, quantity string) {
	return c.name, c.price, c.quantity
}

// Editing reports whether the session targets an existing record.
func (c *Controller) Editing() bool { return c.targetID != "" }

// TargetID is the id of the record being edited, or "" when idle.
func (c *Controller) TargetID() string { return c.targetID }

// BeginEdit loads a record's fields as text and marks it as the update
// target.
func (c *Controller) BeginEdit(p models.Product) {
	c.name = p.Name
	c.price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	c.quantity = strconv.Itoa(p.Quantity)
	c.targetID = p.ID
}

// CancelEdit discards the in-progress edit without touching the
// service.
func (c *Controller) CancelEdit() { c.reset() }

func (c *Controller) reset() { *c = Controller{} }

// Submission is the outcome of a submit: the normalized payload, the
// update target when editing, and the per-field parse results so a
// caller can refuse a submission that silently zeroed a value.
type Submission struct {
	Payload  client.ProductPayload
	TargetID string // empty for a create
	Price    normalize.ParseResult
	Quantity normalize.ParseResult
}

// IsUpdate reports whether the submission targets an existing record.
func (s Submission) IsUpdate() bool { return s.TargetID != "" }

// Submit normalizes the raw fields and returns the session to idle,
// whatever the caller then does with the payload.
func (c *Controller) Submit() Submission {
	price, priceResult := normalize.Price(c.price)
	quantity, quantityResult := normalize.Quantity(c.quantity)

	s := Submission{
		Payload: client.ProductPayload{
			Name:     c.name,
			Price:    price,
			Quantity: quantity,
		},
		TargetID: c.targetID,
		Price:    priceResult,
		Quantity: quantityResult,
	}
	c.reset()
	return s
}

// SubmitTo normalizes and routes the submission through the product
// client: an update when a target is set, otherwise a create.
func (c *Controller) SubmitTo(ctx context.Context, pc *client.Client) (Submission, error) {
	s := c.Submit()
	var err error
	if s.IsUpdate() {
		_, _, err = pc.Update(ctx, s.TargetID, s.Payload)
	} else {
		_, err = pc.Create(ctx, s.Payload)
	}
	return s, err
}
