package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
)

const (
	dateLayout      = "2006-01-02"
	minRentalDays   = 7
	defaultLeadDays = 2
)

// CheckoutForm is the rental request form. The end date is not a field: it
// is always derived from the start date and the duration, and recomputed
// whenever either changes.
type CheckoutForm struct {
	Identification string
	Phone          string
	Notes          string
	StartDate      string // yyyy-mm-dd
	DurationWeeks  int
}

// EndDate derives the rental end date as start + weeks*7 days. It returns
// an empty string while the start date is unparseable.
func (f CheckoutForm) EndDate() string {
	start, err := time.Parse(dateLayout, f.StartDate)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, f.DurationWeeks*7).Format(dateLayout)
}

// FieldError is a client-side validation failure, surfaced immediately and
// before any network call.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the field errors that blocked a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

type checkoutService struct {
	carts     CartAPI
	rentals   RentAPI
	images    ImageAPI
	maxUpload int64
	now       func() time.Time
}

func NewCheckoutService(carts CartAPI, rentals RentAPI, images ImageAPI, maxUpload int64) CheckoutService {
	return &checkoutService{
		carts:     carts,
		rentals:   rentals,
		images:    images,
		maxUpload: maxUpload,
		now:       time.Now,
	}
}

// DefaultForm starts two days out with a one-week duration.
func (s *checkoutService) DefaultForm() CheckoutForm {
	return CheckoutForm{
		StartDate:     s.now().AddDate(0, 0, defaultLeadDays).Format(dateLayout),
		DurationWeeks: 1,
	}
}

// Validate applies the presentation-level checks. The server re-validates
// everything independently; this only saves the user a round trip.
func (s *checkoutService) Validate(cart *domain.Cart, form CheckoutForm, file *FileUpload) []FieldError {
	var errs []FieldError

	if cart.Empty() {
		errs = append(errs, FieldError{Field: "cart", Message: "Your cart is empty"})
	}
	if strings.TrimSpace(form.Identification) == "" {
		errs = append(errs, FieldError{Field: "identification", Message: "Identification number is required"})
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone number is required"})
	}

	if file == nil || file.Size == 0 {
		errs = append(errs, FieldError{Field: "identification_image", Message: "An identification image is required"})
	} else if s.maxUpload > 0 && file.Size > s.maxUpload {
		errs = append(errs, FieldError{
			Field:   "identification_image",
			Message: fmt.Sprintf("Identification image must be %d MB or smaller", s.maxUpload>>20),
		})
	}

	start, err := time.Parse(dateLayout, form.StartDate)
	if err != nil {
		errs = append(errs, FieldError{Field: "start_date", Message: "Start date is not a valid date"})
		return errs
	}

	today := s.now().Truncate(24 * time.Hour)
	if start.Before(today) {
		errs = append(errs, FieldError{Field: "start_date", Message: "Start date cannot be in the past"})
	}

	end := start.AddDate(0, 0, form.DurationWeeks*7)
	if !end.After(start) {
		errs = append(errs, FieldError{Field: "duration", Message: "End date must be after the start date"})
	} else if end.Sub(start) < minRentalDays*24*time.Hour {
		errs = append(errs, FieldError{Field: "duration", Message: "Rentals run for at least one week"})
	}

	return errs
}

// Submit runs the checkout sequence. Each step's failure aborts the rest
// and surfaces the server's message; the cart is only consumed by the
// server on a successful order submission.
func (s *checkoutService) Submit(ctx context.Context, token string, cart *domain.Cart, form CheckoutForm, file FileUpload) (*domain.Order, error) {
	if errs := s.Validate(cart, form, &file); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	// Step 1: stage the identification image under a temporary id.
	imagePath, err := s.images.UploadTempIdentification(ctx, token, file.Filename, file.Size, file.Content)
	if err != nil {
		return nil, fmt.Errorf("identification upload failed: %w", err)
	}

	// Step 2: re-fetch the cart for its authoritative id.
	fresh, err := s.carts.GetCart(ctx, token)
	if err != nil {
		return nil, err
	}
	if fresh.Empty() {
		return nil, &ValidationError{Fields: []FieldError{{Field: "cart", Message: "Your cart is empty"}}}
	}

	// Step 3: submit the order.
	order, err := s.rentals.CreateOrder(ctx, token, api.OrderInput{
		Identification:      form.Identification,
		Phone:               form.Phone,
		Notes:               form.Notes,
		CartID:              fresh.ID,
		StartDate:           form.StartDate,
		EndDate:             form.EndDate(),
		IdentificationImage: imagePath,
	})
	if err != nil {
		return nil, err
	}

	// Step 4: best effort. The temporary upload id differs from the final
	// order id, so reattach the stored path; the order stands either way.
	if order.ID != "" {
		if err := s.images.UpdateRentImagePath(ctx, token, order.ID, imagePath); err != nil {
			logger.Warn("Failed to reattach identification image", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}
