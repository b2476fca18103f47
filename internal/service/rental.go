package service

import (
	"context"
	"fmt"

	"github.com/reihansyahfitra/hes-vault-client/internal/api"
	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
	"github.com/reihansyahfitra/hes-vault-client/internal/logger"
)

// Action is a user-facing rental control. Which actions exist for a given
// order is decided by LegalActions alone; every view consumes that one
// function so the list and detail pages can never disagree.
type Action string

const (
	ActionApprove       Action = "APPROVE"
	ActionReject        Action = "REJECT"
	ActionCancelRequest Action = "CANCEL_REQUEST"
	ActionPayNow        Action = "PAY_NOW"
	ActionMarkPaid      Action = "MARK_PAID"
	ActionCancelRental  Action = "CANCEL_RENTAL"
	ActionStartRental   Action = "START_RENTAL"
	ActionMarkReturned  Action = "MARK_RETURNED"
	ActionUploadBefore  Action = "UPLOAD_BEFORE_DOC"
	ActionUploadAfter   Action = "UPLOAD_AFTER_DOC"
)

var actionLabels = map[Action]string{
	ActionApprove:       "Approve",
	ActionReject:        "Reject",
	ActionCancelRequest: "Cancel Request",
	ActionPayNow:        "Pay Now",
	ActionMarkPaid:      "Mark as Paid",
	ActionCancelRental:  "Cancel Rental",
	ActionStartRental:   "Start Rental",
	ActionMarkReturned:  "Mark as Returned",
	ActionUploadBefore:  "Upload Before Documentation",
	ActionUploadAfter:   "Upload After Documentation",
}

func (a Action) Label() string {
	if label, ok := actionLabels[a]; ok {
		return label
	}
	return string(a)
}

// Destructive reports whether the action needs an explicit confirmation
// step before the request is issued.
func (a Action) Destructive() bool {
	switch a {
	case ActionCancelRequest, ActionCancelRental, ActionReject:
		return true
	}
	return false
}

// DocState captures which condition photos an order already carries.
type DocState struct {
	HasBefore bool
	HasAfter  bool
}

func DocStateOf(o *domain.Order) DocState {
	return DocState{HasBefore: o.HasBeforeDoc(), HasAfter: o.HasAfterDoc()}
}

// LegalActions returns the exact set of controls to offer for an order in
// the given status/payment state, as seen by the given role. The client
// never checks whether a transition is allowed beyond this table; the
// server is the sole authority and will reject anything illegal.
func LegalActions(status domain.OrderStatus, payment domain.PaymentStatus, team domain.Team, docs DocState) []Action {
	admin := team == domain.TeamAdministrator

	switch status.Normalize() {
	case domain.OrderStatusWaiting:
		if admin {
			return []Action{ActionApprove, ActionReject}
		}
		return []Action{ActionCancelRequest}

	case domain.OrderStatusApproved:
		switch payment {
		case domain.PaymentStatusPaid:
			if admin {
				return []Action{ActionStartRental}
			}
			return []Action{ActionCancelRental}
		case domain.PaymentStatusPending:
			// Payment confirmation is in flight; only an admin can settle it.
			if admin {
				return []Action{ActionMarkPaid}
			}
			return nil
		default:
			if admin {
				return []Action{ActionMarkPaid}
			}
			return []Action{ActionPayNow}
		}

	case domain.OrderStatusOnRent:
		if admin {
			return []Action{ActionMarkReturned}
		}
		if !docs.HasBefore {
			return []Action{ActionUploadBefore}
		}
		if !docs.HasAfter {
			return []Action{ActionUploadAfter}
		}
		return nil

	case domain.OrderStatusOverdue:
		if admin {
			return []Action{ActionMarkReturned}
		}
		if docs.HasBefore && !docs.HasAfter {
			return []Action{ActionUploadAfter}
		}
		return nil
	}

	// RETURNED, REJECTED and CANCELLED are terminal.
	return nil
}

// Badge classifies a status for display.
type Badge string

const (
	BadgeWarning Badge = "warning"
	BadgeInfo    Badge = "info"
	BadgeSuccess Badge = "success"
	BadgeError   Badge = "error"
	BadgeNeutral Badge = "neutral"
)

func StatusBadge(s domain.OrderStatus) Badge {
	switch s.Normalize() {
	case domain.OrderStatusWaiting:
		return BadgeWarning
	case domain.OrderStatusApproved:
		return BadgeInfo
	case domain.OrderStatusOnRent:
		return BadgeSuccess
	case domain.OrderStatusOverdue, domain.OrderStatusRejected:
		return BadgeError
	default:
		return BadgeNeutral
	}
}

func PaymentBadge(p domain.PaymentStatus) Badge {
	switch p {
	case domain.PaymentStatusPaid:
		return BadgeSuccess
	case domain.PaymentStatusPending:
		return BadgeWarning
	default:
		return BadgeError
	}
}

type rentalService struct {
	backend RentAPI
	images  ImageAPI
}

func NewRentalService(backend RentAPI, images ImageAPI) RentalService {
	return &rentalService{backend: backend, images: images}
}

func (s *rentalService) ListAll(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error) {
	return s.backend.ListAllOrders(ctx, token, q)
}

func (s *rentalService) ListMine(ctx context.Context, token string, q api.OrderQuery) (*api.OrderList, error) {
	return s.backend.ListMyOrders(ctx, token, q)
}

func (s *rentalService) Get(ctx context.Context, token, orderID string) (*domain.Order, error) {
	return s.backend.GetOrder(ctx, token, orderID)
}

// Perform issues the single status-update call an action maps to, then
// unconditionally re-fetches the order. State is never mutated
// optimistically; on failure the caller keeps whatever it was displaying.
func (s *rentalService) Perform(ctx context.Context, token, orderID string, action Action) (*domain.Order, error) {
	var err error
	switch action {
	case ActionApprove:
		err = s.backend.UpdateOrderStatus(ctx, token, orderID, domain.OrderStatusApproved)
	case ActionReject:
		err = s.backend.UpdateOrderStatus(ctx, token, orderID, domain.OrderStatusRejected)
	case ActionCancelRequest, ActionCancelRental:
		err = s.backend.UpdateOrderStatus(ctx, token, orderID, domain.OrderStatusCancelled)
	case ActionStartRental:
		err = s.backend.UpdateOrderStatus(ctx, token, orderID, domain.OrderStatusOnRent)
	case ActionMarkReturned:
		err = s.backend.UpdateOrderStatus(ctx, token, orderID, domain.OrderStatusReturned)
	case ActionPayNow, ActionMarkPaid:
		err = s.backend.UpdatePaymentStatus(ctx, token, orderID, domain.PaymentStatusPaid)
	default:
		return nil, fmt.Errorf("unknown rental action %q", action)
	}
	if err != nil {
		return nil, err
	}
	return s.backend.GetOrder(ctx, token, orderID)
}

// UploadDocument uploads a condition photo for the order and re-fetches it.
func (s *rentalService) UploadDocument(ctx context.Context, token, orderID string, doc domain.DocType, file FileUpload) (*domain.Order, error) {
	path, err := s.images.UploadRentDocument(ctx, token, orderID, doc, file.Filename, file.Size, file.Content)
	if err != nil {
		return nil, err
	}
	logger.Debug("Documentation uploaded", "order_id", orderID, "doc_type", doc, "path", path)
	return s.backend.GetOrder(ctx, token, orderID)
}
