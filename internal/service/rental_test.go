package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reihansyahfitra/hes-vault-client/internal/domain"
)

func actionLabelList(actions []Action) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label()
	}
	return labels
}

func TestLegalActions(t *testing.T) {
	type tc struct {
		name    string
		status  domain.OrderStatus
		payment domain.PaymentStatus
		team    domain.Team
		docs    DocState
		want    []Action
	}

	cases := []tc{
		{
			name:   "waiting admin gets approve and reject",
			status: domain.OrderStatusWaiting, payment: domain.PaymentStatusUnpaid,
			team: domain.TeamAdministrator,
			want: []Action{ActionApprove, ActionReject},
		},
		{
			name:   "waiting user gets exactly cancel request",
			status: domain.OrderStatusWaiting, payment: domain.PaymentStatusUnpaid,
			team: domain.TeamRegular,
			want: []Action{ActionCancelRequest},
		},
		{
			name:   "approved paid admin starts the rental",
			status: domain.OrderStatusApproved, payment: domain.PaymentStatusPaid,
			team: domain.TeamAdministrator,
			want: []Action{ActionStartRental},
		},
		{
			name:   "approved paid user may still cancel",
			status: domain.OrderStatusApproved, payment: domain.PaymentStatusPaid,
			team: domain.TeamRegular,
			want: []Action{ActionCancelRental},
		},
		{
			name:   "approved unpaid user pays",
			status: domain.OrderStatusApproved, payment: domain.PaymentStatusUnpaid,
			team: domain.TeamRegular,
			want: []Action{ActionPayNow},
		},
		{
			name:   "approved unpaid admin marks paid",
			status: domain.OrderStatusApproved, payment: domain.PaymentStatusUnpaid,
			team: domain.TeamAdministrator,
			want: []Action{ActionMarkPaid},
		},
		{
			name:   "approved pending user has nothing to do",
			status: domain.OrderStatusApproved, payment: domain.PaymentStatusPending,
			team: domain.TeamRegular,
			want: nil,
		},
		{
			name:   "approved pending admin settles the payment",
			status: domain.OrderStatusApproved, payment: domain.PaymentStatusPending,
			team: domain.TeamAdministrator,
			want: []Action{ActionMarkPaid},
		},
		{
			name:   "onrent admin marks returned",
			status: domain.OrderStatusOnRent, payment: domain.PaymentStatusPaid,
			team: domain.TeamAdministrator,
			want: []Action{ActionMarkReturned},
		},
		{
			name:   "onrent user without before doc uploads before",
			status: domain.OrderStatusOnRent, payment: domain.PaymentStatusPaid,
			team: domain.TeamRegular,
			want: []Action{ActionUploadBefore},
		},
		{
			name:   "onrent user with before doc uploads after",
			status: domain.OrderStatusOnRent, payment: domain.PaymentStatusPaid,
			team: domain.TeamRegular, docs: DocState{HasBefore: true},
			want: []Action{ActionUploadAfter},
		},
		{
			name:   "onrent user with both docs has nothing left",
			status: domain.OrderStatusOnRent, payment: domain.PaymentStatusPaid,
			team: domain.TeamRegular, docs: DocState{HasBefore: true, HasAfter: true},
			want: nil,
		},
		{
			name:   "active alias behaves like onrent",
			status: domain.OrderStatusActive, payment: domain.PaymentStatusPaid,
			team: domain.TeamAdministrator,
			want: []Action{ActionMarkReturned},
		},
		{
			name:   "overdue admin marks returned",
			status: domain.OrderStatusOverdue, payment: domain.PaymentStatusPaid,
			team: domain.TeamAdministrator,
			want: []Action{ActionMarkReturned},
		},
		{
			name:   "overdue user with before doc uploads after",
			status: domain.OrderStatusOverdue, payment: domain.PaymentStatusPaid,
			team: domain.TeamRegular, docs: DocState{HasBefore: true},
			want: []Action{ActionUploadAfter},
		},
		{
			name:   "overdue user without before doc has nothing",
			status: domain.OrderStatusOverdue, payment: domain.PaymentStatusPaid,
			team: domain.TeamRegular,
			want: nil,
		},
		{
			name:   "returned is terminal for admins",
			status: domain.OrderStatusReturned, payment: domain.PaymentStatusPaid,
			team: domain.TeamAdministrator,
			want: nil,
		},
		{
			name:   "rejected is terminal for users",
			status: domain.OrderStatusRejected, payment: domain.PaymentStatusUnpaid,
			team: domain.TeamRegular,
			want: nil,
		},
		{
			name:   "cancelled is terminal",
			status: domain.OrderStatusCancelled, payment: domain.PaymentStatusUnpaid,
			team: domain.TeamRegular,
			want: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LegalActions(c.status, c.payment, c.team, c.docs)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestLegalActions_Labels(t *testing.T) {
	// The waiting-state controls the pages render, by label.
	user := LegalActions(domain.OrderStatusWaiting, domain.PaymentStatusUnpaid, domain.TeamRegular, DocState{})
	assert.Equal(t, []string{"Cancel Request"}, actionLabelList(user))

	admin := LegalActions(domain.OrderStatusWaiting, domain.PaymentStatusUnpaid, domain.TeamAdministrator, DocState{})
	assert.Equal(t, []string{"Approve", "Reject"}, actionLabelList(admin))
}

func TestAction_Destructive(t *testing.T) {
	assert.True(t, ActionCancelRequest.Destructive())
	assert.True(t, ActionCancelRental.Destructive())
	assert.True(t, ActionReject.Destructive())
	assert.False(t, ActionApprove.Destructive())
	assert.False(t, ActionPayNow.Destructive())
	assert.False(t, ActionStartRental.Destructive())
}

func TestRentalService_Perform(t *testing.T) {
	ctx := context.Background()
	token := "tok"
	orderID := "order-1"

	transitions := []struct {
		action Action
		status domain.OrderStatus
	}{
		{ActionApprove, domain.OrderStatusApproved},
		{ActionReject, domain.OrderStatusRejected},
		{ActionCancelRequest, domain.OrderStatusCancelled},
		{ActionCancelRental, domain.OrderStatusCancelled},
		{ActionStartRental, domain.OrderStatusOnRent},
		{ActionMarkReturned, domain.OrderStatusReturned},
	}

	for _, tr := range transitions {
		t.Run(string(tr.action), func(t *testing.T) {
			backend := new(MockRentAPI)
			images := new(MockImageAPI)
			svc := NewRentalService(backend, images)

			refetched := &domain.Order{ID: orderID, OrderStatus: tr.status}
			backend.On("UpdateOrderStatus", ctx, token, orderID, tr.status).Return(nil)
			backend.On("GetOrder", ctx, token, orderID).Return(refetched, nil)

			order, err := svc.Perform(ctx, token, orderID, tr.action)
			require.NoError(t, err)
			assert.Equal(t, tr.status, order.OrderStatus)
			backend.AssertExpectations(t)
		})
	}

	t.Run("payment actions settle to paid", func(t *testing.T) {
		for _, action := range []Action{ActionPayNow, ActionMarkPaid} {
			backend := new(MockRentAPI)
			images := new(MockImageAPI)
			svc := NewRentalService(backend, images)

			backend.On("UpdatePaymentStatus", ctx, token, orderID, domain.PaymentStatusPaid).Return(nil)
			backend.On("GetOrder", ctx, token, orderID).Return(&domain.Order{ID: orderID, PaymentStatus: domain.PaymentStatusPaid}, nil)

			order, err := svc.Perform(ctx, token, orderID, action)
			require.NoError(t, err)
			assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
			backend.AssertExpectations(t)
		}
	})

	t.Run("failed transition skips the refetch", func(t *testing.T) {
		backend := new(MockRentAPI)
		images := new(MockImageAPI)
		svc := NewRentalService(backend, images)

		backend.On("UpdateOrderStatus", ctx, token, orderID, domain.OrderStatusApproved).Return(assert.AnError)

		order, err := svc.Perform(ctx, token, orderID, ActionApprove)
		assert.Error(t, err)
		assert.Nil(t, order)
		backend.AssertNotCalled(t, "GetOrder", ctx, token, orderID)
	})

	t.Run("unknown action is rejected locally", func(t *testing.T) {
		backend := new(MockRentAPI)
		images := new(MockImageAPI)
		svc := NewRentalService(backend, images)

		order, err := svc.Perform(ctx, token, orderID, Action("EXPLODE"))
		assert.Error(t, err)
		assert.Nil(t, order)
		backend.AssertNotCalled(t, "UpdateOrderStatus")
	})

	t.Run("approved order shows mark as returned after start", func(t *testing.T) {
		// Admin starts a paid rental; the refetched order must now offer
		// exactly the returned control.
		backend := new(MockRentAPI)
		images := new(MockImageAPI)
		svc := NewRentalService(backend, images)

		started := &domain.Order{
			ID:            orderID,
			OrderStatus:   domain.OrderStatusOnRent,
			PaymentStatus: domain.PaymentStatusPaid,
		}
		backend.On("UpdateOrderStatus", ctx, token, orderID, domain.OrderStatusOnRent).Return(nil)
		backend.On("GetOrder", ctx, token, orderID).Return(started, nil)

		order, err := svc.Perform(ctx, token, orderID, ActionStartRental)
		require.NoError(t, err)

		actions := LegalActions(order.OrderStatus, order.PaymentStatus, domain.TeamAdministrator, DocStateOf(order))
		assert.Equal(t, []string{"Mark as Returned"}, actionLabelList(actions))
	})
}

func TestRentalService_UploadDocument(t *testing.T) {
	ctx := context.Background()
	backend := new(MockRentAPI)
	images := new(MockImageAPI)
	svc := NewRentalService(backend, images)

	file := FileUpload{Filename: "before.jpg", Size: 1024}
	images.On("UploadRentDocument", ctx, "tok", "order-1", domain.DocTypeBefore, "before.jpg", int64(1024), nil).
		Return("/uploads/rent/order-1/before.jpg", nil)
	backend.On("GetOrder", ctx, "tok", "order-1").
		Return(&domain.Order{ID: "order-1", DocumentationBefore: "/uploads/rent/order-1/before.jpg"}, nil)

	order, err := svc.UploadDocument(ctx, "tok", "order-1", domain.DocTypeBefore, file)
	require.NoError(t, err)
	assert.True(t, order.HasBeforeDoc())
	images.AssertExpectations(t)
	backend.AssertExpectations(t)
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, BadgeWarning, StatusBadge(domain.OrderStatusWaiting))
	assert.Equal(t, BadgeInfo, StatusBadge(domain.OrderStatusApproved))
	assert.Equal(t, BadgeSuccess, StatusBadge(domain.OrderStatusOnRent))
	assert.Equal(t, BadgeSuccess, StatusBadge(domain.OrderStatusActive))
	assert.Equal(t, BadgeError, StatusBadge(domain.OrderStatusOverdue))
	assert.Equal(t, BadgeError, StatusBadge(domain.OrderStatusRejected))
	assert.Equal(t, BadgeNeutral, StatusBadge(domain.OrderStatusReturned))
	assert.Equal(t, BadgeNeutral, StatusBadge(domain.OrderStatusCancelled))
}
