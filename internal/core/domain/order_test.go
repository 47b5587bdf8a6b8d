package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusAllows(t *testing.T) {
	statuses := []OrderStatus{
		OrderStatusUnpaid,
		OrderStatusPaid,
		OrderStatusShipped,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}

	allowed := map[OrderStatus][]OrderTransition{
		OrderStatusUnpaid: {TransitionPay, TransitionCancel},
		OrderStatusPaid:   {TransitionShip},
		OrderStatusShipped: {TransitionComplete},
	}

	for _, status := range statuses {
		legal := map[OrderTransition]bool{}
		for _, tr := range allowed[status] {
			legal[tr] = true
		}
		for _, tr := range []OrderTransition{TransitionPay, TransitionCancel, TransitionShip, TransitionComplete} {
			assert.Equal(t, legal[tr], status.Allows(tr),
				"status %s transition %s", status, tr)
		}
	}
}

func TestOrderTransitionNext(t *testing.T) {
	assert.Equal(t, OrderStatusPaid, TransitionPay.Next())
	assert.Equal(t, OrderStatusCancelled, TransitionCancel.Next())
	assert.Equal(t, OrderStatusShipped, TransitionShip.Next())
	assert.Equal(t, OrderStatusCompleted, TransitionComplete.Next())
	assert.Equal(t, OrderStatus(""), OrderTransition("refund").Next())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderStatusUnpaid.Terminal())
	assert.False(t, OrderStatusPaid.Terminal())
	assert.False(t, OrderStatusShipped.Terminal())
	assert.True(t, OrderStatusCompleted.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())
}
