package statemachine

import (
	"testing"

	"kacip-storefront/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		actor    Actor
		ok       bool
	}{
		{models.StatusPending, models.StatusConfirmed, ActorStaff, true},
		{models.StatusPending, models.StatusConfirmed, ActorCustomer, false},
		{models.StatusPending, models.StatusCancelled, ActorCustomer, true},
		{models.StatusConfirmed, models.StatusPreparing, ActorStaff, true},
		{models.StatusPreparing, models.StatusCancelled, ActorCustomer, false},
		{models.StatusPreparing, models.StatusReady, ActorStaff, true},
		{models.StatusReady, models.StatusCompleted, ActorStaff, true},
		{models.StatusPending, models.StatusCompleted, ActorStaff, false},
		{models.StatusCompleted, models.StatusPending, ActorStaff, false},
	}
	for _, tc := range cases {
		err := CanTransition(tc.from, tc.to, tc.actor)
		if tc.ok {
			assert.NoError(t, err, "%s → %s by %s", tc.from, tc.to, tc.actor)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s → %s by %s", tc.from, tc.to, tc.actor)
		}
	}
}

func TestCanTransition_DescribesAlternatives(t *testing.T) {
	err := CanTransition(models.StatusPending, models.StatusReady, ActorStaff)
	assert.ErrorContains(t, err, "Valid transitions from pending are: confirmed, cancelled")

	err = CanTransition(models.StatusCancelled, models.StatusPending, ActorStaff)
	assert.ErrorContains(t, err, "none (terminal state)")
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusReady))
}

func TestGetAllTransitions_ReturnsCopy(t *testing.T) {
	all := GetAllTransitions()
	all[0].To = models.StatusCompleted
	assert.Equal(t, models.StatusConfirmed, GetAllTransitions()[0].To)
}
