package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentTransitions(t *testing.T) {
	scheduled := &Appointment{Status: AppointmentScheduled}
	assert.True(t, scheduled.CanTransitionTo(AppointmentCompleted))
	assert.True(t, scheduled.CanTransitionTo(AppointmentCancelled))
	assert.True(t, scheduled.CanTransitionTo(AppointmentNoShow))
	assert.False(t, scheduled.CanTransitionTo(AppointmentScheduled))
	assert.False(t, scheduled.CanTransitionTo("archived"))

	// completed, cancelled and no_show are terminal
	for _, terminal := range []string{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		appt := &Appointment{Status: terminal}
		for _, next := range []string{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
			assert.False(t, appt.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestValidAppointmentStatus(t *testing.T) {
	for _, s := range []string{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
		assert.True(t, ValidAppointmentStatus(s))
	}
	assert.False(t, ValidAppointmentStatus("pending"))
	assert.False(t, ValidAppointmentStatus(""))
}

func TestBillPaymentTransitions(t *testing.T) {
	pending := &Bill{PaymentStatus: PaymentPending}
	assert.True(t, pending.CanTransitionTo(PaymentPaid))
	assert.True(t, pending.CanTransitionTo(PaymentCancelled))
	assert.False(t, pending.CanTransitionTo(PaymentPending))
	assert.False(t, pending.CanTransitionTo("refunded"))

	for _, terminal := range []string{PaymentPaid, PaymentCancelled} {
		bill := &Bill{PaymentStatus: terminal}
		assert.False(t, bill.CanTransitionTo(PaymentPaid), "%s -> paid", terminal)
		assert.False(t, bill.CanTransitionTo(PaymentCancelled), "%s -> cancelled", terminal)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleManager.Valid())
	assert.True(t, RoleEmployee.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}
