package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moonsalon-backend/models"
)

// The full (operation, role) matrix. Anything not listed here is denied.
var allowMatrix = map[Operation]map[models.Role]bool{
	OpProfileRead:             {models.RoleOwner: true, models.RoleManager: true, models.RoleEmployee: true},
	OpAppointmentList:         {models.RoleOwner: true, models.RoleManager: true, models.RoleEmployee: true},
	OpAppointmentCreate:       {models.RoleManager: true},
	OpAppointmentUpdateStatus: {models.RoleManager: true},
	OpBillList:                {models.RoleOwner: true, models.RoleManager: true, models.RoleEmployee: true},
	OpBillCreate:              {models.RoleManager: true},
	OpBillPay:                 {models.RoleManager: true},
	OpServiceCreate:           {models.RoleOwner: true},
	OpServiceUpdate:           {models.RoleOwner: true},
	OpServiceDelete:           {models.RoleOwner: true},
	OpCategoryCreate:          {models.RoleOwner: true},
	OpUserList:                {models.RoleOwner: true, models.RoleManager: true},
	OpUserCreate:              {models.RoleOwner: true},
	OpUserDelete:              {models.RoleOwner: true},
	OpSalesReport:             {models.RoleOwner: true},
}

func TestPolicyMatrix(t *testing.T) {
	roles := []models.Role{models.RoleOwner, models.RoleManager, models.RoleEmployee}

	assert.ElementsMatch(t, keys(allowMatrix), Operations(), "policy table and test matrix must cover the same operations")

	for op, expected := range allowMatrix {
		for _, role := range roles {
			assert.Equal(t, expected[role], Allowed(op, role), "op=%s role=%s", op, role)
		}
	}
}

func TestPolicyDeniesUnknownRole(t *testing.T) {
	for _, op := range Operations() {
		assert.False(t, Allowed(op, models.Role("intern")), "op=%s", op)
		assert.False(t, Allowed(op, models.Role("")), "op=%s", op)
	}
}

func keys(m map[Operation]map[models.Role]bool) []Operation {
	out := make([]Operation, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
