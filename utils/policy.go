// utils/policy.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moonsalon-backend/models"
)

// Operation names every role-gated action in the API. Handlers never compare
// role strings themselves; the policy table below is the single place where
// (operation, role) is decided.
type Operation string

const (
	OpProfileRead Operation = "profile.read"

	OpAppointmentList         Operation = "appointments.list"
	OpAppointmentCreate       Operation = "appointments.create"
	OpAppointmentUpdateStatus Operation = "appointments.update_status"

	OpBillList   Operation = "bills.list"
	OpBillCreate Operation = "bills.create"
	OpBillPay    Operation = "bills.pay"

	OpServiceCreate Operation = "services.create"
	OpServiceUpdate Operation = "services.update"
	OpServiceDelete Operation = "services.delete"

	OpCategoryCreate Operation = "categories.create"

	OpUserList   Operation = "users.list"
	OpUserCreate Operation = "users.create"
	OpUserDelete Operation = "users.delete"

	OpSalesReport Operation = "reports.sales"
)

var policy = map[Operation]map[models.Role]bool{
	OpProfileRead: {models.RoleOwner: true, models.RoleManager: true, models.RoleEmployee: true},

	OpAppointmentList:         {models.RoleOwner: true, models.RoleManager: true, models.RoleEmployee: true},
	OpAppointmentCreate:       {models.RoleManager: true},
	OpAppointmentUpdateStatus: {models.RoleManager: true},

	OpBillList:   {models.RoleOwner: true, models.RoleManager: true, models.RoleEmployee: true},
	OpBillCreate: {models.RoleManager: true},
	OpBillPay:    {models.RoleManager: true},

	OpServiceCreate: {models.RoleOwner: true},
	OpServiceUpdate: {models.RoleOwner: true},
	OpServiceDelete: {models.RoleOwner: true},

	OpCategoryCreate: {models.RoleOwner: true},

	OpUserList:   {models.RoleOwner: true, models.RoleManager: true},
	OpUserCreate: {models.RoleOwner: true},
	OpUserDelete: {models.RoleOwner: true},

	OpSalesReport: {models.RoleOwner: true},
}

// Allowed reports whether the role may perform the operation.
func Allowed(op Operation, role models.Role) bool {
	return policy[op][role]
}

// Operations returns every operation in the policy table.
func Operations() []Operation {
	ops := make([]Operation, 0, len(policy))
	for op := range policy {
		ops = append(ops, op)
	}
	return ops
}

// Authorize verifies the bearer token and checks the policy table. The
// denial is a uniform 401 regardless of whether the token was absent,
// malformed, expired or merely the wrong role.
func Authorize(secret string, op Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := VerifyToken(BearerToken(c), secret)
		if claims == nil || !Allowed(op, claims.Role) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}
