package models

import "time"

// Role is the access level attached to a user account.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null" json:"role"`
	FullName string `gorm:"not null" json:"full_name"`
	Phone    string `json:"phone,omitempty"`

	// Service categories an employee is trained in.
	Specialties []ServiceCategory `gorm:"many2many:employee_specialties;joinForeignKey:EmployeeID;joinReferences:CategoryID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Public returns the projection safe to hand to clients. Credential material
// never leaves the model layer.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"username":  u.Username,
		"email":     u.Email,
		"role":      u.Role,
		"full_name": u.FullName,
		"phone":     u.Phone,
	}
}
