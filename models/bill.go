package models

import "time"

const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
)

type Bill struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	BillNumber string `gorm:"uniqueIndex;not null" json:"bill_number"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	EmployeeID uint `gorm:"index;not null" json:"employee_id"`
	ManagerID  uint `gorm:"index;not null" json:"manager_id"`

	// Derived at creation from the item snapshots and never recomputed.
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	PaymentStatus string `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentMethod string `json:"payment_method,omitempty"`

	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BillItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BillID    uint `gorm:"index;not null" json:"bill_id"`
	ServiceID uint `gorm:"index;not null" json:"service_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`

	// Unit price snapshotted from the catalog at bill creation.
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// CanTransitionTo reports whether the bill's payment status may move to the
// given status. Paid and cancelled are terminal.
func (b *Bill) CanTransitionTo(status string) bool {
	if b.PaymentStatus != PaymentPending {
		return false
	}
	return status == PaymentPaid || status == PaymentCancelled
}
