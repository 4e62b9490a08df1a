package entity

import "time"

type FeeStatus string

const (
	FeePaid    FeeStatus = "Paid"
	FeePending FeeStatus = "Pending"
	FeeWaived  FeeStatus = "Waived"
)

// FeeItem is one fee/payment line nested inside a student document.
// Amount is kept in minor currency units (cents) so aggregation over many
// small items stays exact.
type FeeItem struct {
	Description string    `json:"description" bson:"description"`
	Amount      int64     `json:"amount" bson:"amount"`
	Status      FeeStatus `json:"status" bson:"status"`
	PaymentDate time.Time `json:"payment_date" bson:"payment_date"`
}

// Student is an enrolled entity. ID is assigned once at enrollment and is
// immutable afterwards.
type Student struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Cohort    string    `json:"cohort" bson:"cohort"`
	Guardian  string    `json:"guardian,omitempty" bson:"guardian,omitempty"`
	Active    bool      `json:"active" bson:"active"`
	Fees      []FeeItem `json:"fees,omitempty" bson:"fees,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewStudent creates an active student with an assigned identifier.
func NewStudent(id, name, cohort, guardian string) *Student {
	return &Student{
		ID:        id,
		Name:      name,
		Cohort:    cohort,
		Guardian:  guardian,
		Active:    true,
		CreatedAt: time.Now(),
	}
}
