package domain

import "time"

type AdjustmentStatus string

const (
	AdjustmentStatusPending  AdjustmentStatus = "pending"
	AdjustmentStatusApplied  AdjustmentStatus = "applied"
	AdjustmentStatusRejected AdjustmentStatus = "rejected"
)

func (s AdjustmentStatus) IsValid() bool {
	switch s {
	case AdjustmentStatusPending, AdjustmentStatusApplied, AdjustmentStatusRejected:
		return true
	}
	return false
}

// AdjustmentRecord é uma entrada imutável do livro de ajustes de preço.
// O registro mais recente por produto controla o cooldown de ajuste automático.
type AdjustmentRecord struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	PreviousPrice float64          `json:"previous_price"`
	NewPrice      float64          `json:"new_price"`
	Reason        string           `json:"reason"`
	Source        string           `json:"source"`
	Status        AdjustmentStatus `json:"status"`
	AppliedAt     time.Time        `json:"applied_at"`
}
