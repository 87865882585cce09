package models

import "time"

// Transaction is one payment that, together with the rest of a settlement,
// brings every balance of a group to zero.
type Transaction struct {
	// From is the debtor making the payment.
	From ParticipantID `json:"from"`

	// To is the creditor receiving the payment.
	To ParticipantID `json:"to"`

	// Amount is the payment, rounded to cents. Always positive.
	Amount float64 `json:"amount"`
}

// CachedSettlement is the last settlement computed for a group.
//
// It is Valid from the moment it is stored until any expense of the group is
// created, updated or deleted, or the roster changes. An invalid entry has a zero
// ComputedAt and must not be served.
type CachedSettlement struct {
	Transactions []Transaction
	ComputedAt   time.Time
	Valid        bool
}

// IsValid reports whether the entry can be served without recomputation.
func (c *CachedSettlement) IsValid() bool {
	return c != nil && c.Valid && !c.ComputedAt.IsZero()
}
