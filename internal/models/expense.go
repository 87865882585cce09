package models

import "time"

// Expense is an amount paid by one participant on behalf of the involved participants.
// The amount is split equally among Involved; the payer is credited with the full amount
// whether or not they are involved themselves.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a short human-readable label (e.g., "Groceries").
	Description string

	// Amount is the total paid. Must be positive.
	Amount float64

	// Payer is the participant who advanced the money.
	Payer ParticipantID

	// Involved are the participants sharing the expense. Must not be empty.
	Involved []ParticipantID

	// Date is when the expense happened.
	Date time.Time
}
