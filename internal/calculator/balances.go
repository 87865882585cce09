package calculator

import (
	"math"

	"github.com/mmynk/settleup/internal/models"
)

// Epsilon is the tolerance, in currency units, for every comparison against zero.
const Epsilon = 0.01

// Balance is the net position of one participant.
// Positive = is owed money, negative = owes money.
type Balance struct {
	Participant models.ParticipantID
	Amount      float64
}

// Balances lists net positions in roster order, followed by participants that only
// appear in expenses, in order of first appearance.
type Balances []Balance

// Get returns the balance of p, or 0 if p has no entry.
func (b Balances) Get(p models.ParticipantID) float64 {
	for _, bal := range b {
		if bal.Participant == p {
			return bal.Amount
		}
	}
	return 0
}

// Sum returns the total of all balances. It is ~0 for balances built by ComputeBalances.
func (b Balances) Sum() float64 {
	var sum float64
	for _, bal := range b {
		sum += bal.Amount
	}
	return sum
}

// Map returns the balances keyed by participant.
func (b Balances) Map() map[models.ParticipantID]float64 {
	m := make(map[models.ParticipantID]float64, len(b))
	for _, bal := range b {
		m[bal.Participant] += bal.Amount
	}
	return m
}

// ValidateExpense checks a single expense the way upstream validation should:
// positive finite amount, a payer and at least one involved participant.
func ValidateExpense(e models.Expense) error {
	if len(e.Involved) == 0 {
		return &InputError{ExpenseID: e.ID, Err: ErrNoParticipants}
	}
	return validateRecord(e)
}

func validateRecord(e models.Expense) error {
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return &InputError{ExpenseID: e.ID, Err: ErrInvalidAmount}
	}
	if e.Payer == "" {
		return &InputError{ExpenseID: e.ID, Err: ErrMissingPayer}
	}
	return nil
}

// ComputeBalances reduces expenses into net balances for every roster participant.
//
// Algorithm:
//   - every roster participant starts at 0
//   - expenses without involved participants are skipped
//   - the payer is credited the full amount
//   - each involved participant is debited amount / len(involved)
//
// Payers or involved participants missing from the roster get their own entry instead of
// failing, so stale names still net out. An expense with a non-positive amount or no payer
// returns an *InputError.
func ComputeBalances(roster []models.ParticipantID, expenses []models.Expense) (Balances, error) {
	balances := make(Balances, 0, len(roster))
	index := make(map[models.ParticipantID]int, len(roster))

	entry := func(p models.ParticipantID) int {
		i, ok := index[p]
		if !ok {
			i = len(balances)
			index[p] = i
			balances = append(balances, Balance{Participant: p})
		}
		return i
	}

	for _, p := range roster {
		entry(p)
	}

	for _, expense := range expenses {
		if len(expense.Involved) == 0 {
			continue
		}
		if err := validateRecord(expense); err != nil {
			return nil, err
		}

		share := expense.Amount / float64(len(expense.Involved))

		balances[entry(expense.Payer)].Amount += expense.Amount
		for _, p := range expense.Involved {
			balances[entry(p)].Amount -= share
		}
	}

	return balances, nil
}
