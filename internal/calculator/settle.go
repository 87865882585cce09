package calculator

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

// position is a debtor's outstanding debt or a creditor's outstanding credit in
// cents, always stored as a positive number. amount keeps the unrounded balance
// for ordering.
type position struct {
	participant models.ParticipantID
	amount      float64
	cents       int64
}

// ComputeSettlement returns the payments that bring every balance to zero.
//
// Algorithm (greedy, largest debt against largest credit):
//   - participants within Epsilon of zero are already settled
//   - the remaining balances are rounded to whole cents by largest remainder, so
//     the rounded balances sum to exactly zero and each one is off by less than
//     a cent
//   - debtors are sorted by debt, creditors by credit, both largest first; ties keep
//     the order of balances
//   - the head debtor pays the head creditor min(debt, credit) and whichever side
//     reaches zero is advanced (both on an exact match)
//
// Matching runs on integer cents, so every payment is exact and no rounding error
// builds up across payments.
//
// Balances that do not sum to zero within Epsilon return a *ConsistencyError.
func ComputeSettlement(balances Balances) ([]models.Transaction, error) {
	sum := balances.Sum()
	if math.IsNaN(sum) || math.Abs(sum) > Epsilon {
		return nil, &ConsistencyError{Sum: sum}
	}

	var open Balances
	for _, bal := range balances {
		if math.Abs(bal.Amount) > Epsilon {
			open = append(open, bal)
		}
	}

	var debtors, creditors []position
	for i, cents := range toCents(open) {
		switch {
		case cents < 0:
			debtors = append(debtors, position{participant: open[i].Participant, amount: -open[i].Amount, cents: -cents})
		case cents > 0:
			creditors = append(creditors, position{participant: open[i].Participant, amount: open[i].Amount, cents: cents})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })

	var transactions []models.Transaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := min(debtor.cents, creditor.cents)
		debtor.cents -= amount
		creditor.cents -= amount

		transactions = append(transactions, models.Transaction{
			From:   debtor.participant,
			To:     creditor.participant,
			Amount: decimal.New(amount, -2).InexactFloat64(),
		})

		if debtor.cents == 0 {
			i++
		}
		if creditor.cents == 0 {
			j++
		}
	}

	return transactions, nil
}

// toCents rounds balances to whole cents with the largest remainder method: every
// balance is floored, then the cents missing to reach a zero total go to the
// balances with the largest fractional parts, ties in balance order.
func toCents(balances Balances) []int64 {
	cents := make([]int64, len(balances))
	fractions := make([]decimal.Decimal, len(balances))

	var total int64
	for i, bal := range balances {
		exact := decimal.NewFromFloat(bal.Amount).Shift(2)
		floor := exact.Floor()
		cents[i] = floor.IntPart()
		fractions[i] = exact.Sub(floor)
		total += cents[i]
	}

	missing := int(max(0, min(-total, int64(len(balances)))))
	if missing == 0 {
		return cents
	}

	order := make([]int, len(balances))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fractions[order[a]].GreaterThan(fractions[order[b]])
	})
	for _, i := range order[:missing] {
		cents[i]++
	}

	return cents
}
