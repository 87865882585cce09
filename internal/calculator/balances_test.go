package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/settleup/internal/models"
)

func ids(names ...string) []models.ParticipantID {
	return models.ParticipantIDs(names)
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		roster       []models.ParticipantID
		expenses     []models.Expense
		wantErr      error
		validateFunc func(t *testing.T, balances Balances)
	}{
		{
			name:   "payer involved splits equally",
			roster: ids("A", "B", "C"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 30, Involved: ids("A", "B", "C")},
			},
			validateFunc: func(t *testing.T, balances Balances) {
				want := map[models.ParticipantID]float64{"A": 20, "B": -10, "C": -10}
				for p, w := range want {
					if got := balances.Get(p); math.Abs(got-w) > Epsilon {
						t.Errorf("%s balance = %v, want %v", p, got, w)
					}
				}
			},
		},
		{
			name:   "opposite expenses cancel out",
			roster: ids("A", "B"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 50, Involved: ids("A", "B")},
				{Payer: "B", Amount: 50, Involved: ids("A", "B")},
			},
			validateFunc: func(t *testing.T, balances Balances) {
				for _, b := range balances {
					if math.Abs(b.Amount) > Epsilon {
						t.Errorf("%s balance = %v, want 0", b.Participant, b.Amount)
					}
				}
			},
		},
		{
			name:   "payer not involved is credited the full amount",
			roster: ids("A", "B", "C", "D"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 100, Involved: ids("B", "C", "D")},
			},
			validateFunc: func(t *testing.T, balances Balances) {
				if got := balances.Get("A"); math.Abs(got-100) > Epsilon {
					t.Errorf("A balance = %v, want 100", got)
				}
				for _, p := range ids("B", "C", "D") {
					if got := balances.Get(p); math.Abs(got+33.33) > Epsilon {
						t.Errorf("%s balance = %v, want -33.33", p, got)
					}
				}
			},
		},
		{
			name:   "no expenses gives zero for every roster participant",
			roster: ids("A", "B", "C"),
			validateFunc: func(t *testing.T, balances Balances) {
				if len(balances) != 3 {
					t.Fatalf("expected 3 balances, got %d", len(balances))
				}
				for i, p := range ids("A", "B", "C") {
					if balances[i].Participant != p {
						t.Errorf("balances[%d] = %s, want %s", i, balances[i].Participant, p)
					}
					if balances[i].Amount != 0 {
						t.Errorf("%s balance = %v, want 0", p, balances[i].Amount)
					}
				}
			},
		},
		{
			name:   "expense without involved participants is skipped",
			roster: ids("A", "B"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 40, Involved: nil},
				{Payer: "A", Amount: 10, Involved: ids("B")},
			},
			validateFunc: func(t *testing.T, balances Balances) {
				if got := balances.Get("A"); math.Abs(got-10) > Epsilon {
					t.Errorf("A balance = %v, want 10", got)
				}
				if got := balances.Get("B"); math.Abs(got+10) > Epsilon {
					t.Errorf("B balance = %v, want -10", got)
				}
			},
		},
		{
			name:   "participants outside the roster are appended in order of appearance",
			roster: ids("A"),
			expenses: []models.Expense{
				{Payer: "Z", Amount: 20, Involved: ids("A", "Y")},
			},
			validateFunc: func(t *testing.T, balances Balances) {
				want := []Balance{{"A", -10}, {"Z", 20}, {"Y", -10}}
				if len(balances) != len(want) {
					t.Fatalf("expected %d balances, got %d", len(want), len(balances))
				}
				for i, w := range want {
					if balances[i].Participant != w.Participant || math.Abs(balances[i].Amount-w.Amount) > Epsilon {
						t.Errorf("balances[%d] = %+v, want %+v", i, balances[i], w)
					}
				}
			},
		},
		{
			name:     "zero amount is rejected",
			roster:   ids("A", "B"),
			expenses: []models.Expense{{ID: "e1", Payer: "A", Amount: 0, Involved: ids("B")}},
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "NaN amount is rejected",
			roster:   ids("A", "B"),
			expenses: []models.Expense{{Payer: "A", Amount: math.NaN(), Involved: ids("B")}},
			wantErr:  ErrInvalidAmount,
		},
		{
			name:     "missing payer is rejected",
			roster:   ids("A", "B"),
			expenses: []models.Expense{{Amount: 10, Involved: ids("B")}},
			wantErr:  ErrMissingPayer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.roster, tt.expenses)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ComputeBalances() error = %v, want %v", err, tt.wantErr)
				}
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("expected *InputError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeBalances() unexpected error: %v", err)
			}
			if math.Abs(balances.Sum()) > Epsilon {
				t.Errorf("balances sum to %v, want 0", balances.Sum())
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, balances)
			}
		})
	}
}

func TestComputeBalances_ZeroSum(t *testing.T) {
	roster := ids("Ana", "Bruno", "Carla", "Diego", "Eva")
	var expenses []models.Expense
	for i := 0; i < 500; i++ {
		involved := roster[:1+i%len(roster)]
		expenses = append(expenses, models.Expense{
			Payer:    roster[(i*3)%len(roster)],
			Amount:   float64(i%97) + 0.37,
			Involved: involved,
		})
	}

	balances, err := ComputeBalances(roster, expenses)
	if err != nil {
		t.Fatalf("ComputeBalances() unexpected error: %v", err)
	}
	if sum := balances.Sum(); math.Abs(sum) > Epsilon {
		t.Errorf("balances sum to %v, want 0 within %v", sum, Epsilon)
	}
}

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name    string
		expense models.Expense
		wantErr error
	}{
		{"valid", models.Expense{Payer: "A", Amount: 1, Involved: ids("A")}, nil},
		{"no involved", models.Expense{Payer: "A", Amount: 1}, ErrNoParticipants},
		{"negative amount", models.Expense{Payer: "A", Amount: -5, Involved: ids("A")}, ErrInvalidAmount},
		{"infinite amount", models.Expense{Payer: "A", Amount: math.Inf(1), Involved: ids("A")}, ErrInvalidAmount},
		{"no payer", models.Expense{Amount: 1, Involved: ids("A")}, ErrMissingPayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.expense)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExpense() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
