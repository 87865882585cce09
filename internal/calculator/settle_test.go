package calculator

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/mmynk/settleup/internal/models"
)

// apply returns the balances left after every transaction has been paid.
func apply(balances Balances, transactions []models.Transaction) map[models.ParticipantID]float64 {
	remaining := balances.Map()
	for _, tx := range transactions {
		remaining[tx.From] += tx.Amount
		remaining[tx.To] -= tx.Amount
	}
	return remaining
}

func nonZero(balances Balances) int {
	n := 0
	for _, b := range balances {
		if math.Abs(b.Amount) > Epsilon {
			n++
		}
	}
	return n
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name     string
		roster   []models.ParticipantID
		expenses []models.Expense
		want     []models.Transaction
	}{
		{
			name:   "one payer, three involved",
			roster: ids("A", "B", "C"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 30, Involved: ids("A", "B", "C")},
			},
			want: []models.Transaction{
				{From: "B", To: "A", Amount: 10},
				{From: "C", To: "A", Amount: 10},
			},
		},
		{
			name:   "balanced expenses need no payments",
			roster: ids("A", "B"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 50, Involved: ids("A", "B")},
				{Payer: "B", Amount: 50, Involved: ids("A", "B")},
			},
			want: nil,
		},
		{
			name:   "leftover cent goes to the largest remainder",
			roster: ids("A", "B", "C", "D"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 100, Involved: ids("B", "C", "D")},
			},
			want: []models.Transaction{
				{From: "B", To: "A", Amount: 33.33},
				{From: "C", To: "A", Amount: 33.33},
				{From: "D", To: "A", Amount: 33.34},
			},
		},
		{
			name:   "eight way split spreads the half cents",
			roster: ids("A", "B", "C", "D", "E", "F", "G", "H"),
			expenses: []models.Expense{
				{Payer: "C", Amount: 217.88, Involved: ids("A", "B", "C", "D", "E", "F", "G", "H")},
			},
			// shares of 27.235: four debtors round down, three round up
			want: []models.Transaction{
				{From: "A", To: "C", Amount: 27.23},
				{From: "B", To: "C", Amount: 27.23},
				{From: "D", To: "C", Amount: 27.23},
				{From: "E", To: "C", Amount: 27.23},
				{From: "F", To: "C", Amount: 27.24},
				{From: "G", To: "C", Amount: 27.24},
				{From: "H", To: "C", Amount: 27.24},
			},
		},
		{
			name:   "no expenses",
			roster: ids("A", "B", "C"),
			want:   nil,
		},
		{
			name:   "largest debt is matched with largest credit first",
			roster: ids("A", "B", "C", "D"),
			expenses: []models.Expense{
				{Payer: "A", Amount: 60, Involved: ids("C")},
				{Payer: "B", Amount: 20, Involved: ids("D")},
				{Payer: "A", Amount: 10, Involved: ids("D")},
			},
			// A +70, B +20, C -60, D -30
			want: []models.Transaction{
				{From: "C", To: "A", Amount: 60},
				{From: "D", To: "A", Amount: 10},
				{From: "D", To: "B", Amount: 20},
			},
		},
		{
			name:   "ties keep roster order",
			roster: ids("A", "B", "C", "D"),
			expenses: []models.Expense{
				{Payer: "C", Amount: 10, Involved: ids("A")},
				{Payer: "D", Amount: 10, Involved: ids("B")},
			},
			want: []models.Transaction{
				{From: "A", To: "C", Amount: 10},
				{From: "B", To: "D", Amount: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.roster, tt.expenses)
			if err != nil {
				t.Fatalf("ComputeBalances() unexpected error: %v", err)
			}

			got, err := ComputeSettlement(balances)
			if err != nil {
				t.Fatalf("ComputeSettlement() unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeSettlement() = %+v, want %+v", got, tt.want)
			}

			for p, rest := range apply(balances, got) {
				if math.Abs(rest) > Epsilon {
					t.Errorf("%s left with %v after settlement", p, rest)
				}
			}
		})
	}
}

func TestComputeSettlement_Unbalanced(t *testing.T) {
	balances := Balances{{"A", 10}, {"B", -5}}

	_, err := ComputeSettlement(balances)
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}

	var consistencyErr *ConsistencyError
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("expected *ConsistencyError, got %T", err)
	}
	if math.Abs(consistencyErr.Sum-5) > 1e-9 {
		t.Errorf("Sum = %v, want 5", consistencyErr.Sum)
	}
}

func TestComputeSettlement_NaNIsUnbalanced(t *testing.T) {
	_, err := ComputeSettlement(Balances{{"A", math.NaN()}, {"B", 1}})
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("expected ErrUnbalanced, got %v", err)
	}
}

func TestComputeSettlement_IgnoresDust(t *testing.T) {
	balances := Balances{{"A", 0.004}, {"B", -0.004}, {"C", 0}}

	got, err := ComputeSettlement(balances)
	if err != nil {
		t.Fatalf("ComputeSettlement() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no transactions, got %+v", got)
	}
}

func TestComputeSettlement_SubCentDebts(t *testing.T) {
	balances := Balances{{"C", 10.02}}
	for _, p := range ids("D1", "D2", "D3", "D4", "D5") {
		balances = append(balances, Balance{p, -2.004})
	}

	got, err := ComputeSettlement(balances)
	if err != nil {
		t.Fatalf("ComputeSettlement() unexpected error: %v", err)
	}

	want := []models.Transaction{
		{From: "D1", To: "C", Amount: 2},
		{From: "D2", To: "C", Amount: 2},
		{From: "D3", To: "C", Amount: 2},
		{From: "D4", To: "C", Amount: 2.01},
		{From: "D5", To: "C", Amount: 2.01},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeSettlement() = %+v, want %+v", got, want)
	}

	for p, rest := range apply(balances, got) {
		if math.Abs(rest) > Epsilon {
			t.Errorf("%s left with %v after settlement", p, rest)
		}
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		name     string
		balances Balances
		want     []int64
	}{
		{
			name:     "whole cents are kept",
			balances: Balances{{"A", 12.5}, {"B", -12.5}},
			want:     []int64{1250, -1250},
		},
		{
			name:     "largest remainders round up",
			balances: Balances{{"A", 100}, {"B", -33.333333333333336}, {"C", -33.333333333333336}, {"D", -33.333333333333336}},
			want:     []int64{10000, -3333, -3333, -3334},
		},
		{
			name:     "larger fraction wins over earlier position",
			balances: Balances{{"A", 0.104}, {"B", 0.106}, {"C", -0.21}},
			want:     []int64{10, 11, -21},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toCents(tt.balances)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toCents() = %v, want %v", got, tt.want)
			}

			var total int64
			for _, c := range got {
				total += c
			}
			if total != 0 {
				t.Errorf("cents sum to %d, want 0", total)
			}
		})
	}
}

// TestComputeSettlement_Properties runs the matcher over random ledgers and checks
// the guarantees every settlement must keep.
func TestComputeSettlement_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := ids("Ana", "Bruno", "Carla", "Diego", "Eva", "Fede", "Gabi", "Hugo")

	for run := 0; run < 200; run++ {
		roster := names[:2+rng.Intn(len(names)-1)]

		var expenses []models.Expense
		for n := rng.Intn(12); n > 0; n-- {
			perm := rng.Perm(len(roster))
			involved := make([]models.ParticipantID, 1+rng.Intn(len(roster)))
			for i := range involved {
				involved[i] = roster[perm[i]]
			}
			expenses = append(expenses, models.Expense{
				Payer:    roster[rng.Intn(len(roster))],
				Amount:   float64(1+rng.Intn(50000)) / 100,
				Involved: involved,
			})
		}

		balances, err := ComputeBalances(roster, expenses)
		if err != nil {
			t.Fatalf("run %d: ComputeBalances() unexpected error: %v", run, err)
		}

		got, err := ComputeSettlement(balances)
		if err != nil {
			t.Fatalf("run %d: ComputeSettlement() unexpected error: %v", run, err)
		}

		if bound := nonZero(balances) - 1; len(got) > bound && len(got) > 0 {
			t.Errorf("run %d: %d transactions, want at most %d", run, len(got), bound)
		}

		for _, tx := range got {
			if tx.From == tx.To {
				t.Errorf("run %d: self payment %+v", run, tx)
			}
			if tx.Amount < 0.01 {
				t.Errorf("run %d: zero or negative payment %+v", run, tx)
			}
		}

		for p, rest := range apply(balances, got) {
			if math.Abs(rest) > Epsilon {
				t.Errorf("run %d: %s left with %v after settlement", run, p, rest)
			}
		}

		again, err := ComputeSettlement(balances)
		if err != nil {
			t.Fatalf("run %d: second ComputeSettlement() unexpected error: %v", run, err)
		}
		if !reflect.DeepEqual(got, again) {
			t.Errorf("run %d: settlement is not deterministic: %+v vs %+v", run, got, again)
		}
	}
}
