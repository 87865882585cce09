package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/storage"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"not found", fmt.Errorf("group g1: %w", storage.ErrNotFound), connect.CodeNotFound},
		{"invalid expense", &calculator.InputError{ExpenseID: "e1", Err: calculator.ErrInvalidAmount}, connect.CodeFailedPrecondition},
		{"unbalanced", &calculator.ConsistencyError{Sum: 0.5}, connect.CodeInternal},
		{"canceled", fmt.Errorf("failed to load ledger: %w", context.Canceled), connect.CodeCanceled},
		{"already coded", connect.NewError(connect.CodeInvalidArgument, errors.New("bad")), connect.CodeInvalidArgument},
		{"unknown", errors.New("boom"), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(toConnectError(tt.err)); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: "ARS"},
		{in: "usd", want: "USD"},
		{in: " EUR ", want: "EUR"},
		{in: "EU", wantErr: true},
		{in: "EURO", wantErr: true},
		{in: "U$D", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeCurrency(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
