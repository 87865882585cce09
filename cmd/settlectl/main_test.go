package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/service"
	"github.com/mmynk/settleup/internal/settlement"
	"github.com/mmynk/settleup/internal/storage/sqlite"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// lines collapses the padding tabwriter puts between columns.
func lines(out string) []string {
	var got []string
	for _, line := range strings.Split(out, "\n") {
		got = append(got, strings.Join(strings.Fields(line), " "))
	}
	return got
}

func writeLedger(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCompute_Table(t *testing.T) {
	path := writeLedger(t, `{
		"participants": ["A", "B", "C", "D"],
		"expenses": [{"payer": "A", "amount": 100, "involved": ["B", "C", "D"]}]
	}`)

	out, err := run(t, "", "compute", "--file", path)
	require.NoError(t, err)

	got := lines(out)
	assert.Contains(t, got, "A 100.00")
	assert.Contains(t, got, "B -33.33")
	assert.Contains(t, got, "B A 33.33")
	assert.Contains(t, got, "D A 33.34")
}

func TestCompute_JSONFromStdin(t *testing.T) {
	ledger := `{"participants": ["A", "B"], "expenses": [
		{"payer": "A", "amount": 50, "involved": ["A", "B"]},
		{"payer": "B", "amount": 50, "involved": ["A", "B"]}
	]}`

	out, err := run(t, ledger, "compute", "--file", "-", "--json")
	require.NoError(t, err)

	var got computeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Balances, 2)
	assert.Empty(t, got.Transactions)
}

func TestCompute_Errors(t *testing.T) {
	t.Run("missing file flag", func(t *testing.T) {
		_, err := run(t, "", "compute")
		assert.Error(t, err)
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := run(t, "", "compute", "--file", filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorContains(t, err, "failed to open ledger")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := run(t, "{", "compute", "--file", "-")
		assert.ErrorContains(t, err, "failed to parse ledger")
	})

	t.Run("invalid expense", func(t *testing.T) {
		_, err := run(t, `{"participants": ["A"], "expenses": [{"id": "bad", "payer": "A", "amount": -1, "involved": ["A"]}]}`,
			"compute", "--file", "-")

		var inputErr *calculator.InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Equal(t, "bad", inputErr.ExpenseID)
	})
}

func TestBalance(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	coordinator := settlement.NewCoordinator(store, store)
	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewGroupServiceHandler(service.NewGroupService(store, coordinator)))
	mux.Handle(protoconnect.NewExpenseServiceHandler(service.NewExpenseService(store, coordinator)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	ctx := context.Background()
	groups := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	expenses := protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL)

	created, err := groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		Title: "Flat", Currency: "EUR", Participants: []string{"A", "B"},
	}))
	require.NoError(t, err)
	groupID := created.Msg.Group.Id

	_, err = expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId: groupID, Description: "Rent", Amount: 100, Payer: "A", Involved: []string{"A", "B"},
	}))
	require.NoError(t, err)

	out, err := run(t, "", "balance", "--url", server.URL, "--group", groupID)
	require.NoError(t, err)
	assert.Contains(t, out, "(EUR), computed")
	assert.Contains(t, lines(out), "B A 50.00")

	out, err = run(t, "", "balance", "--url", server.URL, "--group", groupID, "--json")
	require.NoError(t, err)
	var msg pb.GetBalanceResponse
	require.NoError(t, protojson.Unmarshal([]byte(out), &msg))
	assert.True(t, msg.GetCached())
	require.Len(t, msg.GetDebts(), 1)
	assert.True(t, proto.Equal(&pb.Debt{From: "B", To: "A", Amount: 50}, msg.GetDebts()[0]), "unexpected debt %v", msg.GetDebts()[0])

	_, err = run(t, "", "balance", "--url", server.URL, "--group", "nonexistent-id")
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "33.34", money(33.34))
	assert.Equal(t, "-10.00", money(-10))
	assert.Equal(t, "0.00", money(0))
	assert.Equal(t, "-33.33", money(-33.333333333333336))
}
