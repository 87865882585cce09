package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/service"
	"github.com/mmynk/settleup/internal/settlement"
	"github.com/mmynk/settleup/internal/storage/sqlite"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

func setupRouter(t *testing.T, checks map[string]pinger) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	coordinator := settlement.NewCoordinator(store, store, settlement.WithMetrics(m))

	if checks == nil {
		checks = map[string]pinger{"sqlite": store.Ping}
	}

	server := httptest.NewServer(newRouter(routerConfig{
		GroupService:   service.NewGroupService(store, coordinator),
		ExpenseService: service.NewExpenseService(store, coordinator),
		Metrics:        m,
		Gatherer:       reg,
		Checks:         checks,
	}))
	t.Cleanup(server.Close)

	return server
}

func TestRouter_Healthz(t *testing.T) {
	server := setupRouter(t, nil)

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"sqlite":"ok"`)
}

func TestRouter_HealthzUnavailable(t *testing.T) {
	server := setupRouter(t, map[string]pinger{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRouter_ConnectAndMetrics(t *testing.T) {
	server := setupRouter(t, nil)
	groups := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	expenses := protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL)
	ctx := context.Background()

	created, err := groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		Title:        "Flat",
		Participants: []string{"A", "B"},
	}))
	require.NoError(t, err)

	_, err = expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:     created.Msg.Group.Id,
		Description: "Rent",
		Amount:      100,
		Payer:       "A",
		Involved:    []string{"A", "B"},
	}))
	require.NoError(t, err)

	balance, err := groups.GetBalance(ctx, connect.NewRequest(&pb.GetBalanceRequest{GroupId: created.Msg.Group.Id}))
	require.NoError(t, err)
	require.Len(t, balance.Msg.GetDebts(), 1)
	assert.True(t, proto.Equal(&pb.Debt{From: "B", To: "A", Amount: 50}, balance.Msg.GetDebts()[0]), "unexpected debt %v", balance.Msg.GetDebts()[0])

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.True(t, strings.Contains(string(body), "settleup_rpc_requests_total"))
	assert.True(t, strings.Contains(string(body), `settleup_settlement_requests_total{cache="miss"} 1`))
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := setupRouter(t, nil)

	req, err := http.NewRequest(http.MethodOptions, server.URL+protoconnect.GroupServiceGetBalanceProcedure, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownProcedure(t *testing.T) {
	server := setupRouter(t, nil)

	resp, err := http.Post(server.URL+"/settleup.v1.GroupService/Nope", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
