package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/settleup/internal/metrics"
	pb "github.com/mmynk/settleup/pkg/proto"
	"github.com/mmynk/settleup/pkg/proto/protoconnect"
)

// stubGroups fails GetGroup for unknown IDs and answers ListGroups.
type stubGroups struct {
	protoconnect.UnimplementedGroupServiceHandler
}

func (stubGroups) GetGroup(_ context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeNotFound, errors.New("group "+req.Msg.GroupId+" not found"))
}

func (stubGroups) ListGroups(context.Context, *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	return connect.NewResponse(&pb.ListGroupsResponse{}), nil
}

func setupServer(t *testing.T, interceptors ...connect.Interceptor) protoconnect.GroupServiceClient {
	t.Helper()

	path, handler := protoconnect.NewGroupServiceHandler(stubGroups{}, connect.WithInterceptors(interceptors...))
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	return &buf
}

func TestLoggingInterceptor(t *testing.T) {
	logs := captureLogs(t)
	client := setupServer(t, LoggingInterceptor())

	_, err := client.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "RPC ok")
	assert.Contains(t, logs.String(), protoconnect.GroupServiceListGroupsProcedure)

	logs.Reset()
	_, err = client.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupId: "missing"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "code=not_found")

	logs.Reset()
	_, err = client.DeleteGroup(context.Background(), connect.NewRequest(&pb.DeleteGroupRequest{GroupId: "g1"}))
	assert.Equal(t, connect.CodeUnimplemented, connect.CodeOf(err))
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestLoggingInterceptor_RequestID(t *testing.T) {
	logs := captureLogs(t)

	path, handler := protoconnect.NewGroupServiceHandler(stubGroups{}, connect.WithInterceptors(LoggingInterceptor()))
	mux := http.NewServeMux()
	mux.Handle(path, chimw.RequestID(handler))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	_, err := client.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "request_id=")
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	client := setupServer(t, MetricsInterceptor(m))

	_, err := client.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)
	_, err = client.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{GroupId: "missing"}))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(protoconnect.GroupServiceListGroupsProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues(protoconnect.GroupServiceGetGroupProcedure, "not_found")))
}

func TestIsServerError(t *testing.T) {
	assert.True(t, isServerError(connect.CodeInternal))
	assert.True(t, isServerError(connect.CodeUnavailable))
	assert.False(t, isServerError(connect.CodeInvalidArgument))
	assert.False(t, isServerError(connect.CodeNotFound))
}
