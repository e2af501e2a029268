package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

type ping struct {
	Fail bool `json:"fail"`
}

type pong struct {
	RequestID string `json:"request_id"`
}

const pingProcedure = "/test.v1.PingService/Ping"

func newPingClient(t *testing.T, interceptors ...connect.Interceptor) *connect.Client[ping, pong] {
	t.Helper()

	handler := connect.NewUnaryHandler(pingProcedure,
		func(ctx context.Context, req *connect.Request[ping]) (*connect.Response[pong], error) {
			if req.Msg.Fail {
				return nil, connect.NewError(connect.CodeNotFound, errors.New("nope"))
			}
			return connect.NewResponse(&pong{RequestID: GetRequestID(ctx)}), nil
		},
		connect.WithCodec(apiconnect.Codec{}),
		connect.WithInterceptors(interceptors...),
	)

	mux := http.NewServeMux()
	mux.Handle(pingProcedure, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return connect.NewClient[ping, pong](http.DefaultClient, server.URL+pingProcedure, connect.WithCodec(apiconnect.Codec{}))
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client := newPingClient(t, metrics.Interceptor(), LoggingInterceptor())
	ctx := context.Background()

	_, err := client.CallUnary(ctx, connect.NewRequest(&ping{}))
	require.NoError(t, err)
	_, err = client.CallUnary(ctx, connect.NewRequest(&ping{}))
	require.NoError(t, err)
	_, err = client.CallUnary(ctx, connect.NewRequest(&ping{Fail: true}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.requests.WithLabelValues(pingProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(pingProcedure, "not_found")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}

func TestIsServerFault(t *testing.T) {
	assert.True(t, isServerFault(connect.CodeInternal))
	assert.True(t, isServerFault(connect.CodeUnknown))
	assert.False(t, isServerFault(connect.CodeNotFound))
	assert.False(t, isServerFault(connect.CodeInvalidArgument))
}

func TestRequestIDInterceptor(t *testing.T) {
	client := newPingClient(t, RequestIDInterceptor(), LoggingInterceptor())
	ctx := context.Background()

	t.Run("generated", func(t *testing.T) {
		resp, err := client.CallUnary(ctx, connect.NewRequest(&ping{}))
		require.NoError(t, err)

		id := resp.Header().Get(RequestIDHeader)
		require.NotEmpty(t, id)
		assert.Len(t, id, 36)
		assert.Equal(t, id, resp.Msg.RequestID)
	})

	t.Run("caller supplied", func(t *testing.T) {
		req := connect.NewRequest(&ping{})
		req.Header().Set(RequestIDHeader, "trace-123")

		resp, err := client.CallUnary(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "trace-123", resp.Header().Get(RequestIDHeader))
		assert.Equal(t, "trace-123", resp.Msg.RequestID)
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}
