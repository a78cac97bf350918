package grpc_control_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "market-indexes/src/grpc_control"
	"market-indexes/src/helpers"
	"market-indexes/src/logger"
	"market-indexes/src/models"
)

// -----------------------------------------------------------------------------

type call struct{ verb, object, id string }

type fakeProcessor struct {
	mu       sync.Mutex
	calls    []call
	payloads map[string]json.RawMessage
	err      error
}

func (p *fakeProcessor) Process(_ context.Context, verb, objectName, identity string) (json.RawMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{verb, objectName, identity})
	if p.err != nil {
		return nil, p.err
	}
	return p.payloads[objectName], nil
}

func (p *fakeProcessor) IsMarketOpen() bool { return true }

func (p *fakeProcessor) lastCall() call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[len(p.calls)-1]
}

func newClient(t *testing.T, p *fakeProcessor) pb.IndexesQueryClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	cfg := &models.MConfig{Name: "market-indexes", Cache: models.MCacheConfig{Provider: "sqlite"}}
	pb.RegisterIndexesQueryServer(srv, pb.NewQueryService(cfg, p, logger.NewLoggerTo(io.Discard, "grpc-test")))
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		srv.Stop()
	})
	return pb.NewIndexesQueryClient(conn)
}

// -----------------------------------------------------------------------------

func TestGetStockQuote(t *testing.T) {
	t.Parallel()

	// Arrange
	p := &fakeProcessor{payloads: map[string]json.RawMessage{
		"stock": json.RawMessage(`{"Info":{"Code":"HPG","Price":"25.50"},"Date":"2024-06-07"}`),
	}}
	client := newClient(t, p)

	// Act
	out, err := client.GetStockQuote(t.Context(), wrapperspb.String("hpg"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, call{"GET", "stock", "hpg"}, p.lastCall())
	info := out.GetFields()["Info"].GetStructValue().GetFields()
	assert.Equal(t, "HPG", info["Code"].GetStringValue())
	assert.Equal(t, "25.50", info["Price"].GetStringValue())
	assert.Equal(t, "2024-06-07", out.GetFields()["Date"].GetStringValue())
}

func TestGetStockQuote_EmptyCode(t *testing.T) {
	t.Parallel()

	p := &fakeProcessor{}
	client := newClient(t, p)

	_, err := client.GetStockQuote(t.Context(), wrapperspb.String(""))

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, p.calls)
}

func TestGetStockIndexesAndRates(t *testing.T) {
	t.Parallel()

	p := &fakeProcessor{payloads: map[string]json.RawMessage{
		"stock": json.RawMessage(`{"VNINDEX":{"index":1284.12}}`),
		"rates": json.RawMessage(`{"USD":{"Code":"USD","Buy":25177}}`),
	}}
	client := newClient(t, p)

	indexes, err := client.GetStockIndexes(t.Context(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, call{"GET", "stock", ""}, p.lastCall())
	assert.InDelta(t, 1284.12, indexes.GetFields()["VNINDEX"].GetStructValue().GetFields()["index"].GetNumberValue(), 1e-9)

	rates, err := client.GetExchangeRates(t.Context(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, call{"GET", "rates", ""}, p.lastCall())
	assert.InDelta(t, 25177, rates.GetFields()["USD"].GetStructValue().GetFields()["Buy"].GetNumberValue(), 1e-9)
}

func TestGetStatus(t *testing.T) {
	t.Parallel()

	client := newClient(t, &fakeProcessor{})

	out, err := client.GetStatus(t.Context(), &emptypb.Empty{})

	require.NoError(t, err)
	assert.Equal(t, "market-indexes", out.GetFields()["name"].GetStringValue())
	assert.True(t, out.GetFields()["market_open"].GetBoolValue())
	assert.Equal(t, "sqlite", out.GetFields()["cache_provider"].GetStringValue())
}

func TestErrorCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", helpers.NewNotFound("no quote for XYZ", nil), codes.NotFound},
		{"upstream", helpers.NewUpstreamUnavailable("feed down", errors.New("dial tcp")), codes.Unavailable},
		{"schema", helpers.NewSchemaMismatch("field LastPrice", nil), codes.DataLoss},
		{"invalid", helpers.NewInvalidRequest("unknown object", nil), codes.InvalidArgument},
		{"internal", errors.New("boom"), codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newClient(t, &fakeProcessor{err: tc.err})
			_, err := client.GetStockQuote(t.Context(), wrapperspb.String("XYZ"))

			require.Error(t, err)
			assert.Equal(t, tc.code, status.Code(err))
		})
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, codes.OK, pb.Code(helpers.KindNone))
	assert.Equal(t, codes.InvalidArgument, pb.Code(helpers.KindMethodNotAllowed))
	assert.Equal(t, codes.Canceled, pb.Code(helpers.KindCanceled))
	assert.Equal(t, codes.DeadlineExceeded, pb.Code(helpers.KindDeadlineExceeded))
}
