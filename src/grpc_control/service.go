package grpc_control

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"market-indexes/src/helpers"
	"market-indexes/src/interfaces"
	"market-indexes/src/logger"
	"market-indexes/src/models"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// QueryService implements the IndexesQueryServer interface
type QueryService struct {
	UnimplementedIndexesQueryServer
	Config    *models.MConfig
	Processor interfaces.IQueryProcessor
	Logger    *logger.Logger
}

// NewQueryService creates a new instance of QueryService
func NewQueryService(cfg *models.MConfig, processor interfaces.IQueryProcessor, log *logger.Logger) *QueryService {
	return &QueryService{
		Config:    cfg,
		Processor: processor,
		Logger:    log,
	}
}

// -----------------------------------------------------------------------------

func (s *QueryService) GetStockQuote(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "stock code is required")
	}
	return s.query(ctx, "stock", req.GetValue())
}

// -----------------------------------------------------------------------------

func (s *QueryService) GetStockIndexes(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.query(ctx, "stock", "")
}

// -----------------------------------------------------------------------------

func (s *QueryService) GetExchangeRates(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return s.query(ctx, "rates", "")
}

// -----------------------------------------------------------------------------

func (s *QueryService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(map[string]interface{}{
		"name":           s.Config.Name,
		"market_open":    s.Processor.IsMarketOpen(),
		"cache_provider": s.Config.Cache.Provider,
		"time":           time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return st, nil
}

// -----------------------------------------------------------------------------

func (s *QueryService) query(ctx context.Context, object, identity string) (*structpb.Struct, error) {
	data, err := s.Processor.Process(ctx, http.MethodGet, object, identity)
	if err != nil {
		kind := helpers.NewErrorHandler(s.Logger).Handle(err, "gRPC "+object)
		return nil, status.Error(Code(kind), err.Error())
	}
	return toStruct(data)
}

// -----------------------------------------------------------------------------

func toStruct(data json.RawMessage) (*structpb.Struct, error) {
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, status.Errorf(codes.Internal, "payload is not a JSON object: %v", err)
	}
	return out, nil
}

// -----------------------------------------------------------------------------

// Code maps an error kind to its gRPC status code.
func Code(kind helpers.ErrorKind) codes.Code {
	switch kind {
	case helpers.KindNone:
		return codes.OK
	case helpers.KindInvalidRequest, helpers.KindMethodNotAllowed:
		return codes.InvalidArgument
	case helpers.KindNotFound:
		return codes.NotFound
	case helpers.KindUpstreamUnavailable:
		return codes.Unavailable
	case helpers.KindSchemaMismatch:
		return codes.DataLoss
	case helpers.KindCanceled:
		return codes.Canceled
	case helpers.KindDeadlineExceeded:
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
