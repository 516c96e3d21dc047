package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	advisorv1 "github.com/simaogato/wealthflow-advisor/internal/adapter/grpc/advisor/v1"
	"github.com/simaogato/wealthflow-advisor/internal/adapter/payload"
	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
)

// Server implements the AdvisorService gRPC server
type Server struct {
	advisorv1.UnimplementedAdvisorServiceServer

	AdvisorService *advisor.AdvisorService
	Assets         []domain.AssetInfo
}

// NewServer creates a new gRPC server instance
func NewServer(advisorService *advisor.AdvisorService, assets []domain.AssetInfo) *Server {
	return &Server{
		AdvisorService: advisorService,
		Assets:         assets,
	}
}

// Recommend handles the Recommend RPC
func (s *Server) Recommend(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := payload.DecodeRecommend(req.AsMap())
	if err != nil {
		return nil, mapError(err)
	}

	// Call usecase service
	result, err := s.AdvisorService.Recommend(ctx, input.Capital, input.Risk)
	if err != nil {
		return nil, mapError(err)
	}

	summary, err := s.AdvisorService.Summarize(result)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(payload.EncodeAdvisory(result, summary))
}

// Project handles the Project RPC
func (s *Server) Project(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := payload.DecodeProject(req.AsMap())
	if err != nil {
		return nil, mapError(err)
	}

	out, err := s.AdvisorService.Project(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(payload.EncodeProjection(out))
}

// ListAssetClasses handles the ListAssetClasses RPC
func (s *Server) ListAssetClasses(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return toStruct(payload.EncodeAssets(s.Assets))
}

func toStruct(doc map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrMissingReferenceData):
		return status.Error(codes.Internal, err.Error())
	default:
		// Default to Internal error for unknown errors
		return status.Error(codes.Internal, err.Error())
	}
}
