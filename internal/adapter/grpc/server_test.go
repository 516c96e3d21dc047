package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	advisorv1 "github.com/simaogato/wealthflow-advisor/internal/adapter/grpc/advisor/v1"
	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
)

const testToken = "test-token"

// startServer runs the full interceptor chain over an in-memory listener
func startServer(t *testing.T) advisorv1.AdvisorServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	service := advisor.NewAdvisorService(domain.DefaultReferenceData, nil, zerolog.Nop(), 0)

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			LoggingInterceptor(zerolog.Nop(), nil),
			AuthInterceptor(testToken),
		),
	)
	advisorv1.RegisterAdvisorServiceServer(grpcServer, NewServer(service, domain.DefaultReferenceData.List()))

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
	})

	return advisorv1.NewAdvisorServiceClient(conn)
}

func authContext() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", testToken)
}

func mustStruct(t *testing.T, doc map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(doc)
	require.NoError(t, err)
	return s
}

func TestRecommend_SafeProfile(t *testing.T) {
	client := startServer(t)

	resp, err := client.Recommend(authContext(), mustStruct(t, map[string]interface{}{
		"capital": "1500",
		"risk":    "low",
	}))

	require.NoError(t, err)
	assert.Equal(t, "SAFE", resp.Fields["profile"].GetStringValue())
	assert.Equal(t, domain.PROFILE_SAFE_ID.String(), resp.Fields["profile_id"].GetStringValue())
	assert.Equal(t, "Capital < 2 000€ : profil sécuritaire.", resp.Fields["justification"].GetStringValue())
	assert.Equal(t, "1500.00", resp.Fields["capital"].GetStringValue())
	assert.InDelta(t, 0.04, resp.Fields["weighted_return"].GetNumberValue(), 1e-12)

	allocation := resp.Fields["allocation"].GetListValue().GetValues()
	require.Len(t, allocation, 5)
	bonds := allocation[0].GetStructValue().Fields
	assert.Equal(t, "BONDS", bonds["asset"].GetStringValue())
	assert.Equal(t, 50.0, bonds["percent"].GetNumberValue())
	assert.Equal(t, "750.00", bonds["amount"].GetStringValue())
}

func TestProject_CrisisScenario(t *testing.T) {
	client := startServer(t)

	resp, err := client.Project(authContext(), mustStruct(t, map[string]interface{}{
		"capital":  "15000",
		"risk":     "high",
		"years":    10,
		"scenario": "crisis",
		"seed":     "42",
	}))

	require.NoError(t, err)
	assert.Equal(t, "DYNAMIC", resp.Fields["profile"].GetStringValue())
	assert.Equal(t, "00000000-0000-0000-0000-000000000104", resp.Fields["profile_id"].GetStringValue())
	assert.Equal(t, "crisis", resp.Fields["scenario"].GetStringValue())
	assert.Equal(t, "42", resp.Fields["seed"].GetStringValue())

	points := resp.Fields["points"].GetListValue().GetValues()
	require.Len(t, points, 2520/5+1)

	first := points[0].GetStructValue().Fields
	assert.Equal(t, 0.0, first["year"].GetNumberValue())
	assert.Equal(t, 15000.0, first["value"].GetNumberValue())

	last := points[len(points)-1].GetStructValue().Fields
	assert.Equal(t, 10.0, last["year"].GetNumberValue())
	assert.Equal(t, last["baseline"].GetNumberValue(), last["value"].GetNumberValue())
}

func TestProject_InvalidYears(t *testing.T) {
	client := startServer(t)

	_, err := client.Project(authContext(), mustStruct(t, map[string]interface{}{
		"capital": "5000",
		"risk":    "low",
		"years":   45,
	}))

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "years must be between 1 and 30")
}

func TestRecommend_InvalidCapital(t *testing.T) {
	client := startServer(t)

	_, err := client.Recommend(authContext(), mustStruct(t, map[string]interface{}{
		"capital": "abc",
		"risk":    "low",
	}))

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListAssetClasses(t *testing.T) {
	client := startServer(t)

	resp, err := client.ListAssetClasses(authContext(), &emptypb.Empty{})

	require.NoError(t, err)
	assets := resp.Fields["assets"].GetListValue().GetValues()
	require.Len(t, assets, 5)
	assert.Equal(t, "Crypto", assets[4].GetStructValue().Fields["label"].GetStringValue())
}

func TestServer_RequiresToken(t *testing.T) {
	client := startServer(t)

	_, err := client.ListAssetClasses(context.Background(), &emptypb.Empty{})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.Equal(t, codes.InvalidArgument, status.Code(mapError(domain.ErrInvalidInput)))
	assert.Equal(t, codes.Internal, status.Code(mapError(domain.ErrMissingReferenceData)))
}
