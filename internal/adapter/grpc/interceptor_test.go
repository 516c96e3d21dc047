package grpc

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestAuthInterceptor(t *testing.T) {
	validToken := "test-token-123"
	interceptor := AuthInterceptor(validToken)

	tests := []struct {
		name           string
		ctx            context.Context
		handlerCalled  bool
		expectedCode   codes.Code
		expectedErrMsg string
	}{
		{
			name: "Valid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", validToken),
			),
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name: "Valid Bearer Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "Bearer "+validToken),
			),
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name: "Invalid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "wrong-token"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "invalid token",
		},
		{
			name:           "Missing Token",
			ctx:            context.Background(),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing metadata",
		},
		{
			name: "Missing Authorization Header",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("other-header", "value"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handlerCalled = true
				return "success", nil
			}

			info := &grpc.UnaryServerInfo{
				FullMethod: "/test.Service/Method",
			}

			resp, err := interceptor(tt.ctx, "test-request", info, handler)

			assert.Equal(t, tt.handlerCalled, handlerCalled, "handler called status mismatch")

			if tt.expectedCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "success", resp)
			} else {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok, "error should be a gRPC status")
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedErrMsg)
			}
		})
	}
}

// MockRequestRecorder is a mock implementation of RequestRecorder for testing
type MockRequestRecorder struct {
	mock.Mock
}

func (m *MockRequestRecorder) RecordRequest(method, code string, elapsed time.Duration) {
	m.Called(method, code, elapsed)
}

func TestLoggingInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/advisor.v1.AdvisorService/Project"}

	t.Run("OK", func(t *testing.T) {
		var buf bytes.Buffer
		recorder := new(MockRequestRecorder)
		recorder.On("RecordRequest", info.FullMethod, "OK", mock.AnythingOfType("time.Duration")).Return()

		interceptor := LoggingInterceptor(zerolog.New(&buf), recorder)
		resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return "done", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "done", resp)
		assert.Contains(t, buf.String(), `"level":"info"`)
		assert.Contains(t, buf.String(), info.FullMethod)
		recorder.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		var buf bytes.Buffer
		recorder := new(MockRequestRecorder)
		recorder.On("RecordRequest", info.FullMethod, "InvalidArgument", mock.AnythingOfType("time.Duration")).Return()

		interceptor := LoggingInterceptor(zerolog.New(&buf), recorder)
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, status.Error(codes.InvalidArgument, "bad capital")
		})

		assert.Equal(t, codes.InvalidArgument, status.Code(err))
		assert.Contains(t, buf.String(), `"level":"warn"`)
		recorder.AssertExpectations(t)
	})

	t.Run("Nil Recorder", func(t *testing.T) {
		interceptor := LoggingInterceptor(zerolog.Nop(), nil)
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, errors.New("plain error")
		})

		assert.Equal(t, codes.Unknown, status.Code(err))
	})
}
