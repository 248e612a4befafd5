package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/db"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/models"
	_ "liyu1981.xyz/logify-service/pkg/testing"

	"liyu1981.xyz/logify-service/pkg/logify/mocks"
)

const bufSize = 1024 * 1024

func newLogify() *logify.Logify {
	return (&logify.Logify{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}).WithDefaultServices()
}

func startTestServer(t *testing.T, logifyCore *logify.Logify, limiterStore *logify.RateLimiterStore) *MeterServiceClient {
	listener := bufconn.Listen(bufSize)

	meterServer := MeterServer{Logify: logifyCore, RateLimiterStore: limiterStore}
	interceptor := meterServer.CreateRateLimitInterceptor([]string{MeterServiceAddReadingMethod})
	server := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	RegisterMeterServiceServer(server, &meterServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewMeterServiceClient(conn)
}

func mustStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func resetReadings(t *testing.T, l *logify.Logify) {
	t.Helper()
	require.NoError(t, l.Db.Conn.Where("1 = 1").Delete(&models.MeterReading{}).Error)
}

func TestAddAndListReadings(t *testing.T) {
	common.SetTestLoggerNop()
	logifyCore := newLogify()
	resetReadings(t, logifyCore)
	client := startTestServer(t, logifyCore, nil)
	ctx := context.Background()

	resp, err := client.AddReading(ctx, mustStruct(t, map[string]any{"type": "water", "value": 17.25}))
	require.NoError(t, err)
	assert.Equal(t, "WATER", resp.GetFields()["type"].GetStringValue())
	assert.Equal(t, 17.25, resp.GetFields()["value"].GetNumberValue())

	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"type": "WATER", "value": 18}))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	list, err := client.ListReadings(ctx, mustStruct(t, map[string]any{"type": "WATER"}))
	require.NoError(t, err)
	readings := list.GetFields()["readings"].GetListValue().GetValues()
	require.Len(t, readings, 1)
	assert.Equal(t, 17.25, readings[0].GetStructValue().GetFields()["value"].GetNumberValue())
}

func TestElectricityReadings(t *testing.T) {
	common.SetTestLoggerNop()
	logifyCore := newLogify()
	client := startTestServer(t, logifyCore, nil)
	ctx := context.Background()

	meter, err := logifyCore.Electricity.CreateMeter(ctx, "EM-"+uuid.NewString()[:8], "Roof")
	require.NoError(t, err)

	resp, err := client.AddReading(ctx, mustStruct(t, map[string]any{"meterId": meter.ID, "value": 900}))
	require.NoError(t, err)
	assert.Equal(t, meter.ID, resp.GetFields()["meterId"].GetStringValue())

	list, err := client.ListReadings(ctx, mustStruct(t, map[string]any{"meterId": meter.ID}))
	require.NoError(t, err)
	assert.Len(t, list.GetFields()["readings"].GetListValue().GetValues(), 1)

	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"meterId": uuid.NewString(), "value": 1}))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestAddReading_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, newLogify(), nil)
	ctx := context.Background()

	_, err := client.AddReading(ctx, mustStruct(t, map[string]any{"type": "OIL", "value": 1}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"value": 1}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"type": "GAS"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"type": "GAS", "value": "ten"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"meterId": "", "value": 1}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRateLimitInterceptor_AddReading(t *testing.T) {
	common.SetTestLoggerNop()

	logifyCore := newLogify()
	resetReadings(t, logifyCore)
	limiterStore := logify.NewRateLimiterStore(0, 1)
	client := startTestServer(t, logifyCore, limiterStore)
	ctx := context.Background()

	req := mustStruct(t, map[string]any{"type": "GAS", "value": 1})

	// first request uses the only token, and records today's reading
	_, err := client.AddReading(ctx, req)
	require.NoError(t, err)

	_, err = client.AddReading(ctx, req)
	require.Error(t, err, "expected second request to be rate limited")
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, codes.ResourceExhausted, st.Code(), "expected ResourceExhausted code")

	// other scopes have their own bucket
	_, err = client.AddReading(ctx, mustStruct(t, map[string]any{"type": "WATER", "value": 1}))
	assert.NotEqual(t, codes.ResourceExhausted, status.Code(err))

	// reads are not limited
	_, err = client.ListReadings(ctx, mustStruct(t, map[string]any{"type": "GAS"}))
	require.NoError(t, err)

	// raise the limit for GAS
	_, err = client.SetLimiter(ctx, mustStruct(t, map[string]any{"type": "GAS", "rate": 10, "burst": 5}))
	require.NoError(t, err)

	_, err = client.AddReading(ctx, req)
	assert.Equal(t, codes.AlreadyExists, status.Code(err), "passes the limiter and hits the daily rule")
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	ctx := context.Background()

	client := startTestServer(t, newLogify(), nil)
	_, err := client.SetLimiter(ctx, mustStruct(t, map[string]any{"type": "GAS", "rate": 1, "burst": 1}))
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	client = startTestServer(t, newLogify(), logify.NewRateLimiterStore(1, 1))
	_, err = client.SetLimiter(ctx, mustStruct(t, map[string]any{"type": "GAS", "burst": 1}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.SetLimiter(ctx, mustStruct(t, map[string]any{"type": "NOPE", "rate": 1, "burst": 1}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestInternalErrors(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logifyCore := newLogify()
	mockIMeter := mocks.NewMockIMeter(ctrl)
	logifyCore.WithServices(logify.ServiceOpts{Meter: mockIMeter})
	client := startTestServer(t, logifyCore, nil)

	mockIMeter.EXPECT().
		ListReadings(gomock.Any(), gomock.Eq(models.MeterTypeGas)).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	_, err := client.ListReadings(context.Background(), mustStruct(t, map[string]any{"type": "GAS"}))
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "just causing error")
}
