package grpc

import (
	"context"
	"errors"
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/logify"
	"liyu1981.xyz/logify-service/pkg/models"
)

// scope is either a utility type or an electricity meter id.
type scope struct {
	meterType models.MeterType
	meterID   string
}

func validateMeterID(meterID *string) z.ZogIssueList {
	var meterIdValidator = z.String().Min(1).Required()
	return meterIdValidator.Validate(meterID)
}

func parseScope(req *structpb.Struct) (scope, error) {
	fields := req.GetFields()

	if v, ok := fields["meterId"]; ok {
		meterID := v.GetStringValue()
		if issues := validateMeterID(&meterID); issues != nil {
			return scope{}, logify.ErrInvalidID
		}
		return scope{meterID: meterID}, nil
	}

	meterType, err := logify.ParseMeterType(fields["type"].GetStringValue())
	if err != nil {
		return scope{}, err
	}
	return scope{meterType: meterType}, nil
}

func scopeKeyOf(req *structpb.Struct) (string, error) {
	sc, err := parseScope(req)
	if err != nil {
		return "", err
	}
	if sc.meterID != "" {
		return logify.ElectricityScopeKey(sc.meterID), nil
	}
	return logify.MeterScopeKey(string(sc.meterType)), nil
}

func numberField(req *structpb.Struct, name string) (float64, bool) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, false
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return n.NumberValue, true
}

func toStatus(err error) error {
	var e *logify.Error
	if !errors.As(err, &e) {
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("rpc failed", zap.Error(err))
		return status.Error(codes.Internal, "internal server error")
	}

	code := codes.Internal
	switch e.Kind {
	case logify.KindValidation:
		code = codes.InvalidArgument
	case logify.KindNotFound:
		code = codes.NotFound
	case logify.KindConflict:
		code = codes.AlreadyExists
	case logify.KindTooManyRequests:
		code = codes.ResourceExhausted
	case logify.KindUnauthenticated:
		code = codes.Unauthenticated
	case logify.KindForbidden:
		code = codes.PermissionDenied
	}
	return status.Error(code, e.Code+": "+e.Message)
}

func meterReadingFields(r models.MeterReading) map[string]any {
	return map[string]any{
		"id":          r.ID,
		"type":        string(r.Type),
		"value":       r.Value,
		"readingDate": r.ReadingDate.Format(time.RFC3339Nano),
	}
}

func electricityReadingFields(r models.ElectricityReading) map[string]any {
	return map[string]any{
		"id":          r.ID,
		"meterId":     r.MeterID,
		"value":       r.Value,
		"readingDate": r.ReadingDate.Format(time.RFC3339Nano),
	}
}

func (s *MeterServer) AddReading(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sc, err := parseScope(req)
	if err != nil {
		return nil, toStatus(err)
	}

	value, ok := numberField(req, "value")
	if !ok {
		return nil, toStatus(logify.ErrInvalidReading)
	}

	var fields map[string]any
	if sc.meterID != "" {
		reading, err := s.Logify.Electricity.AddReading(ctx, sc.meterID, value)
		if err != nil {
			return nil, toStatus(err)
		}
		fields = electricityReadingFields(*reading)
	} else {
		reading, err := s.Logify.Meter.AddReading(ctx, sc.meterType, value)
		if err != nil {
			return nil, toStatus(err)
		}
		fields = meterReadingFields(*reading)
	}

	return structpb.NewStruct(fields)
}

func (s *MeterServer) ListReadings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sc, err := parseScope(req)
	if err != nil {
		return nil, toStatus(err)
	}

	var readings []any
	if sc.meterID != "" {
		rows, err := s.Logify.Electricity.ListReadings(ctx, sc.meterID)
		if err != nil {
			return nil, toStatus(err)
		}
		readings = common.Mapper(rows, func(r models.ElectricityReading) any { return electricityReadingFields(r) })
	} else {
		rows, err := s.Logify.Meter.ListReadings(ctx, sc.meterType)
		if err != nil {
			return nil, toStatus(err)
		}
		readings = common.Mapper(rows, func(r models.MeterReading) any { return meterReadingFields(r) })
	}

	return structpb.NewStruct(map[string]any{"readings": readings})
}

// SetLimiter replaces the token bucket of one scope, e.g. for a device that reports more often.
func (s *MeterServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	key, err := scopeKeyOf(req)
	if err != nil {
		return nil, toStatus(err)
	}

	scopeRate, ok := numberField(req, "rate")
	if !ok || scopeRate < 0 {
		return nil, status.Error(codes.InvalidArgument, "rate must be a non-negative number")
	}
	burst, ok := numberField(req, "burst")
	if !ok || burst < 0 {
		return nil, status.Error(codes.InvalidArgument, "burst must be a non-negative number")
	}

	if s.RateLimiterStore == nil {
		return nil, status.Error(codes.FailedPrecondition, "rate limiter store is not used")
	}

	s.RateLimiterStore.SetLimiter(key, rate.Limit(scopeRate), int(burst))
	common.GetLoggerWith(common.LoggerNameGrpcServer).Info("Limiter updated",
		zap.String("scope", key),
		zap.Float64("rate", scopeRate),
		zap.Int("burst", int(burst)),
	)

	return structpb.NewStruct(map[string]any{"success": true})
}
