package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"agenda-service/internal/apperr"
)

// Logging tags every call with a request id and logs method, duration and, on
// failure, the fault category the returned status maps to.
func Logging(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		reqID := uuid.New().String()
		start := time.Now()

		resp, err := next(ctx, req)

		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Int32("fault_category", faultCategory(err)), zap.Error(err))
			log.Warn("rpc failed", fields...)
			return resp, err
		}
		log.Info("rpc ok", fields...)
		return resp, nil
	}
}

// faultCategory recovers the taxonomy category from a status error produced at
// the handler boundary. Client codes are category 1, everything else 2.
func faultCategory(err error) int32 {
	switch status.Code(err) {
	case codes.InvalidArgument, codes.PermissionDenied, codes.AlreadyExists,
		codes.NotFound, codes.FailedPrecondition, codes.ResourceExhausted:
		return apperr.CategoryClient
	default:
		return apperr.CategoryServer
	}
}
