package interceptors

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// LoggerUnaryInterceptor логирует метод, код ответа и время выполнения.
// Коды ошибок клиента пишутся как warning, Internal и Unknown как error.
func LoggerUnaryInterceptor(log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		entry := log.WithField("method", info.FullMethod)
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get("x-request-id"); len(ids) > 0 {
				entry = entry.WithField("request_id", ids[0])
			}
		}
		entry.Debug("incoming request")

		resp, err := handler(ctx, req)

		entry = entry.WithFields(logrus.Fields{
			"code":     status.Code(err).String(),
			"duration": time.Since(start),
		})
		logResult(entry, err, "request")

		return resp, err
	}
}

func logResult(entry *logrus.Entry, err error, what string) {
	if err == nil {
		entry.Info(what + " completed")
		return
	}

	st, _ := status.FromError(err)
	entry = entry.WithField("error", st.Message())
	switch st.Code() {
	case codes.Internal, codes.Unknown, codes.DataLoss:
		entry.Error(what + " failed")
	default:
		entry.Warn(what + " failed")
	}
}
