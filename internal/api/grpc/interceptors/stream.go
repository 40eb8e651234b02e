package interceptors

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

// wrappedServerStream оборачивает grpc.ServerStream для логирования
// каждого сообщения в стриме
type wrappedServerStream struct {
	grpc.ServerStream
	log  *logrus.Entry
	sent int
}

// RecvMsg логирует входящие сообщения
func (w *wrappedServerStream) RecvMsg(m any) error {
	err := w.ServerStream.RecvMsg(m)
	switch {
	case err == io.EOF:
		w.log.Trace("stream recv: EOF")
	case err != nil:
		w.log.WithError(err).Debug("stream recv failed")
	default:
		w.log.Tracef("stream recv: %T", m)
	}
	return err
}

// SendMsg логирует исходящие сообщения
func (w *wrappedServerStream) SendMsg(m any) error {
	err := w.ServerStream.SendMsg(m)
	if err != nil {
		w.log.WithError(err).Debug("stream send failed")
		return err
	}
	w.sent++
	w.log.Tracef("stream send: %T", m)
	return nil
}

// StreamInterceptor логирует открытие и закрытие стрима и каждое сообщение в нем
func StreamInterceptor(log logrus.FieldLogger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		entry := log.WithField("method", info.FullMethod)
		entry.Info("stream opened")

		wrapped := &wrappedServerStream{ServerStream: ss, log: entry}
		err := handler(srv, wrapped)

		logResult(entry.WithFields(logrus.Fields{
			"sent":     wrapped.sent,
			"duration": time.Since(start),
		}), err, "stream")

		return err
	}
}
