package grpc

import (
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"

	"notes-calendar/internal/api/grpc/interceptors"
	"notes-calendar/internal/config"
	svc "notes-calendar/internal/service"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// NewServer создает gRPC сервер с интерцепторами и регистрирует оба сервиса.
// Порядок unary интерцепторов: Logger → Validate → Auth, поэтому в лог
// попадают и отклоненные запросы.
func NewServer(notes *Handler, auth *AuthHandler, authService svc.AuthService, cfg *config.ConfigServer, log logrus.FieldLogger) *grpc.Server {
	maxStreams := 25
	useReflection := false
	if cfg != nil {
		if cfg.MaxConcurrentStreams > 0 {
			maxStreams = cfg.MaxConcurrentStreams
		}
		useReflection = cfg.UseReflection
	}

	grpcServer := grpc.NewServer(
		// Ограничиваем количество одновременных стримов
		grpc.MaxConcurrentStreams(uint32(maxStreams)),
		// KeepAlive параметры для защиты от зависших соединений
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Minute,
			MaxConnectionAge:      1 * time.Hour,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  10 * time.Minute,
			Timeout:               20 * time.Second,
		}),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggerUnaryInterceptor(log),
			interceptors.ValidateUnaryInterceptor,
			interceptors.AuthUnaryInterceptor(authService, log),
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamInterceptor(log),
			interceptors.AuthStreamInterceptor(authService, log),
		),
	)

	notesv1.RegisterNotesServiceServer(grpcServer, notes)
	notesv1.RegisterAuthServiceServer(grpcServer, auth)
	log.Info("registered NotesService and AuthService")

	// Reflection по дескрипторам из pkg/proto (для grpcurl/grpcui)
	if useReflection {
		reflection.Register(grpcServer)
		log.Info("enabled gRPC reflection")
	}

	return grpcServer
}
