package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"notes-calendar/internal/api/gateway"
	grpcapi "notes-calendar/internal/api/grpc"
	"notes-calendar/internal/api/swagger"
	"notes-calendar/internal/config"
	"notes-calendar/internal/converter"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository"
	"notes-calendar/internal/repository/memory"
	"notes-calendar/internal/repository/sqlite"
	authService "notes-calendar/internal/service/auth"
	notesService "notes-calendar/internal/service/notes"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// Server представляет сервер приложения с gRPC и HTTP Gateway
type Server struct {
	// HTTP компоненты
	Mux           *http.ServeMux
	HTTPAddr      string
	GatewayCtx    context.Context
	GatewayCancel context.CancelFunc

	// gRPC компоненты
	GRPCServer *grpc.Server
	GRPCAddr   string
	Listener   net.Listener

	// Контекст сервера для graceful shutdown стримов.
	// Отменяется при shutdown до GracefulStop.
	Ctx    context.Context
	Cancel context.CancelFunc

	Store  repository.Store
	Config *config.Config
	Log    logrus.FieldLogger
}

// NewServer создает сервер и занимает gRPC порт
func NewServer(cfg *config.Config, log logrus.FieldLogger) (*Server, error) {
	grpcAddr := "0.0.0.0:" + strconv.Itoa(cfg.Server.PortGRPC)
	httpAddr := "0.0.0.0:" + strconv.Itoa(cfg.Server.PortHTTP)

	log.WithFields(logrus.Fields{
		"grpc_port": cfg.Server.PortGRPC,
		"http_port": cfg.Server.PortHTTP,
		"storage":   cfg.Storage.Driver,
		"swagger":   cfg.Swagger.Enabled,
	}).Info("config loaded")

	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}

	// В отличие от unary методов, стримы сами не завершаются при GracefulStop(),
	// поэтому они слушают этот контекст
	serverCtx, serverCancel := context.WithCancel(context.Background())
	gatewayCtx, gatewayCancel := context.WithCancel(context.Background())

	return &Server{
		Mux:           http.NewServeMux(),
		HTTPAddr:      httpAddr,
		GatewayCtx:    gatewayCtx,
		GatewayCancel: gatewayCancel,
		GRPCAddr:      grpcAddr,
		Listener:      listener,
		Ctx:           serverCtx,
		Cancel:        serverCancel,
		Config:        cfg,
		Log:           log,
	}, nil
}

// OpenStore открывает хранилище по настройкам storage
func OpenStore(cfg *config.ConfigStorage) (repository.Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return memory.NewRepository(), nil
	case "sqlite":
		store, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Initialize инициализирует компоненты сервера (Repository → Service → Handler)
func (s *Server) Initialize() error {
	store, err := OpenStore(s.Config.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	s.Store = store
	s.Log.WithField("driver", s.Config.Storage.Driver).Info("initialized storage")

	loc, err := converter.Location(s.Config.App.DefaultTimezone, time.Local)
	if err != nil {
		return fmt.Errorf("app.default_timezone: %w", err)
	}
	clock := query.SystemClock()

	events := notesService.NewEventService()
	noteSvc := notesService.NewNoteService(store, events, clock, s.Log)
	authSvc := authService.NewAuthService(store, authService.Options{
		SessionTTL: time.Duration(s.Config.Auth.SessionTTLHours) * time.Hour,
		Clock:      clock,
		Logger:     s.Log,
	})
	s.Log.Info("initialized note and auth services")

	noteHandler := grpcapi.NewHandler(noteSvc, grpcapi.Options{
		Clock:             clock,
		DefaultLocation:   loc,
		HeartbeatInterval: time.Duration(s.Config.Server.HeartbeatInterval) * time.Second,
		Logger:            s.Log,
	})
	noteHandler.SetServerContext(s.Ctx)
	authHandler := grpcapi.NewAuthHandler(authSvc, s.Log)

	s.GRPCServer = grpcapi.NewServer(noteHandler, authHandler, authSvc, s.Config.Server, s.Log)

	return nil
}

// ServeSwagger регистрирует маршруты OpenAPI спецификации на HTTP mux
func (s *Server) ServeSwagger() {
	if !s.Config.Swagger.Enabled {
		s.Log.Info("swagger is disabled")
		return
	}

	if err := swagger.ServeSwagger(s.Mux, notesv1.SwaggerFS, notesv1.SwaggerFile, s.Log); err != nil {
		s.Log.WithError(err).Warn("failed to serve swagger spec")
	}
}

// Start запускает gRPC и HTTP Gateway серверы в горутинах
// Возвращает канал ошибок для отслеживания ошибок серверов
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 2)

	go func() {
		s.Log.WithField("addr", s.GRPCAddr).Info("gRPC server listening")
		if err := s.GRPCServer.Serve(s.Listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// Gateway подключается к gRPC по localhost
	grpcAddr := "localhost:" + strconv.Itoa(s.Config.Server.PortGRPC)

	go func() {
		if err := gateway.Setup(s.GatewayCtx, grpcAddr, s.HTTPAddr, s.Config, s.Mux, s.Log); err != nil {
			errChan <- fmt.Errorf("HTTP Gateway error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера
func (s *Server) Shutdown() error {
	s.Log.Info("starting graceful shutdown")

	// Отменяем контекст сервера ПЕРЕД GracefulStop(), иначе открытые стримы
	// изменений не дадут ему завершиться
	s.Cancel()
	s.GatewayCancel()

	shutdownTimeout := time.Duration(s.Config.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		s.GRPCServer.GracefulStop()
		close(stopped)
	}()

	var err error
	select {
	case <-stopped:
		s.Log.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		s.Log.Warn("graceful shutdown timeout, forcing stop")
		s.GRPCServer.Stop()
		err = ctx.Err()
	}

	if s.Store != nil {
		if closeErr := s.Store.Close(); closeErr != nil {
			s.Log.WithError(closeErr).Warn("failed to close storage")
		}
	}

	return err
}
