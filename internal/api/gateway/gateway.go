package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/tmc/grpc-websocket-proxy/wsproxy"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"notes-calendar/internal/api/http/middleware"
	"notes-calendar/internal/config"
	"notes-calendar/internal/converter"
	"notes-calendar/internal/render"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// timezoneHeader альтернатива полю timezone запроса
const timezoneHeader = "X-Timezone"

// Gateway проксирует REST запросы в gRPC сервисы
type Gateway struct {
	mux   *runtime.ServeMux
	notes notesv1.NotesServiceClient
	auth  notesv1.AuthServiceClient
	log   logrus.FieldLogger
}

// NewHandler собирает HTTP handler поверх соединения с gRPC сервером:
// REST маршруты /api/v1 из google.api.http аннотаций, стрим изменений
// (построчный JSON или WebSocket) и middleware.
// Если mux != nil, маршруты вне /api/ обслуживает он (например Swagger).
func NewHandler(ctx context.Context, conn grpc.ClientConnInterface, cfg *config.ConfigGateway, mux *http.ServeMux, log logrus.FieldLogger) (http.Handler, error) {
	if cfg == nil {
		cfg = &config.ConfigGateway{}
	}

	gw := &Gateway{
		notes: notesv1.NewNotesServiceClient(conn),
		auth:  notesv1.NewAuthServiceClient(conn),
		log:   log,
	}

	gw.mux = runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions:   protojson.MarshalOptions{UseProtoNames: true},
			UnmarshalOptions: protojson.UnmarshalOptions{DiscardUnknown: true},
		}),
		// X-Timezone уходит в metadata x-timezone, остальное по умолчанию
		runtime.WithIncomingHeaderMatcher(func(key string) (string, bool) {
			if strings.EqualFold(key, timezoneHeader) {
				return "x-timezone", true
			}
			return runtime.DefaultHeaderMatcher(key)
		}),
		// Передаем X-Request-Id в gRPC metadata, Authorization gateway передает сам
		runtime.WithMetadata(func(ctx context.Context, req *http.Request) metadata.MD {
			md := metadata.New(nil)
			if id := req.Header.Get("X-Request-Id"); id != "" {
				md.Set("x-request-id", id)
			}
			return md
		}),
	)

	if err := gw.register(ctx); err != nil {
		return nil, fmt.Errorf("failed to register gateway routes: %w", err)
	}

	var root http.Handler = gw.mux
	if mux != nil {
		mux.Handle("/api/", gw.mux)
		root = mux
	}

	// Middleware в обратном порядке выполнения:
	// WebSocket proxy → CORS → Logging → Rate Limiting
	var handler http.Handler = root
	handler = middleware.RateLimit(handler, cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	handler = middleware.Logging(handler, log)
	handler = setupCORS(cfg).Handler(handler)
	// WebSocket proxy должен быть самым внешним, чтобы корректно обрабатывать upgrade
	handler = setupWebSocketProxy(handler, log)

	return handler, nil
}

// Setup подключается к gRPC серверу и запускает HTTP Gateway.
// Сервер останавливается при отмене ctx.
func Setup(ctx context.Context, grpcAddr, httpAddr string, cfg *config.Config, mux *http.ServeMux, log logrus.FieldLogger) error {
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial gRPC server: %w", err)
	}
	defer conn.Close()

	handler, err := NewHandler(ctx, conn, cfg.Gateway, mux, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadTimeout:       seconds(cfg.Server.HTTPReadTimeout),
		WriteTimeout:      seconds(cfg.Server.HTTPWriteTimeout),
		IdleTimeout:       seconds(cfg.Server.HTTPIdleTimeout),
		ReadHeaderTimeout: seconds(cfg.Server.HTTPReadHeaderTimeout),
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Server.GracefulShutdownTimeout))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("HTTP Gateway shutdown")
		}
	}()

	log.WithFields(logrus.Fields{
		"addr": httpAddr,
		"cors": cfg.Gateway.CORSAllowedOrigins,
	}).Info("HTTP Gateway server listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// setupCORS настраивает CORS middleware используя конфигурацию
func setupCORS(cfg *config.ConfigGateway) *cors.Cors {
	var origins []string
	for _, o := range strings.Split(cfg.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
			"X-Request-Id",
			timezoneHeader,
		},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}

// setupWebSocketProxy превращает построчный стрим /api/v1/changes в WebSocket:
// каждая строка ответа уходит отдельным сообщением
func setupWebSocketProxy(handler http.Handler, log logrus.FieldLogger) http.Handler {
	return wsproxy.WebsocketProxy(handler,
		wsproxy.WithLogger(log),
		wsproxy.WithForwardedHeaders(func(header string) bool {
			switch header {
			case "Authorization", "Origin", "Referer", timezoneHeader:
				return true
			}
			return false
		}),
	)
}

func (g *Gateway) register(ctx context.Context) error {
	return errors.Join(
		notesv1.RegisterAuthServiceHandlerClient(ctx, g.mux, g.auth),
		notesv1.RegisterNotesServiceHandlerClient(ctx, g.mux, g.notes),
		g.mux.HandlePath(http.MethodGet, "/api/v1/notes/{id}/preview", g.preview),
	)
}

// preview отдает HTML предпросмотр заметки
func (g *Gateway) preview(w http.ResponseWriter, r *http.Request, params map[string]string) {
	_, outbound := runtime.MarshalerForRequest(g.mux, r)
	pattern := "/api/v1/notes/{id}/preview"

	ctx, err := runtime.AnnotateContext(r.Context(), g.mux, r, notesv1.NotesService_GetNote_FullMethodName, runtime.WithHTTPPathPattern(pattern))
	if err != nil {
		runtime.HTTPError(r.Context(), g.mux, outbound, w, r, err)
		return
	}

	resp, err := g.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: params["id"], Timezone: r.URL.Query().Get("timezone")})
	if err != nil {
		runtime.HTTPError(ctx, g.mux, outbound, w, r, err)
		return
	}

	page, err := render.Preview(converter.APIToModel(resp.Note), resp.Note.ResolvedDate)
	if err != nil {
		runtime.HTTPError(ctx, g.mux, outbound, w, r, status.Error(codes.Internal, "failed to render preview"))
		g.log.WithError(err).Error("preview render failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
