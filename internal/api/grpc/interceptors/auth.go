package interceptors

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	svc "notes-calendar/internal/service"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// authorizationHeader - имя заголовка для авторизации в metadata
const authorizationHeader = "authorization"

// publicMethods методы, доступные без сессии
var publicMethods = map[string]bool{
	notesv1.AuthService_SignUp_FullMethodName: true,
	notesv1.AuthService_SignIn_FullMethodName: true,
}

type ctxKey int

const (
	userIDKey ctxKey = iota
	tokenKey
)

// WithUser кладет ID пользователя и токен сессии в контекст
func WithUser(ctx context.Context, userID, token string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, tokenKey, token)
}

// UserID возвращает ID аутентифицированного пользователя
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// Token возвращает токен сессии текущего запроса
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// bearerToken извлекает токен из заголовка "authorization: Bearer <token>"
func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata not provided")
	}

	authHeaders := md.Get(authorizationHeader)
	if len(authHeaders) == 0 {
		return "", status.Error(codes.Unauthenticated, "authorization header not provided")
	}

	token, ok := strings.CutPrefix(authHeaders[0], "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", status.Error(codes.Unauthenticated, "invalid authorization header format")
	}

	return strings.TrimSpace(token), nil
}

// authenticate проверяет сессию и возвращает контекст с пользователем
func authenticate(ctx context.Context, auth svc.AuthService, log logrus.FieldLogger, method string) (context.Context, error) {
	token, err := bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	user, err := auth.Authenticate(ctx, token)
	if errors.Is(err, svc.ErrUnauthenticated) {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired session")
	}
	if err != nil {
		log.WithError(err).WithField("method", method).Error("session lookup failed")
		return nil, status.Error(codes.Internal, "session lookup failed")
	}

	return WithUser(ctx, user.ID, token), nil
}

// AuthUnaryInterceptor проверяет bearer токен сессии для всех методов,
// кроме регистрации и входа. Без токена возвращается Unauthenticated.
func AuthUnaryInterceptor(auth svc.AuthService, log logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		ctx, err := authenticate(ctx, auth, log, info.FullMethod)
		if err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// authServerStream подменяет контекст стрима
type authServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authServerStream) Context() context.Context {
	return s.ctx
}

// AuthStreamInterceptor проверяет сессию при открытии стрима
func AuthStreamInterceptor(auth svc.AuthService, log logrus.FieldLogger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := authenticate(ss.Context(), auth, log, info.FullMethod)
		if err != nil {
			return err
		}

		return handler(srv, &authServerStream{ServerStream: ss, ctx: ctx})
	}
}
