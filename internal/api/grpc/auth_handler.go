package grpc

import (
	"context"

	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/types/known/timestamppb"

	"notes-calendar/internal/api/grpc/interceptors"
	"notes-calendar/internal/converter"
	svc "notes-calendar/internal/service"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// AuthHandler реализует gRPC сервер для AuthService
type AuthHandler struct {
	notesv1.UnimplementedAuthServiceServer

	authService svc.AuthService
	log         logrus.FieldLogger
}

// NewAuthHandler создает хэндлер регистрации и сессий
func NewAuthHandler(authService svc.AuthService, log logrus.FieldLogger) *AuthHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AuthHandler{authService: authService, log: log}
}

// SignUp регистрирует пользователя
func (h *AuthHandler) SignUp(ctx context.Context, req *notesv1.SignUpRequest) (*notesv1.SignUpResponse, error) {
	user, err := h.authService.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, h.fail(err)
	}
	return &notesv1.SignUpResponse{User: converter.UserToAPI(user)}, nil
}

// SignIn открывает сессию и возвращает bearer токен
func (h *AuthHandler) SignIn(ctx context.Context, req *notesv1.SignInRequest) (*notesv1.SignInResponse, error) {
	session, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, h.fail(err)
	}

	user, err := h.authService.Authenticate(ctx, session.Token)
	if err != nil {
		return nil, h.fail(err)
	}

	return &notesv1.SignInResponse{
		Token:     session.Token,
		ExpiresAt: timestamppb.New(session.ExpiresAt),
		User:      converter.UserToAPI(user),
	}, nil
}

// SignOut закрывает сессию текущего запроса
func (h *AuthHandler) SignOut(ctx context.Context, req *notesv1.SignOutRequest) (*notesv1.SignOutResponse, error) {
	if err := h.authService.SignOut(ctx, interceptors.Token(ctx)); err != nil {
		return nil, h.fail(err)
	}
	return &notesv1.SignOutResponse{}, nil
}

func (h *AuthHandler) fail(err error) error {
	converted := handleError(err)
	if isInternal(converted) {
		h.log.WithError(err).Error("auth request failed")
	}
	return converted
}
