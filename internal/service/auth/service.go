package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository"
	svc "notes-calendar/internal/service"
)

// MinPasswordLength минимальная длина пароля
const MinPasswordLength = 8

var _ svc.AuthService = (*service)(nil)

// Repository хранилище, которое нужно сервису авторизации
type Repository interface {
	repository.UserRepository
	repository.SessionRepository
}

// Options настройки сервиса авторизации
type Options struct {
	SessionTTL time.Duration
	Hash       HashParams
	Clock      query.Clock
	Logger     logrus.FieldLogger
}

type service struct {
	repo  Repository
	ttl   time.Duration
	hash  HashParams
	clock query.Clock
	log   logrus.FieldLogger
}

// NewAuthService создает сервис регистрации и сессий
func NewAuthService(repo Repository, opts Options) svc.AuthService {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.Hash == (HashParams{}) {
		opts.Hash = DefaultHashParams
	}
	if opts.Clock == nil {
		opts.Clock = query.SystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &service{
		repo:  repo,
		ttl:   opts.SessionTTL,
		hash:  opts.Hash,
		clock: opts.Clock,
		log:   opts.Logger.WithField("component", "auth"),
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email cannot be empty", model.ErrInvalidArgument)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", model.ErrInvalidArgument, email)
	}
	return email, nil
}

// SignUp регистрирует пользователя
func (s *service) SignUp(ctx context.Context, email, password string) (model.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.User{}, err
	}
	if len([]rune(password)) < MinPasswordLength {
		return model.User{}, fmt.Errorf("%w: password must be at least %d characters", model.ErrInvalidArgument, MinPasswordLength)
	}

	hash, err := HashPassword(password, s.hash)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, model.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	})
	if err != nil {
		return model.User{}, err
	}

	s.log.WithField("user_id", user.ID).Info("user signed up")
	return user, nil
}

// SignIn проверяет пароль и открывает сессию
func (s *service) SignIn(ctx context.Context, email, password string) (model.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.Session{}, svc.ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.Session{}, svc.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, err
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return model.Session{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return model.Session{}, svc.ErrInvalidCredentials
	}

	now := s.clock.Now()
	session := model.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("create session: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("user signed in")
	return session, nil
}

// SignOut закрывает сессию. Неизвестный токен не считается ошибкой.
func (s *service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return svc.ErrUnauthenticated
	}
	err := s.repo.DeleteSession(ctx, token)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return err
	}
	return nil
}

// Authenticate возвращает владельца действующей сессии.
// Истекшая сессия удаляется.
func (s *service) Authenticate(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, svc.ErrUnauthenticated
	}

	session, err := s.repo.GetSession(ctx, token)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return model.User{}, svc.ErrUnauthenticated
	}
	if err != nil {
		return model.User{}, err
	}

	if session.Expired(s.clock.Now()) {
		if err := s.repo.DeleteSession(ctx, token); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			s.log.WithError(err).Warn("failed to remove expired session")
		}
		return model.User{}, svc.ErrUnauthenticated
	}

	user, err := s.repo.GetUserByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return model.User{}, svc.ErrUnauthenticated
	}
	return user, err
}
