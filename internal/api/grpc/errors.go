package grpc

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"notes-calendar/internal/model"
	"notes-calendar/internal/repository"
	svc "notes-calendar/internal/service"
)

// errorDomain домен ErrorInfo деталей
const errorDomain = "notes.v1"

// Коды ошибок в ErrorInfo.Reason
const (
	ReasonNoteNotFound       = "NOTE_NOT_FOUND"
	ReasonValidation         = "VALIDATION_ERROR"
	ReasonUserExists         = "USER_EXISTS"
	ReasonInvalidCredentials = "INVALID_CREDENTIALS"
	ReasonUnauthenticated    = "UNAUTHENTICATED"
	ReasonInternal           = "INTERNAL_ERROR"
)

// statusWithInfo собирает статус с деталью ErrorInfo
func statusWithInfo(code codes.Code, msg, reason string, metadata map[string]string) error {
	st := status.New(code, msg)
	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   errorDomain,
		Metadata: metadata,
	})
	if err != nil {
		// Если не удалось добавить Details, возвращаем ошибку без деталей
		return st.Err()
	}
	return withDetails.Err()
}

// handleError конвертирует внутренние ошибки в gRPC статусы с ErrorInfo.
// Текст внутренних ошибок клиенту не отдается.
func handleError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrNoteNotFound):
		return statusWithInfo(codes.NotFound, "note not found", ReasonNoteNotFound, nil)
	case errors.Is(err, model.ErrInvalidArgument):
		return statusWithInfo(codes.InvalidArgument, err.Error(), ReasonValidation, nil)
	case errors.Is(err, repository.ErrUserExists):
		return statusWithInfo(codes.AlreadyExists, "user already exists", ReasonUserExists, nil)
	case errors.Is(err, svc.ErrInvalidCredentials):
		return statusWithInfo(codes.Unauthenticated, "invalid email or password", ReasonInvalidCredentials, nil)
	case errors.Is(err, svc.ErrUnauthenticated):
		return statusWithInfo(codes.Unauthenticated, "unauthenticated", ReasonUnauthenticated, nil)
	default:
		return statusWithInfo(codes.Internal, "internal error", ReasonInternal, nil)
	}
}

// noteNotFound ошибка NotFound с ID заметки в метаданных
func noteNotFound(id string) error {
	return statusWithInfo(codes.NotFound, "note not found", ReasonNoteNotFound, map[string]string{"note_id": id})
}

func isInternal(err error) bool {
	return status.Code(err) == codes.Internal
}
