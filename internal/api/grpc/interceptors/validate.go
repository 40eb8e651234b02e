package interceptors

import (
	"context"
	"errors"

	"buf.build/go/protovalidate"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

var validator protovalidate.Validator

func init() {
	var err error
	validator, err = protovalidate.New()
	if err != nil {
		panic("failed to initialize validator: " + err.Error())
	}
}

// ValidateUnaryInterceptor проверяет запрос по правилам buf.validate из proto.
// Нарушения возвращаются как InvalidArgument с BadRequest деталями по полям.
func ValidateUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	msg, ok := req.(proto.Message)
	if !ok {
		return handler(ctx, req)
	}

	if err := validator.Validate(msg); err != nil {
		return nil, validationStatus(err).Err()
	}

	return handler(ctx, req)
}

func validationStatus(err error) *status.Status {
	st := status.New(codes.InvalidArgument, "validation failed: "+err.Error())

	var valErr *protovalidate.ValidationError
	if !errors.As(err, &valErr) {
		return st
	}

	badRequest := &errdetails.BadRequest{}
	for _, v := range valErr.Violations {
		if v == nil || v.Proto == nil {
			continue
		}
		badRequest.FieldViolations = append(badRequest.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       protovalidate.FieldPathString(v.Proto.GetField()),
			Description: v.Proto.GetMessage(),
		})
	}
	if len(badRequest.FieldViolations) == 0 {
		return st
	}

	if withDetails, detailsErr := st.WithDetails(badRequest); detailsErr == nil {
		return withDetails
	}
	return st
}
