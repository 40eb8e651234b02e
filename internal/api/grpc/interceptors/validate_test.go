package interceptors

import (
	"context"
	"strings"
	"testing"

	"buf.build/go/protovalidate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"notes-calendar/internal/model"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

var unaryInfo = &grpc.UnaryServerInfo{FullMethod: notesv1.NotesService_GetCalendar_FullMethodName}

func TestValidateUnaryInterceptor_RejectsInvalidRequest(t *testing.T) {
	handler := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler must not be called for an invalid request")
		return nil, nil
	}

	_, err := ValidateUnaryInterceptor(context.Background(), &notesv1.GetCalendarRequest{Year: 2024, Month: 13}, unaryInfo, handler)
	st := status.Convert(err)
	require.Equal(t, codes.InvalidArgument, st.Code())

	var fields []string
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.FieldViolations {
				fields = append(fields, v.Field)
			}
		}
	}
	assert.Equal(t, []string{"month"}, fields)
}

func TestValidateUnaryInterceptor_PassesValidRequest(t *testing.T) {
	called := false
	handler := func(ctx context.Context, req any) (any, error) {
		called = true
		return &notesv1.GetCalendarResponse{}, nil
	}

	resp, err := ValidateUnaryInterceptor(context.Background(), &notesv1.GetCalendarRequest{Year: 2024, Month: 2}, unaryInfo, handler)
	require.NoError(t, err)
	assert.True(t, called)
	assert.NotNil(t, resp)
}

func TestValidateUnaryInterceptor_CountsCharactersNotBytes(t *testing.T) {
	handler := func(ctx context.Context, req any) (any, error) { return nil, nil }

	title := strings.Repeat("ж", model.MaxTitleLength)
	_, err := ValidateUnaryInterceptor(context.Background(), &notesv1.CreateNoteRequest{Title: title}, unaryInfo, handler)
	assert.NoError(t, err)

	_, err = ValidateUnaryInterceptor(context.Background(), &notesv1.CreateNoteRequest{Title: title + "ж"}, unaryInfo, handler)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// Лимиты длины в proto правилах должны совпадать с доменными
func TestNoteLengthRulesMatchModel(t *testing.T) {
	maxLen := func(msg proto.Message, field protoreflect.Name) uint64 {
		t.Helper()
		fd := msg.ProtoReflect().Descriptor().Fields().ByName(field)
		require.NotNil(t, fd, "field %s", field)
		rules, err := protovalidate.ResolveFieldRules(fd)
		require.NoError(t, err)
		return rules.GetString().GetMaxLen()
	}

	for _, msg := range []proto.Message{&notesv1.CreateNoteRequest{}, &notesv1.UpdateNoteRequest{}} {
		name := msg.ProtoReflect().Descriptor().FullName()
		assert.Equal(t, uint64(model.MaxTitleLength), maxLen(msg, "title"), name)
		assert.Equal(t, uint64(model.MaxContentLength), maxLen(msg, "content"), name)
	}
}
