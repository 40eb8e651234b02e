package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	protoenc "google.golang.org/grpc/encoding/proto"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"notes-calendar/internal/config"
	"notes-calendar/internal/model"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository"
	"notes-calendar/internal/repository/memory"
	authService "notes-calendar/internal/service/auth"
	notesService "notes-calendar/internal/service/notes"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

var handlerNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

type testClients struct {
	conn  *grpc.ClientConn
	notes notesv1.NotesServiceClient
	auth  notesv1.AuthServiceClient
}

// newTestServer поднимает полный gRPC сервер поверх bufconn
func newTestServer(t *testing.T) testClients {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewRepository()
	clock := query.FixedClock(handlerNow)

	noteSvc := notesService.NewNoteService(store, nil, clock, log)
	authSvc := authService.NewAuthService(store, authService.Options{
		SessionTTL: time.Hour,
		Hash:       authService.HashParams{Memory: 1024, Iterations: 1, Threads: 1, SaltLength: 8, KeyLength: 16},
		Clock:      clock,
		Logger:     log,
	})

	handler := NewHandler(noteSvc, Options{
		Clock:             clock,
		DefaultLocation:   time.UTC,
		HeartbeatInterval: time.Hour,
		Logger:            log,
	})
	server := NewServer(handler, NewAuthHandler(authSvc, log), authSvc, &config.ConfigServer{}, log)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return testClients{
		conn:  conn,
		notes: notesv1.NewNotesServiceClient(conn),
		auth:  notesv1.NewAuthServiceClient(conn),
	}
}

// signIn регистрирует пользователя и возвращает контекст с его токеном
func (c testClients) signIn(t *testing.T, email string) context.Context {
	t.Helper()
	ctx := context.Background()

	_, err := c.auth.SignUp(ctx, &notesv1.SignUpRequest{Email: email, Password: "password1"})
	require.NoError(t, err)

	resp, err := c.auth.SignIn(ctx, &notesv1.SignInRequest{Email: email, Password: "password1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, email, resp.User.Email)

	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+resp.Token)
}

func errorInfo(t *testing.T, err error) *errdetails.ErrorInfo {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "Expected gRPC status error")
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	t.Fatalf("Expected ErrorInfo detail in %v", st.Details())
	return nil
}

func TestHandleError_NotFound(t *testing.T) {
	err := handleError(repository.ErrNoteNotFound)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, ReasonNoteNotFound, errorInfo(t, err).Reason)
	assert.Equal(t, errorDomain, errorInfo(t, err).Domain)
}

func TestHandleError_ValidationError(t *testing.T) {
	err := handleError(fmt.Errorf("%w: title too long", model.ErrInvalidArgument))

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "title too long")
	assert.Equal(t, ReasonValidation, errorInfo(t, err).Reason)
}

func TestHandleError_InternalErrorHidesCause(t *testing.T) {
	err := handleError(errors.New("database exploded"))

	st := status.Convert(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "database exploded")
	assert.Equal(t, ReasonInternal, errorInfo(t, err).Reason)
}

func TestHandleError_KeepsExistingStatus(t *testing.T) {
	original := status.Error(codes.Unavailable, "shutting down")
	assert.Equal(t, original, handleError(original))
	assert.NoError(t, handleError(nil))
}

func TestNotes_RequireSession(t *testing.T) {
	clients := newTestServer(t)
	ctx := context.Background()

	_, err := clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	bad := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer nope")
	_, err = clients.notes.ListNotes(bad, &notesv1.ListNotesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	malformed := metadata.AppendToOutgoingContext(ctx, "authorization", "Token abc")
	_, err = clients.notes.ListNotes(malformed, &notesv1.ListNotesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_Errors(t *testing.T) {
	clients := newTestServer(t)
	ctx := context.Background()
	clients.signIn(t, "alice@example.com")

	_, err := clients.auth.SignUp(ctx, &notesv1.SignUpRequest{Email: "alice@example.com", Password: "password1"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = clients.auth.SignIn(ctx, &notesv1.SignInRequest{Email: "alice@example.com", Password: "wrong-password"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, ReasonInvalidCredentials, errorInfo(t, err).Reason)

	_, err = clients.auth.SignUp(ctx, &notesv1.SignUpRequest{Email: "bob@example.com", Password: "short"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.auth.SignUp(ctx, &notesv1.SignUpRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	var fields []string
	for _, d := range status.Convert(err).Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.FieldViolations {
				fields = append(fields, v.Field)
			}
		}
	}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
}

func TestNotes_CreateGetUpdateDelete(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	created, err := clients.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{
		Title:    "",
		Content:  "first thoughts",
		NoteDate: "2024-03-01",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Note.Id)
	assert.Equal(t, "", created.Note.Title)
	assert.Equal(t, model.UntitledTitle, created.Note.DisplayTitle)
	assert.Equal(t, "2024-03-01", created.Note.ResolvedDate)

	got, err := clients.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: created.Note.Id})
	require.NoError(t, err)
	assert.Equal(t, "first thoughts", got.Note.Content)

	updated, err := clients.notes.UpdateNote(ctx, &notesv1.UpdateNoteRequest{
		Id:      created.Note.Id,
		Title:   "Morning",
		Content: "second thoughts",
	})
	require.NoError(t, err)
	assert.Equal(t, "Morning", updated.Note.Title)
	assert.Equal(t, "2024-03-01", updated.Note.ResolvedDate)
	assert.True(t, updated.Note.CreatedAt.AsTime().Equal(created.Note.CreatedAt.AsTime()))

	_, err = clients.notes.DeleteNote(ctx, &notesv1.DeleteNoteRequest{Id: created.Note.Id})
	require.NoError(t, err)

	_, err = clients.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: created.Note.Id})
	require.Equal(t, codes.NotFound, status.Code(err))
	info := errorInfo(t, err)
	assert.Equal(t, ReasonNoteNotFound, info.Reason)
	assert.Equal(t, created.Note.Id, info.Metadata["note_id"])
}

func TestNotes_ValidationInterceptor(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	_, err := clients.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.notes.GetCalendar(ctx, &notesv1.GetCalendarRequest{Year: 2024, Month: 13})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{Timezone: "Mars/Olympus"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{DateFilter: "fortnight"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{NoteDate: "10/03/2024"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestNotes_ListAppliesFilterSearchAndSort(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	for _, req := range []*notesv1.CreateNoteRequest{
		{Title: "Banana bread", Content: "recipe"},
		{Title: "apple pie", Content: "recipe"},
		{Title: "Old recipe", NoteDate: "2024-01-01"},
		{Title: "Groceries", Content: "milk"},
	} {
		_, err := clients.notes.CreateNote(ctx, req)
		require.NoError(t, err)
	}

	resp, err := clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{
		DateFilter: "today",
		Search:     "RECIPE",
		Sort:       "title-asc",
		Timezone:   "UTC",
	})
	require.NoError(t, err)
	require.Equal(t, int32(2), resp.Total)
	assert.Equal(t, "apple pie", resp.Notes[0].Title)
	assert.Equal(t, "Banana bread", resp.Notes[1].Title)

	all, err := clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(4), all.Total)
	assert.Equal(t, "2024-01-01", all.Notes[3].ResolvedDate, "newest first puts the January note last")

	specific, err := clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{DateFilter: "specific", SpecificDate: "2024-01-01"})
	require.NoError(t, err)
	require.Len(t, specific.Notes, 1)
	assert.Equal(t, "Old recipe", specific.Notes[0].Title)
}

func TestNotes_TimezoneChangesCalendarDay(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	// 12:00 UTC это уже 11 марта в Окленде
	_, err := clients.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{Title: "late"})
	require.NoError(t, err)

	utc, err := clients.notes.GetCalendar(ctx, &notesv1.GetCalendarRequest{Year: 2024, Month: 3, Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), utc.Days[9].Count)
	assert.True(t, utc.Days[9].Today)

	nz, err := clients.notes.GetCalendar(ctx, &notesv1.GetCalendarRequest{Year: 2024, Month: 3, Timezone: "Pacific/Auckland"})
	require.NoError(t, err)
	assert.Equal(t, int32(0), nz.Days[9].Count)
	assert.Equal(t, int32(1), nz.Days[10].Count)
	assert.True(t, nz.Days[10].Today)
	assert.Equal(t, "March 2024", nz.Label)
	assert.Equal(t, int32(5), nz.Leading)
}

func TestNotes_IsolatedBetweenUsers(t *testing.T) {
	clients := newTestServer(t)
	alice := clients.signIn(t, "alice@example.com")
	bob := clients.signIn(t, "bob@example.com")

	created, err := clients.notes.CreateNote(alice, &notesv1.CreateNoteRequest{Title: "private"})
	require.NoError(t, err)

	_, err = clients.notes.GetNote(bob, &notesv1.GetNoteRequest{Id: created.Note.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = clients.notes.DeleteNote(bob, &notesv1.DeleteNoteRequest{Id: created.Note.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	list, err := clients.notes.ListNotes(bob, &notesv1.ListNotesRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Notes)
}

func TestNotes_SubscribeToChanges(t *testing.T) {
	clients := newTestServer(t)
	alice := clients.signIn(t, "alice@example.com")
	bob := clients.signIn(t, "bob@example.com")

	streamCtx, cancel := context.WithCancel(alice)
	defer cancel()

	stream, err := clients.notes.SubscribeToChanges(streamCtx, &notesv1.SubscribeToChangesRequest{})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, notesv1.ChangeType_CHANGE_TYPE_SUBSCRIBED, first.Type)

	_, err = clients.notes.CreateNote(bob, &notesv1.CreateNoteRequest{Title: "not for alice"})
	require.NoError(t, err)
	created, err := clients.notes.CreateNote(alice, &notesv1.CreateNoteRequest{Title: "for alice"})
	require.NoError(t, err)

	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, notesv1.ChangeType_CHANGE_TYPE_CREATED, ev.Type)
	assert.Equal(t, created.Note.Id, ev.NoteId)
}

func TestNotes_SubscribeRequiresSession(t *testing.T) {
	clients := newTestServer(t)

	stream, err := clients.notes.SubscribeToChanges(context.Background(), &notesv1.SubscribeToChangesRequest{})
	require.NoError(t, err)

	_, err = stream.Recv()
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_SignOutEndsSession(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	_, err := clients.auth.SignOut(ctx, &notesv1.SignOutRequest{})
	require.NoError(t, err)

	_, err = clients.notes.ListNotes(ctx, &notesv1.ListNotesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuth_SignInOverProtoCodec(t *testing.T) {
	clients := newTestServer(t)
	ctx := context.Background()
	codec := grpc.ForceCodecV2(encoding.GetCodecV2(protoenc.Name))

	signUp := &notesv1.SignUpResponse{}
	err := clients.conn.Invoke(ctx, notesv1.AuthService_SignUp_FullMethodName,
		&notesv1.SignUpRequest{Email: "alice@example.com", Password: "password1"}, signUp, codec)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", signUp.User.GetEmail())

	signIn := &notesv1.SignInResponse{}
	err = clients.conn.Invoke(ctx, notesv1.AuthService_SignIn_FullMethodName,
		&notesv1.SignInRequest{Email: "alice@example.com", Password: "password1"}, signIn, codec)
	require.NoError(t, err)
	assert.NotEmpty(t, signIn.Token)
	assert.True(t, signIn.ExpiresAt.AsTime().Equal(handlerNow.Add(time.Hour)))
}

func TestNotes_ValidationBadRequestDetails(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	_, err := clients.notes.GetNote(ctx, &notesv1.GetNoteRequest{Id: "not-a-uuid"})
	st := status.Convert(err)
	require.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "validation failed")

	var violations []*errdetails.BadRequest_FieldViolation
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			violations = append(violations, br.FieldViolations...)
		}
	}
	require.Len(t, violations, 1)
	assert.Equal(t, "id", violations[0].Field)
	assert.NotEmpty(t, violations[0].Description)

	_, err = clients.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{Title: strings.Repeat("a", model.MaxTitleLength+1)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = clients.notes.CreateNote(ctx, &notesv1.CreateNoteRequest{Title: strings.Repeat("a", model.MaxTitleLength)})
	assert.NoError(t, err)
}

func TestNotes_TimezoneFromMetadata(t *testing.T) {
	clients := newTestServer(t)
	ctx := clients.signIn(t, "alice@example.com")

	// 12:00 UTC это уже 11 марта в Окленде
	nz := metadata.AppendToOutgoingContext(ctx, "x-timezone", "Pacific/Auckland")
	created, err := clients.notes.CreateNote(nz, &notesv1.CreateNoteRequest{Title: "late"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", created.Note.ResolvedDate)

	// поле запроса важнее метаданных
	got, err := clients.notes.GetNote(nz, &notesv1.GetNoteRequest{Id: created.Note.Id, Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", got.Note.ResolvedDate)

	mars := metadata.AppendToOutgoingContext(ctx, "x-timezone", "Mars/Olympus")
	_, err = clients.notes.ListNotes(mars, &notesv1.ListNotesRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
