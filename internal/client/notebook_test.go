package client

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	grpcapi "notes-calendar/internal/api/grpc"
	"notes-calendar/internal/config"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository/memory"
	authService "notes-calendar/internal/service/auth"
	notesService "notes-calendar/internal/service/notes"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

var serverNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// dial поднимает сервер поверх bufconn и возвращает соединение с ним
func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()
	log := quietLogger()

	store := memory.NewRepository()
	clock := query.FixedClock(serverNow)
	noteSvc := notesService.NewNoteService(store, nil, clock, log)
	authSvc := authService.NewAuthService(store, authService.Options{
		SessionTTL: time.Hour,
		Hash:       authService.HashParams{Memory: 1024, Iterations: 1, Threads: 1, SaltLength: 8, KeyLength: 16},
		Clock:      clock,
		Logger:     log,
	})
	handler := grpcapi.NewHandler(noteSvc, grpcapi.Options{
		Clock:             clock,
		DefaultLocation:   time.UTC,
		HeartbeatInterval: time.Hour,
		Logger:            log,
	})
	server := grpcapi.NewServer(handler, grpcapi.NewAuthHandler(authSvc, log), authSvc, &config.ConfigServer{}, log)

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
	return conn
}

func signedIn(t *testing.T, conn *grpc.ClientConn) context.Context {
	t.Helper()
	auth := notesv1.NewAuthServiceClient(conn)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, &notesv1.SignUpRequest{Email: "reader@example.com", Password: "password1"})
	require.NoError(t, err)
	resp, err := auth.SignIn(ctx, &notesv1.SignInRequest{Email: "reader@example.com", Password: "password1"})
	require.NoError(t, err)

	return WithToken(ctx, resp.Token)
}

func TestNotebook_RefreshAndViews(t *testing.T) {
	conn := dial(t)
	ctx := signedIn(t, conn)
	nb := NewNotebook(conn, time.UTC, quietLogger())

	_, err := nb.Create(ctx, "Groceries", "milk", "")
	require.NoError(t, err)
	_, err = nb.Create(ctx, "", "dentist", "2024-03-12")
	require.NoError(t, err)

	require.NoError(t, nb.Refresh(ctx))
	assert.NoError(t, nb.Err())
	assert.Len(t, nb.Snapshot(), 2)
	assert.False(t, nb.FetchedAt().IsZero())

	require.NoError(t, nb.SetFilter(query.Filter{Date: query.DateToday, Sort: query.SortTitleAsc}))
	view := nb.View(serverNow)
	require.Len(t, view, 1)
	assert.Equal(t, "Groceries", view[0].Title)

	cal := nb.Calendar(2024, time.March, serverNow)
	assert.Equal(t, 2, cal.Total())
}

func TestNotebook_SetFilterRejectsUnknownVariant(t *testing.T) {
	nb := NewNotebook(dial(t), time.UTC, quietLogger())

	err := nb.SetFilter(query.Filter{Date: query.DateFilter(42)})
	assert.Error(t, err)
	assert.Equal(t, query.DefaultFilter(), nb.Filter())
}

func TestNotebook_RefreshFailureKeepsSnapshot(t *testing.T) {
	conn := dial(t)
	ctx := signedIn(t, conn)
	nb := NewNotebook(conn, time.UTC, quietLogger())

	_, err := nb.Create(ctx, "kept", "", "")
	require.NoError(t, err)
	require.Len(t, nb.Snapshot(), 1)

	// Без токена сервер отвечает Unauthenticated
	err = nb.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, err, nb.Err())
	require.Len(t, nb.Snapshot(), 1)
	assert.Equal(t, "kept", nb.Snapshot()[0].Title)

	require.NoError(t, nb.Refresh(ctx))
	assert.NoError(t, nb.Err())
}

func TestNotebook_PatchKeepsOmittedFields(t *testing.T) {
	conn := dial(t)
	ctx := signedIn(t, conn)
	nb := NewNotebook(conn, time.UTC, quietLogger())

	created, err := nb.Create(ctx, "Groceries", "milk", "")
	require.NoError(t, err)

	content := "milk, eggs"
	note, err := nb.Patch(ctx, created.ID, nil, &content)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)

	title := "Shopping"
	note, err = nb.Patch(ctx, created.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)

	_, err = nb.Patch(ctx, created.ID, nil, nil)
	assert.Error(t, err)
}

func TestNotebook_WatchRefetchesOnChange(t *testing.T) {
	conn := dial(t)
	ctx := signedIn(t, conn)
	watcher := NewNotebook(conn, time.UTC, quietLogger())
	writer := NewNotebook(conn, time.UTC, quietLogger())

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan notesv1.ChangeType, 8)
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(watchCtx, func(ev *notesv1.ChangeEvent) {
			events <- ev.Type
		})
	}()

	select {
	case typ := <-events:
		require.Equal(t, notesv1.ChangeType_CHANGE_TYPE_SUBSCRIBED, typ)
	case <-time.After(5 * time.Second):
		t.Fatal("no subscribed event")
	}

	_, err := writer.Create(ctx, "from elsewhere", "", "")
	require.NoError(t, err)

	select {
	case typ := <-events:
		require.Equal(t, notesv1.ChangeType_CHANGE_TYPE_CREATED, typ)
	case <-time.After(5 * time.Second):
		t.Fatal("no created event")
	}
	require.Len(t, watcher.Snapshot(), 1)
	assert.Equal(t, "from elsewhere", watcher.Snapshot()[0].Title)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
