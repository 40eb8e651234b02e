package gateway

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	grpcapi "notes-calendar/internal/api/grpc"
	"notes-calendar/internal/config"
	"notes-calendar/internal/query"
	"notes-calendar/internal/repository/memory"
	authService "notes-calendar/internal/service/auth"
	notesService "notes-calendar/internal/service/notes"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

var gatewayNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

// newTestGateway поднимает gRPC сервер на bufconn и gateway на httptest
func newTestGateway(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewRepository()
	clock := query.FixedClock(gatewayNow)
	noteSvc := notesService.NewNoteService(store, nil, clock, log)
	authSvc := authService.NewAuthService(store, authService.Options{
		Hash:   authService.HashParams{Memory: 1024, Iterations: 1, Threads: 1, SaltLength: 8, KeyLength: 16},
		Clock:  clock,
		Logger: log,
	})

	handler := grpcapi.NewHandler(noteSvc, grpcapi.Options{Clock: clock, DefaultLocation: time.UTC, HeartbeatInterval: time.Hour, Logger: log})
	grpcServer := grpcapi.NewServer(handler, grpcapi.NewAuthHandler(authSvc, log), authSvc, &config.ConfigServer{}, log)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	httpHandler, err := NewHandler(context.Background(), conn, &config.ConfigGateway{RateLimitRPS: 1000, RateLimitBurst: 1000}, nil, log)
	require.NoError(t, err)

	srv := httptest.NewServer(httpHandler)
	t.Cleanup(srv.Close)
	return srv
}

type apiClient struct {
	t      *testing.T
	base   string
	token  string
	header http.Header
}

func (c *apiClient) do(method, path string, body any) (int, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		var (
			buf []byte
			err error
		)
		if msg, ok := body.(proto.Message); ok {
			buf, err = protojson.Marshal(msg)
		} else {
			buf, err = json.Marshal(body)
		}
		require.NoError(c.t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range c.header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, out
}

func (c *apiClient) decode(method, path string, body any, wantCode int, out any) {
	c.t.Helper()
	code, raw := c.do(method, path, body)
	require.Equal(c.t, wantCode, code, string(raw))
	if out == nil {
		return
	}
	if msg, ok := out.(proto.Message); ok {
		require.NoError(c.t, protojson.Unmarshal(raw, msg), string(raw))
		return
	}
	require.NoError(c.t, json.Unmarshal(raw, out), string(raw))
}

func signedIn(t *testing.T, srv *httptest.Server, email string) *apiClient {
	t.Helper()
	c := &apiClient{t: t, base: srv.URL}

	c.decode(http.MethodPost, "/api/v1/auth/signup", &notesv1.SignUpRequest{Email: email, Password: "password1"}, http.StatusOK, nil)

	var signIn notesv1.SignInResponse
	c.decode(http.MethodPost, "/api/v1/auth/signin", &notesv1.SignInRequest{Email: email, Password: "password1"}, http.StatusOK, &signIn)
	require.NotEmpty(t, signIn.Token)

	c.token = signIn.Token
	return c
}

type rpcStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details []struct {
		Type     string            `json:"@type"`
		Reason   string            `json:"reason"`
		Metadata map[string]string `json:"metadata"`
	} `json:"details"`
}

func TestGateway_RequiresAuthorization(t *testing.T) {
	srv := newTestGateway(t)
	c := &apiClient{t: t, base: srv.URL}

	var st rpcStatus
	c.decode(http.MethodGet, "/api/v1/notes", nil, http.StatusUnauthorized, &st)
	assert.Equal(t, 16, st.Code)
}

func TestGateway_NotesCRUD(t *testing.T) {
	srv := newTestGateway(t)
	c := signedIn(t, srv, "alice@example.com")

	var created notesv1.CreateNoteResponse
	c.decode(http.MethodPost, "/api/v1/notes", &notesv1.CreateNoteRequest{Title: "Trip", Content: "# Packing\n\n- socks", NoteDate: "2024-03-15"}, http.StatusOK, &created)
	require.NotEmpty(t, created.Note.Id)
	assert.Equal(t, "2024-03-15", created.Note.ResolvedDate)

	var got notesv1.GetNoteResponse
	c.decode(http.MethodGet, "/api/v1/notes/"+created.Note.Id, nil, http.StatusOK, &got)
	assert.Equal(t, "Trip", got.Note.Title)

	var updated notesv1.UpdateNoteResponse
	c.decode(http.MethodPut, "/api/v1/notes/"+created.Note.Id, &notesv1.UpdateNoteRequest{Title: "", Content: "changed"}, http.StatusOK, &updated)
	assert.Equal(t, "Untitled", updated.Note.DisplayTitle)
	assert.Equal(t, "2024-03-15", updated.Note.ResolvedDate)

	c.decode(http.MethodDelete, "/api/v1/notes/"+created.Note.Id, nil, http.StatusOK, nil)

	var st rpcStatus
	c.decode(http.MethodGet, "/api/v1/notes/"+created.Note.Id, nil, http.StatusNotFound, &st)
	assert.Equal(t, 5, st.Code)
	require.NotEmpty(t, st.Details)
	assert.Equal(t, "type.googleapis.com/google.rpc.ErrorInfo", st.Details[0].Type)
	assert.Equal(t, "NOTE_NOT_FOUND", st.Details[0].Reason)
	assert.Equal(t, created.Note.Id, st.Details[0].Metadata["note_id"])
}

func TestGateway_BadInput(t *testing.T) {
	srv := newTestGateway(t)
	c := signedIn(t, srv, "alice@example.com")

	code, _ := c.do(http.MethodGet, "/api/v1/notes?date_filter=fortnight", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = c.do(http.MethodGet, "/api/v1/calendar/2024/march", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = c.do(http.MethodGet, "/api/v1/notes/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/notes", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGateway_ListAndCalendar(t *testing.T) {
	srv := newTestGateway(t)
	c := signedIn(t, srv, "alice@example.com")

	for _, n := range []*notesv1.CreateNoteRequest{
		{Title: "Standup", Content: "weekly sync"},
		{Title: "Retro", Content: "Weekly review", NoteDate: "2024-03-08"},
		{Title: "Groceries", NoteDate: "2024-02-01"},
	} {
		c.decode(http.MethodPost, "/api/v1/notes", n, http.StatusOK, nil)
	}

	var list notesv1.ListNotesResponse
	c.decode(http.MethodGet, "/api/v1/notes?date_filter=last7&search=weekly&sort=oldest&timezone=UTC", nil, http.StatusOK, &list)
	require.Len(t, list.Notes, 2)
	assert.Equal(t, "Retro", list.Notes[0].Title)
	assert.Equal(t, "Standup", list.Notes[1].Title)

	var cal notesv1.GetCalendarResponse
	c.decode(http.MethodGet, "/api/v1/calendar/2024/3?timezone=UTC", nil, http.StatusOK, &cal)
	assert.Equal(t, "March 2024", cal.Label)
	assert.Equal(t, int32(2), cal.Total)
	assert.Equal(t, int32(1), cal.Days[7].Count)
	assert.Equal(t, int32(1), cal.Days[9].Count)
	assert.True(t, cal.Days[9].Today)
}

func TestGateway_TimezoneHeader(t *testing.T) {
	srv := newTestGateway(t)
	c := signedIn(t, srv, "alice@example.com")
	c.header = http.Header{"X-Timezone": []string{"Pacific/Auckland"}}

	// 12:00 UTC это уже 11 марта в Окленде
	var created notesv1.CreateNoteResponse
	c.decode(http.MethodPost, "/api/v1/notes", &notesv1.CreateNoteRequest{Title: "late"}, http.StatusOK, &created)
	assert.Equal(t, "2024-03-11", created.Note.ResolvedDate)

	var got notesv1.GetNoteResponse
	c.decode(http.MethodGet, "/api/v1/notes/"+created.Note.Id+"?timezone=UTC", nil, http.StatusOK, &got)
	assert.Equal(t, "2024-03-10", got.Note.ResolvedDate)

	c.header.Set("X-Timezone", "Mars/Olympus")
	code, _ := c.do(http.MethodGet, "/api/v1/notes", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGateway_Preview(t *testing.T) {
	srv := newTestGateway(t)
	c := signedIn(t, srv, "alice@example.com")

	var created notesv1.CreateNoteResponse
	c.decode(http.MethodPost, "/api/v1/notes", &notesv1.CreateNoteRequest{Content: "**bold** <script>x</script>"}, http.StatusOK, &created)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/notes/"+created.Note.Id+"/preview", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "<strong>bold</strong>")
	assert.Contains(t, string(body), "<h1>Untitled</h1>")
	assert.NotContains(t, string(body), "<script>")
}

func TestGateway_ChangesStream(t *testing.T) {
	srv := newTestGateway(t)
	c := signedIn(t, srv, "alice@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/changes", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	lines := bufio.NewScanner(resp.Body)
	next := func() *notesv1.ChangeEvent {
		require.True(t, lines.Scan(), "expected another stream line")
		var chunk struct {
			Result json.RawMessage `json:"result"`
		}
		require.NoError(t, json.Unmarshal(lines.Bytes(), &chunk))
		ev := &notesv1.ChangeEvent{}
		require.NoError(t, protojson.Unmarshal(chunk.Result, ev), string(chunk.Result))
		return ev
	}

	assert.Equal(t, notesv1.ChangeType_CHANGE_TYPE_SUBSCRIBED, next().Type)

	var created notesv1.CreateNoteResponse
	c.decode(http.MethodPost, "/api/v1/notes", &notesv1.CreateNoteRequest{Title: "live"}, http.StatusOK, &created)

	ev := next()
	assert.Equal(t, notesv1.ChangeType_CHANGE_TYPE_CREATED, ev.Type)
	assert.Equal(t, created.Note.Id, ev.NoteId)
	assert.True(t, ev.Timestamp.AsTime().Equal(gatewayNow))
}

func TestGateway_ChangesStreamRejectsAnonymous(t *testing.T) {
	srv := newTestGateway(t)

	resp, err := http.Get(srv.URL + "/api/v1/changes")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
