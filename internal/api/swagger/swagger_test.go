package swagger

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

func TestServeSwagger(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mux := http.NewServeMux()
	require.NoError(t, ServeSwagger(mux, notesv1.SwaggerFS, notesv1.SwaggerFile, log))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var spec struct {
		Swagger string         `json:"swagger"`
		Paths   map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, "2.0", spec.Swagger)
	assert.Contains(t, spec.Paths, "/api/v1/notes")
	assert.Contains(t, spec.Paths, "/api/v1/calendar/{year}/{month}")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/specs/"+notesv1.SwaggerFile, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/swagger.json", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeSwagger_MissingFile(t *testing.T) {
	err := ServeSwagger(http.NewServeMux(), notesv1.SwaggerFS, "missing.json", logrus.New())
	assert.Error(t, err)
}
