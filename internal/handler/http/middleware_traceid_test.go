package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-social-api/internal/logger"
)

func runWithTraceID(t *testing.T, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	h := &Handler{logger: logger.Nop()}

	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { seen = r })

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	require.NotNil(t, seen, "next handler must be called")
	return rr, seen
}

func TestWithTraceID_ReusesIncoming(t *testing.T) {
	rr, _ := runWithTraceID(t, "caller-trace-42")

	assert.Equal(t, "caller-trace-42", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rr, _ := runWithTraceID(t, "")

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_ReplacesOversized(t *testing.T) {
	rr, _ := runWithTraceID(t, strings.Repeat("a", maxTraceIDSize+1))

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "ctx-trace")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"ctx-trace"`)
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	first, _ := runWithTraceID(t, "")
	second, _ := runWithTraceID(t, "")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
