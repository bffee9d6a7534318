package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnlyOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusBadRequest)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusBadRequest, rw.status)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_WriteImplies200AndCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n1, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	n2, err := rw.Write([]byte(", world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.status)
	assert.True(t, rw.wroteHeader)
	assert.Equal(t, n1+n2, rw.size)
	assert.Equal(t, "hello, world", rec.Body.String())
}

func TestBufferedResponseWriter_HoldsUntilFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	bw := &bufferedResponseWriter{ResponseWriter: rec}

	bw.WriteHeader(http.StatusUnauthorized)
	bw.WriteHeader(http.StatusOK)
	bw.Write([]byte(`{"err":"Invalid token"}`))

	assert.Zero(t, rec.Body.Len())

	bw.Header().Set("X-Late", "yes")
	require.NoError(t, bw.flush())

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "yes", rec.Header().Get("X-Late"))
	assert.Equal(t, `{"err":"Invalid token"}`, rec.Body.String())
}

func TestBufferedResponseWriter_EmptyFlushDefaultsTo200(t *testing.T) {
	rec := httptest.NewRecorder()
	bw := &bufferedResponseWriter{ResponseWriter: rec}

	require.NoError(t, bw.flush())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
