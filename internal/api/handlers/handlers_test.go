package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondBadRequest(rec, "некорректный запрос")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":400,"message":"некорректный запрос"}`, rec.Body.String())
}

func TestRespondServiceUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondServiceUnavailable(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "x", p.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"other":1}`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestParseDateTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	got, err := ParseDateTime("2025-06-10T09:00", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, loc), got)

	got, err = ParseDateTime("2025-06-10T06:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 10, 9, 0, 0, 0, loc)))
	assert.Equal(t, 9, got.Hour())

	_, err = ParseDateTime("10.06.2025", loc)
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	got, err := ParseDate("2025-06-10", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), got)

	_, err = ParseDate("2025/06/10", loc)
	assert.Error(t, err)
}
