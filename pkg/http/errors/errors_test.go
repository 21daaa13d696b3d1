package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRespondNotFoundDefaultsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.Error)
	assert.Equal(t, MsgNotFound, body.Message)
}

func TestRespondValidationErrorIncludesField(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, "answer is required", "answer")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "answer", body.Field)
	assert.Equal(t, "answer is required", body.Message)
	assert.Equal(t, http.StatusBadRequest, body.Error)
}

func TestRespondUnprocessableKeepsSpecificMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondUnprocessable(rec, "quiz exhausted")

	body := decode(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "quiz exhausted", body.Message)
}
