package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/pkg/apperr"
)

var errThingNotFound = apperr.NotFound("thing not found")

func decode(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "validation",
			err:         apperr.Validation("period_start must not be after period_end"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "period_start must not be after period_end",
		},
		{
			name:        "wrapped sentinel keeps kind",
			err:         fmt.Errorf("%w: id 7", errThingNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "thing not found: id 7",
		},
		{
			name:        "conflict",
			err:         apperr.Conflict("already exists"),
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantMessage: "already exists",
		},
		{
			name:        "unknown error hides detail",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Failed to do the thing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err, "Failed to do the thing")

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
		})
	}
}

func TestPageParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=0&per_page=500", nil)
	page, perPage := PageParams(req)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, perPage)

	req = httptest.NewRequest(http.MethodGet, "/?page=3&per_page=10", nil)
	page, perPage = PageParams(req)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, perPage)

	meta := NewMeta(3, 10, 21)
	assert.Equal(t, 3, meta.TotalPages)
}
