package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/haulledger/pkg/response"
)

func TestHandler_RejectsBeforeStorage(t *testing.T) {
	// nil repository: every case must be answered before any query
	router := NewHandler(NewService(nil, nil)).Routes()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"bad id", http.MethodGet, "/abc", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"zero id", http.MethodDelete, "/0", "", http.StatusBadRequest, "BAD_REQUEST"},
		{"bad body", http.MethodPost, "/", "{", http.StatusBadRequest, "BAD_REQUEST"},
		{"invalid email", http.MethodPost, "/", `{"email":"nope","first_name":"A","last_name":"B"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"update too long", http.MethodPut, "/3", `{"telephone":"` + strings.Repeat("9", 40) + `"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body response.APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}
