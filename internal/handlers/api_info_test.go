package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert"
	"go.uber.org/zap"
)

func TestAPIInfo(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	APIInfo(zap.NewNop().Sugar()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body apiInfo
	assert.Equal(t, nil, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Feedback Collection Platform API", body.Message)
	assert.Equal(t, "1.0", body.Version)
	assert.Equal(t, "/api/forms/", body.Endpoints["forms"])
	assert.Equal(t, 4, len(body.Endpoints))
}
