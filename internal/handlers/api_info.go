package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	apiName    = "Feedback Collection Platform API"
	apiVersion = "1.0"
)

type apiInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

var endpoints = map[string]string{
	"auth":      "/api/auth/",
	"forms":     "/api/forms/",
	"responses": "/api/responses/",
	"metrics":   "/metrics",
}

// APIInfo handles GET /
func APIInfo(logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		err := json.NewEncoder(w).Encode(apiInfo{
			Message:   apiName,
			Version:   apiVersion,
			Endpoints: endpoints,
		})
		if err != nil {
			logger.Errorf("failed to encode api info: %v", err)
		}
	}
}
