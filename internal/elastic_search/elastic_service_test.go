package elastic

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	esDoc "feedback-main/internal/types/elastic"
	myErr "feedback-main/internal/types/errors"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockTransport struct {
	RoundTripFn func(req *http.Request) (*http.Response, error)
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFn(req)
}

func setupTestService(t *testing.T, fn func(req *http.Request) (*http.Response, error)) *ElasticService {
	t.Helper()
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Transport: &mockTransport{RoundTripFn: fn},
	})
	require.NoError(t, err)

	return NewService(client, zaptest.NewLogger(t).Sugar(), "test-forms")
}

func elasticResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"X-Elastic-Product": []string{"Elasticsearch"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var testDoc = esDoc.FormDoc{
	ID:          "form-1",
	Title:       "Satisfaction",
	Description: "How was it?",
	Questions:   []string{"Rate us", "Recommend?"},
}

func TestIndexForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		mockFn      func(req *http.Request) (*http.Response, error)
		expectedErr error
	}{
		{
			name: "successful indexing",
			mockFn: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "/test-forms/_doc/form-1", req.URL.Path)
				return elasticResponse(http.StatusCreated, `{"result":"created"}`), nil
			},
		},
		{
			name: "elasticsearch error",
			mockFn: func(req *http.Request) (*http.Response, error) {
				return elasticResponse(http.StatusInternalServerError, `{"error":"server error"}`), nil
			},
			expectedErr: myErr.ErrIndexing,
		},
		{
			name: "request error",
			mockFn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection error")
			},
			expectedErr: errors.New("connection error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupTestService(t, tt.mockFn)
			err := service.IndexForm(context.Background(), testDoc)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBulkIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		docs        []esDoc.FormDoc
		mockFn      func(req *http.Request) (*http.Response, error)
		expectedErr error
	}{
		{
			name: "successful bulk indexing",
			docs: []esDoc.FormDoc{testDoc, {ID: "form-2", Title: "Onboarding"}},
			mockFn: func(req *http.Request) (*http.Response, error) {
				body, err := io.ReadAll(req.Body)
				assert.NoError(t, err)
				assert.Contains(t, string(body), `"_id":"form-1"`)
				assert.Contains(t, string(body), `"_id":"form-2"`)
				assert.Contains(t, string(body), `"questions":["Rate us","Recommend?"]`)
				return elasticResponse(http.StatusOK, `{"errors":false,"items":[]}`), nil
			},
		},
		{
			name: "empty docs array",
			docs: []esDoc.FormDoc{},
			mockFn: func(req *http.Request) (*http.Response, error) {
				t.Error("Request should not be made for empty docs")
				return nil, nil
			},
		},
		{
			name: "bulk request error",
			docs: []esDoc.FormDoc{testDoc},
			mockFn: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("bulk request failed")
			},
			expectedErr: errors.New("bulk request failed"),
		},
		{
			name: "bulk response error",
			docs: []esDoc.FormDoc{testDoc},
			mockFn: func(req *http.Request) (*http.Response, error) {
				return elasticResponse(http.StatusInternalServerError, `{"error":"bulk error"}`), nil
			},
			expectedErr: myErr.ErrIndexing,
		},
		{
			name: "partial failure inside 200",
			docs: []esDoc.FormDoc{testDoc},
			mockFn: func(req *http.Request) (*http.Response, error) {
				return elasticResponse(http.StatusOK, `{"errors":true,"items":[]}`), nil
			},
			expectedErr: myErr.ErrIndexing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupTestService(t, tt.mockFn)
			err := service.BulkIndex(context.Background(), tt.docs)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchForms(t *testing.T) {
	t.Parallel()

	t.Run("hits are decoded", func(t *testing.T) {
		service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/test-forms/_search", req.URL.Path)
			body, err := io.ReadAll(req.Body)
			assert.NoError(t, err)
			assert.Contains(t, string(body), `"query":"satisfy"`)
			return elasticResponse(http.StatusOK,
				`{"hits":{"total":{"value":1},"hits":[{"_source":{"id":"form-1","title":"Satisfaction","description":"How was it?"}}]}}`,
			), nil
		})

		docs, err := service.SearchForms(context.Background(), "satisfy")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "form-1", docs[0].ID)
		assert.Equal(t, "Satisfaction", docs[0].Title)
	})

	t.Run("no hits gives empty slice", func(t *testing.T) {
		service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
			return elasticResponse(http.StatusOK, `{"hits":{"hits":[]}}`), nil
		})

		docs, err := service.SearchForms(context.Background(), "nothing")
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("search error", func(t *testing.T) {
		service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
			return elasticResponse(http.StatusBadRequest, `{"error":"parsing_exception"}`), nil
		})

		_, err := service.SearchForms(context.Background(), "x")
		assert.ErrorIs(t, err, myErr.ErrSearch)
	})
}

func TestDeleteForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "deleted", status: http.StatusOK},
		{name: "not indexed yet", status: http.StatusNotFound},
		{name: "cluster failure", status: http.StatusServiceUnavailable, want: myErr.ErrIndexing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodDelete, req.Method)
				assert.Equal(t, "/test-forms/_doc/form-1", req.URL.Path)
				return elasticResponse(tt.status, `{}`), nil
			})

			err := service.DeleteForm(context.Background(), "form-1")
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsureIndex(t *testing.T) {
	t.Parallel()

	t.Run("already exists", func(t *testing.T) {
		calls := 0
		service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
			calls++
			assert.Equal(t, http.MethodHead, req.Method)
			return elasticResponse(http.StatusOK, ``), nil
		})

		assert.NoError(t, service.EnsureIndex(context.Background()))
		assert.Equal(t, 1, calls)
	})

	t.Run("created with mapping", func(t *testing.T) {
		service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodHead {
				return elasticResponse(http.StatusNotFound, ``), nil
			}
			assert.Equal(t, http.MethodPut, req.Method)
			body, err := io.ReadAll(req.Body)
			assert.NoError(t, err)
			assert.Contains(t, string(body), `"autocomplete"`)
			assert.Contains(t, string(body), `"questions"`)
			return elasticResponse(http.StatusOK, `{"acknowledged":true}`), nil
		})

		assert.NoError(t, service.EnsureIndex(context.Background()))
	})

	t.Run("creation rejected", func(t *testing.T) {
		service := setupTestService(t, func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodHead {
				return elasticResponse(http.StatusNotFound, ``), nil
			}
			return elasticResponse(http.StatusBadRequest, `{"error":"resource_already_exists_exception"}`), nil
		})

		assert.ErrorIs(t, service.EnsureIndex(context.Background()), myErr.ErrIndexing)
	})
}
