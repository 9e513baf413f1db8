package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"feedback-main/internal/form"
	"feedback-main/internal/middleware"
	"feedback-main/internal/mocks"
	"feedback-main/internal/session"
	esDoc "feedback-main/internal/types/elastic"
	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/form"

	"github.com/go-playground/assert"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	testFormID = "6f1c1d7e-27a4-4f3c-9d4c-1b8e2a9f0c11"
	ownerID    = int64(7)
	strangerID = int64(8)
)

type testEnv struct {
	router *mux.Router
	forms  *mocks.MockFormRepo
	index  *mocks.MockFormIndex
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		forms: mocks.NewMockFormRepo(ctrl),
		index: mocks.NewMockFormIndex(ctrl),
	}
	h := NewFormHandler(zap.NewNop().Sugar(), env.forms, env.index)

	r := mux.NewRouter()
	r.HandleFunc("/api/forms/", h.List).Methods("GET")
	r.HandleFunc("/api/forms/", h.Create).Methods("POST")
	r.HandleFunc("/api/forms/search", h.Search).Methods("GET")
	r.HandleFunc("/api/forms/{id}/", h.Get).Methods("GET")
	r.HandleFunc("/api/forms/{id}/", h.Update).Methods("PUT")
	r.HandleFunc("/api/forms/{id}/", h.Patch).Methods("PATCH")
	r.HandleFunc("/api/forms/{id}/", h.Delete).Methods("DELETE")
	r.HandleFunc("/api/forms/{id}/questions/", h.Questions).Methods("GET")
	env.router = r

	return env
}

// do выполняет запрос, userID == 0 означает анонимный запрос
func (e *testEnv) do(method, path, body string, userID int64) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if userID != 0 {
		req = req.WithContext(middleware.ContextWithSession(req.Context(), &session.Session{ID: "s", UserID: userID}))
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body myErr.ErrorServer
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body.Message
}

func ownedForm() *form.FeedbackForm {
	return &form.FeedbackForm{
		ID:        testFormID,
		Title:     "Satisfaction",
		CreatorID: ownerID,
		IsActive:  true,
		Questions: []form.Question{{ID: 1, Text: "Rate us", QuestionType: "text", Order: 1}},
	}
}

func TestFormHandler_List(t *testing.T) {
	env := newTestEnv(t)
	env.forms.EXPECT().List(gomock.Any()).Return([]*form.FeedbackForm{ownedForm()}, nil)

	rr := env.do(http.MethodGet, "/api/forms/", "", 0)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []form.FeedbackForm
	assert.Equal(t, nil, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Rate us", got[0].Questions[0].Text)
}

func TestFormHandler_Create(t *testing.T) {
	validBody := `{"title":"Satisfaction","description":"d","questions":[
		{"text":"Rate us","question_type":"text","order":1},
		{"text":"Recommend?","question_type":"multiple_choice","options":["yes","no"],"order":2}
	]}`

	tests := []struct {
		name           string
		body           string
		userID         int64
		mockBehavior   func(env *testEnv)
		expectedStatus int
		expectedError  string
	}{
		{
			name:   "Success binds creator to caller",
			body:   validBody,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().
					Create(gomock.Any(), ownerID, gomock.AssignableToTypeOf(types.CreateForm{})).
					DoAndReturn(func(_ interface{}, creatorID int64, cf types.CreateForm) (*form.FeedbackForm, error) {
						f := ownedForm()
						f.CreatorID = creatorID
						return f, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Anonymous",
			body:           validBody,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid JSON",
			body:           `{`,
			userID:         ownerID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  myErr.ErrInvalidJSONPayload.Error(),
		},
		{
			name:           "Missing title",
			body:           `{"questions":[]}`,
			userID:         ownerID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "title: this field is required",
		},
		{
			name:           "Blank title",
			body:           `{"title":"   ","questions":[]}`,
			userID:         ownerID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "title: must not be blank",
		},
		{
			name:           "Unknown question type",
			body:           `{"title":"t","questions":[{"text":"q","question_type":"rating"}]}`,
			userID:         ownerID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "questions[0].question_type: must be one of: text multiple_choice",
		},
		{
			name:           "Multiple choice without options",
			body:           `{"title":"t","questions":[{"text":"q","question_type":"multiple_choice"}]}`,
			userID:         ownerID,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "questions[0].options: must be a list for multiple_choice questions",
		},
		{
			name:   "Repository failure",
			body:   validBody,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().Create(gomock.Any(), ownerID, gomock.Any()).Return(nil, myErr.ErrDBInternal)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  myErr.ErrInternal.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.mockBehavior != nil {
				tt.mockBehavior(env)
			}

			rr := env.do(http.MethodPost, "/api/forms/", tt.body, tt.userID)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorOf(t, rr))
			}
			if rr.Code == http.StatusCreated {
				var got form.FeedbackForm
				assert.Equal(t, nil, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, ownerID, got.CreatorID)
			}
		})
	}
}

func TestFormHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockBehavior   func(env *testEnv)
		expectedStatus int
	}{
		{
			name: "Active form",
			path: "/api/forms/" + testFormID + "/",
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Inactive or missing",
			path: "/api/forms/" + testFormID + "/",
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(nil, myErr.ErrFormNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Not a uuid",
			path:           "/api/forms/42/",
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "Database error",
			path: "/api/forms/" + testFormID + "/",
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(nil, myErr.ErrDBInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.mockBehavior != nil {
				tt.mockBehavior(env)
			}

			rr := env.do(http.MethodGet, tt.path, "", 0)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestFormHandler_Update(t *testing.T) {
	path := "/api/forms/" + testFormID + "/"

	tests := []struct {
		name           string
		method         string
		body           string
		userID         int64
		mockBehavior   func(env *testEnv)
		expectedStatus int
	}{
		{
			name:   "PUT by owner",
			method: http.MethodPut,
			body:   `{"title":"Renamed","description":"new"}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				title, description := "Renamed", "new"
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
				env.forms.EXPECT().
					Update(gomock.Any(), testFormID, types.UpdateForm{Title: &title, Description: &description}).
					Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "PUT without title",
			method: http.MethodPut,
			body:   `{"description":"new"}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "PATCH deactivates",
			method: http.MethodPatch,
			body:   `{"is_active":false}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				inactive := false
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
				env.forms.EXPECT().
					Update(gomock.Any(), testFormID, types.UpdateForm{IsActive: &inactive}).
					Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "PATCH with empty title",
			method: http.MethodPatch,
			body:   `{"title":""}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "PUT with blank title",
			method: http.MethodPut,
			body:   `{"title":"  "}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Not the owner",
			method: http.MethodPatch,
			body:   `{"title":"Hijacked"}`,
			userID: strangerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Anonymous",
			method:         http.MethodPut,
			body:           `{"title":"x"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Inactive form",
			method: http.MethodPut,
			body:   `{"title":"x"}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(nil, myErr.ErrFormNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Deactivated concurrently",
			method: http.MethodPatch,
			body:   `{"title":"x"}`,
			userID: ownerID,
			mockBehavior: func(env *testEnv) {
				env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
				env.forms.EXPECT().Update(gomock.Any(), testFormID, gomock.Any()).Return(nil, myErr.ErrFormNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.mockBehavior != nil {
				tt.mockBehavior(env)
			}

			rr := env.do(tt.method, path, tt.body, tt.userID)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestFormHandler_Delete(t *testing.T) {
	path := "/api/forms/" + testFormID + "/"

	t.Run("Owner deletes, index cleanup failure is ignored", func(t *testing.T) {
		env := newTestEnv(t)
		env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
		env.forms.EXPECT().Delete(gomock.Any(), testFormID).Return(nil)
		env.index.EXPECT().DeleteForm(gomock.Any(), testFormID).Return(errors.New("es down"))

		rr := env.do(http.MethodDelete, path, "", ownerID)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Stranger is forbidden", func(t *testing.T) {
		env := newTestEnv(t)
		env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)

		rr := env.do(http.MethodDelete, path, "", strangerID)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, myErr.ErrForbidden.Error(), errorOf(t, rr))
	})

	t.Run("Already gone", func(t *testing.T) {
		env := newTestEnv(t)
		env.forms.EXPECT().GetActiveByID(gomock.Any(), testFormID).Return(ownedForm(), nil)
		env.forms.EXPECT().Delete(gomock.Any(), testFormID).Return(myErr.ErrFormNotFound)

		rr := env.do(http.MethodDelete, path, "", ownerID)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFormHandler_Questions(t *testing.T) {
	env := newTestEnv(t)
	env.forms.EXPECT().Questions(gomock.Any(), testFormID).Return([]form.Question{
		{ID: 2, Text: "Rate us", Order: 1},
		{ID: 1, Text: "Recommend?", Order: 2},
	}, nil)

	rr := env.do(http.MethodGet, "/api/forms/"+testFormID+"/questions/", "", 0)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []form.Question
	assert.Equal(t, nil, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "Rate us", got[0].Text)
	assert.Equal(t, "Recommend?", got[1].Text)
}

func TestFormHandler_Search(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		env := newTestEnv(t)
		env.index.EXPECT().SearchForms(gomock.Any(), "satisfaction").
			Return([]esDoc.FormDoc{{ID: testFormID, Title: "Satisfaction"}}, nil)

		rr := env.do(http.MethodGet, "/api/forms/search?q=satisfaction", "", 0)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []esDoc.FormDoc
		assert.Equal(t, nil, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, testFormID, got[0].ID)
	})

	t.Run("Missing query", func(t *testing.T) {
		env := newTestEnv(t)
		rr := env.do(http.MethodGet, "/api/forms/search", "", 0)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Search backend failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.index.EXPECT().SearchForms(gomock.Any(), "x").Return(nil, myErr.ErrSearch)

		rr := env.do(http.MethodGet, "/api/forms/search?q=x", "", 0)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
