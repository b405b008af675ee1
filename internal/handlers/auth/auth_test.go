package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coinkeeper/internal/dto"
	"github.com/GlebRadaev/coinkeeper/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestIssueTokenHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.TokenResponseDTO
	}{
		{
			name: "Issues plain token",
			body: `{"caller_id":1}`,
			prepareMock: func() {
				service.EXPECT().IssueToken(gomock.Any(), int64(1), "").Return("token", false, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.TokenResponseDTO{Token: "token", IsAdmin: false},
		},
		{
			name: "Issues admin token",
			body: `{"caller_id":1,"admin_secret":"hunter2"}`,
			prepareMock: func() {
				service.EXPECT().IssueToken(gomock.Any(), int64(1), "hunter2").Return("admin-token", true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.TokenResponseDTO{Token: "admin-token", IsAdmin: true},
		},
		{
			name:          "Invalid request body",
			body:          `{"caller_id":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Invalid caller id",
			body: `{"caller_id":0}`,
			prepareMock: func() {
				service.EXPECT().IssueToken(gomock.Any(), int64(0), "").Return("", false, authservice.ErrInvalidCaller)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "caller id must be positive",
		},
		{
			name: "Wrong admin secret",
			body: `{"caller_id":1,"admin_secret":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().IssueToken(gomock.Any(), int64(1), "wrong").Return("", false, authservice.ErrInvalidSecret)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "invalid admin secret",
		},
		{
			name: "Internal server error",
			body: `{"caller_id":1}`,
			prepareMock: func() {
				service.EXPECT().IssueToken(gomock.Any(), int64(1), "").Return("", false, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/token", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.IssueToken(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != nil {
				var body dto.TokenResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
