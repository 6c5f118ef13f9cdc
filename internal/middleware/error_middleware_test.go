package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/app/models/dto"
	"github.com/okan/courseatlas/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "course not found", err: apperrors.ErrCourseNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "professor not found", err: apperrors.ErrProfessorNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "no ratings", err: apperrors.ErrNoRatingsFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "syllabus not found", err: apperrors.ErrSyllabusNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "reddit link not found", err: apperrors.ErrRedditLinkNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "wrapped not found", err: fmt.Errorf("outer: %w", apperrors.ErrCourseNotFound), wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "invalid file type", err: apperrors.ErrInvalidFileType, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "file too large", err: apperrors.ErrFileTooLarge, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "validation failed", err: apperrors.ErrValidationFailed, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: 401, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "token expired", err: apperrors.ErrTokenExpired, wantStatus: 401, wantCode: dto.ErrorCodeExpiredToken},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: 403, wantCode: dto.ErrorCodeForbidden},
		{name: "conflict", err: apperrors.ErrResourceAlreadyExists, wantStatus: 409, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "unknown error", err: errors.New("boom"), wantStatus: 500, wantCode: dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}
