package auth_test

import (
	"net/http"
	"testing"

	"github.com/minjikang/book-community/go-api-server/internal/auth"
	"github.com/minjikang/book-community/go-api-server/internal/member"
	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
	"github.com/minjikang/book-community/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *testutil.MockTokenManager) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, memberRepo, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, mockTokenManager
}

func validJoinRequest() auth.JoinRequest {
	return auth.JoinRequest{
		LoginID:          "bookworm",
		Password:         "password123",
		Email:            "bookworm@example.com",
		Phone:            "01012345678",
		Gender:           "female",
		Nickname:         "책벌레",
		BirthDate:        "1995.03.14",
		MarketingConsent: true,
	}
}

func TestJoin_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)

	// When: Execute join request
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/join",
		Body:   validJoinRequest(),
	})

	// Then: Verify response
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestJoin_DuplicateEmail(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)

	firstRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/join",
		Body:   validJoinRequest(),
	})
	require.Equal(t, http.StatusCreated, firstRecorder.Code)

	// When: Try to join again with the same email, different login id
	duplicate := validJoinRequest()
	duplicate.LoginID = "bookworm2"

	duplicateRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/join",
		Body:   duplicate,
	})

	// Then: Verify error response
	assert.Equal(t, http.StatusConflict, duplicateRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicateRecorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
}

func TestJoin_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)

	testCases := []struct {
		name  string
		strip string
	}{
		{name: "Missing member_id", strip: "member_id"},
		{name: "Missing password", strip: "password"},
		{name: "Missing member_email", strip: "member_email"},
		{name: "Missing member_phone", strip: "member_phone"},
		{name: "Missing member_nickname", strip: "member_nickname"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := map[string]interface{}{
				"member_id":       "bookworm",
				"password":        "password123",
				"member_email":    "bookworm@example.com",
				"member_phone":    "01012345678",
				"member_nickname": "책벌레",
			}
			delete(body, tc.strip)

			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/join",
				Body:   body,
			})

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestJoin_ValidationError_InvalidEmail(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)

	testCases := []struct {
		name  string
		email string
	}{
		{name: "No @ delimiter", email: "invalid-email-format"},
		{name: "Hangul in email", email: "한글@example.com"},
		{name: "Empty local part", email: "@example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := validJoinRequest()
			request.Email = tc.email

			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/join",
				Body:   request,
			})

			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}

func TestJoin_ValidationError_InvalidPhone(t *testing.T) {
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)

	request := validJoinRequest()
	request.Phone = "010-1234-5678" // 하이픈 불허: 숫자 11자리만

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/join",
		Body:   request,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin_Success(t *testing.T) {
	// Given: a joined member
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)
	router.POST("/api/v1/auth/login", authHandler.Login)

	joinRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/join",
		Body:   validJoinRequest(),
	})
	require.Equal(t, http.StatusCreated, joinRecorder.Code)

	// When: login with the same credentials
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "bookworm@example.com",
			Password: "password123",
		},
	})

	// Then: tokens are issued
	require.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "mock-access-token", response.AccessToken)
	assert.Equal(t, "mock-refresh-token", response.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/join", authHandler.Join)
	router.POST("/api/v1/auth/login", authHandler.Login)

	joinRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/join",
		Body:   validJoinRequest(),
	})
	require.Equal(t, http.StatusCreated, joinRecorder.Code)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Email:    "bookworm@example.com",
			Password: "wrongpassword",
		},
	})

	// 이메일 존재 여부를 노출하지 않는 동일 응답
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}
