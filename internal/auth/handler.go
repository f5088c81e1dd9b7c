package auth

import (
	"github.com/gin-gonic/gin"
	sharedError "github.com/minjikang/book-community/go-api-server/internal/shared/error"
	"github.com/minjikang/book-community/go-api-server/internal/shared/handler"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Login(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(200, response)
}

func (a *AuthHandler) Join(c *gin.Context) {
	var request JoinRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	err := a.authService.Join(c.Request.Context(), &request)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}
	c.JSON(201, gin.H{})
}
