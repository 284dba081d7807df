package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authapi/dto"
	"authapi/middleware"
	apperrors "authapi/pkg/errors"
	"authapi/services"
)

func AuthController(router *gin.Engine, authService *services.AuthService) {
	router.POST("/auth/register", func(c *gin.Context) {
		Register(c, authService)
	})
	router.POST("/auth/login", func(c *gin.Context) {
		Login(c, authService)
	})
	router.POST("/auth/logout", func(c *gin.Context) {
		Logout(c, authService)
	})
}

func Register(c *gin.Context, authService *services.AuthService) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	response, err := authService.Register(c.Request.Context(), request.Name, request.Email, request.Password)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}

	c.JSON(http.StatusOK, response)
}

func Login(c *gin.Context, authService *services.AuthService) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	response, err := authService.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		// unknown email and wrong password both answer 400 with one message
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}

	c.JSON(http.StatusOK, response)
}

func Logout(c *gin.Context, authService *services.AuthService) {
	token := c.GetString(middleware.ContextToken)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token not found"})
		return
	}

	if err := authService.Logout(c.Request.Context(), token); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
