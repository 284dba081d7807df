package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authapi/dto"
	"authapi/middleware"
	apperrors "authapi/pkg/errors"
	"authapi/services"
)

func UserController(router *gin.Engine, userService *services.UserService) {
	routes := router.Group("/users")
	{
		routes.GET("", func(c *gin.Context) {
			GetAllUsers(c, userService)
		})
		routes.GET("/me", func(c *gin.Context) {
			GetMe(c, userService)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetUserByID(c, userService)
		})
		routes.POST("", func(c *gin.Context) {
			CreateUser(c, userService)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateUser(c, userService)
		})
		routes.DELETE("/me", func(c *gin.Context) {
			DeleteMe(c, userService)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteUser(c, userService)
		})
	}
}

func GetAllUsers(c *gin.Context, userService *services.UserService) {
	users, err := userService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUserByID(c *gin.Context, userService *services.UserService) {
	user, err := userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.JSON(http.StatusOK, user)
}

func GetMe(c *gin.Context, userService *services.UserService) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		return
	}

	user, err := userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.JSON(http.StatusOK, user)
}

func CreateUser(c *gin.Context, userService *services.UserService) {
	var request dto.UserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := userService.CreateUser(c.Request.Context(), request); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.Status(http.StatusCreated)
}

func UpdateUser(c *gin.Context, userService *services.UserService) {
	var request dto.UserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := userService.UpdateUser(c.Request.Context(), c.Param("id"), request); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteUser(c *gin.Context, userService *services.UserService) {
	if err := userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.Status(http.StatusNoContent)
}

func DeleteMe(c *gin.Context, userService *services.UserService) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		return
	}

	if err := userService.DeleteUser(c.Request.Context(), userID); err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"message": apperrors.Message(err)})
		return
	}
	c.Status(http.StatusNoContent)
}
