package connection

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"authapi/config"
	authcontroller "authapi/controller/auth"
	usercontroller "authapi/controller/user"
	"authapi/logging"
	"authapi/middleware"
	"authapi/repository"
	"authapi/services"
)

// NewRouter wires the whole graph once: repository → services → gate →
// controllers. Construction is explicit so every component receives its
// collaborators as arguments.
func NewRouter(cfg *config.Config, logger logging.Logger) (*gin.Engine, error) {
	db, err := Database(cfg)
	if err != nil {
		return nil, err
	}

	tokenCache, err := Cache(cfg, logger)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewGormUserRepository(db)
	jwtService := services.NewJwtService(cfg)
	blacklistService := services.NewTokenBlacklistService(tokenCache)
	authService := services.NewAuthService(userRepo, jwtService, blacklistService, logger)
	userService := services.NewUserService(userRepo)
	gate := middleware.NewTokenValidationMiddleware(jwtService, blacklistService, logger, middleware.DefaultPublicPaths)

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(gate.Handler())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authcontroller.AuthController(router, authService)
	usercontroller.UserController(router, userService)

	return router, nil
}

func StartServer(cfg *config.Config, logger logging.Logger) error {
	router, err := NewRouter(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info(context.Background(), "starting server", "port", cfg.Port)
	return router.Run(":" + cfg.Port)
}
