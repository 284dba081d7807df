package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"authapi/config"
	"authapi/connection"
	"authapi/logging"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewJSONLogger()
	if err := connection.StartServer(cfg, logger); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
