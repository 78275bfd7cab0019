package main

import (
	"fmt"

	"medtracker/internal/app/config"
	"medtracker/internal/app/dsn"
	"medtracker/internal/app/handler"
	"medtracker/internal/app/pkg/auth"
	"medtracker/internal/app/pkg/storage"
	"medtracker/internal/app/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("application start")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	minioBase := fmt.Sprintf("http://%s:%s", cfg.MinIOHost, cfg.MinIOPort)
	var objStore handler.ObjectStorage
	st, err := storage.NewMinIO(
		fmt.Sprintf("%s:%s", cfg.MinIOHost, cfg.MinIOPort),
		cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket,
		false, minioBase,
	)
	if err != nil {
		// images are optional, the API works without them
		log.Warnf("minio unavailable, image upload disabled: %v", err)
	} else {
		objStore = st
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)
	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis error: %v", err)
	}
	defer sessionSvc.Close()

	router := gin.Default()
	h := handler.NewHandler(repo, cfg, objStore, jwtSvc, sessionSvc)
	h.RegisterHandler(router)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.Infof("listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
