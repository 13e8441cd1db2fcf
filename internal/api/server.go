package api

import (
	"context"
	"log"

	"backend/internal/app/config"
	"backend/internal/app/dsn"
	"backend/internal/app/handler"
	"backend/internal/app/middleware"
	"backend/internal/app/notify"
	"backend/internal/app/redis"
	"backend/internal/app/repository"
	"backend/internal/app/storage"
	"backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("config init failed: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("repository init failed: ", err)
	}

	// Redis опционален: без него нет blacklist и страничного кэша
	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Error("redis init failed, blacklist and page cache disabled: ", err)
		redisClient = nil
	}

	// MinIO опционален: без него отключена загрузка фото клиентов
	var minioClient *storage.MinIOClient
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(cfg.MinIO)
		if err != nil {
			logrus.Warn("minio init failed, image upload disabled: ", err)
			minioClient = nil
		}
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(repo, minioClient, notify.NewLogNotifier(), authHandler)

	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h.RegisterAPIRoutes(r, authMiddleware, cacheMiddleware, cfg.Cache.PageTTL)
	handler.RegisterSwagger(r)

	app := pkg.NewApp(cfg, r)
	app.RunApp()

	log.Println("Server down")
}
