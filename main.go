package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"legalease/config"
	_ "legalease/docs"
	"legalease/internal/events"
	"legalease/internal/locker"
	"legalease/internal/repository"
	"legalease/internal/service"
	"legalease/internal/storage"
	"legalease/internal/transport/rest"
	"legalease/pkg/auth"
	"legalease/pkg/database"
	"legalease/pkg/logger"
)

// @title LegalEase API
// @version 1.0
// @description Legal consultation marketplace: lawyer availability, profiles and cases.

// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := initRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer closeRepos()

	slotLocker, closeLocker, err := initLocker(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize slot locker", zap.String("driver", cfg.LockDriver), zap.Error(err))
	}
	defer closeLocker()

	var (
		fileStorage storage.FileStorage
		memFiles    *storage.Memory
	)
	if cfg.S3.Endpoint != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			log.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
		fileStorage = s3Storage
		log.Info("S3 storage initialized", zap.String("endpoint", cfg.S3.Endpoint))
	} else {
		log.Warn("S3 storage is not configured, files are kept in memory")
		memFiles = storage.NewMemory("http://localhost:" + cfg.HTTP.Port + "/files")
		fileStorage = memFiles
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitMQ(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, log)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		publisher = rabbit
	} else {
		log.Warn("RABBITMQ_URL is empty, domain events are dropped")
	}
	defer publisher.Close()

	services := service.NewServices(service.Deps{
		Repos:       repos,
		Logger:      log,
		Config:      cfg,
		FileStorage: fileStorage,
		Locker:      slotLocker,
		Publisher:   publisher,
		Tokens:      auth.NewTokenManager(cfg.JWT.SigningKey, cfg.JWT.TokenTTL),
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler := rest.NewHandler(services, log, cfg)
	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	if memFiles != nil {
		router.GET("/files/*key", func(c *gin.Context) {
			data, err := memFiles.Get(c.Request.Context(), strings.TrimPrefix(c.Param("key"), "/"))
			if err != nil {
				c.Status(http.StatusNotFound)
				return
			}
			c.Data(http.StatusOK, http.DetectContentType(data), data)
		})
	}

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", srv.Addr), zap.String("db", cfg.DBDriver))

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

func initRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger) (*repository.Repositories, func(), error) {
	switch cfg.DBDriver {
	case config.DBDriverPostgres:
		db, err := database.NewPostgresDB(ctx, cfg.Postgres, log)
		if err != nil {
			return nil, nil, err
		}

		log.Info("running database migrations")
		if err := database.RunMigrations(ctx, db, cfg.HTTP.MigrationsPath, log); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("migrations applied")

		return repository.NewPostgresRepositories(db), db.Close, nil

	case config.DBDriverMongo:
		client, err := database.NewMongoDB(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, nil, err
		}

		db := client.Database(cfg.Mongo.DBName)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}

		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn("failed to disconnect from MongoDB", zap.Error(err))
			}
		}
		return repository.NewMongoRepositories(db), closeFn, nil

	default:
		log.Warn("using in-memory storage, data is lost on restart")
		return repository.NewMemoryRepositories(), func() {}, nil
	}
}

func initLocker(ctx context.Context, cfg *config.Config, log *zap.Logger) (locker.Locker, func(), error) {
	if cfg.LockDriver != config.LockDriverRedis {
		return locker.NewLocal(), func() {}, nil
	}

	client, err := database.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close Redis client", zap.Error(err))
		}
	}
	return locker.NewRedis(client, cfg.Redis.LockTTL, log), closeFn, nil
}
