// Package app wires storage, generation and HTTP into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocal-feed/internal/audio"
	httpController "vocal-feed/internal/controller/http"
	"vocal-feed/internal/repo/cache"
	"vocal-feed/internal/repo/persistent"
	"vocal-feed/internal/tts"
	"vocal-feed/internal/usecase"
	"vocal-feed/internal/worker"
	"vocal-feed/pkg/blob"
	redisCache "vocal-feed/pkg/cache"
	"vocal-feed/pkg/config"
	"vocal-feed/pkg/database"
	"vocal-feed/pkg/jwt"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/metrics"
	"vocal-feed/pkg/objectstore"
	"vocal-feed/pkg/queue"
	"vocal-feed/pkg/s3"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	natsConn    *nats.Conn
	ttsWorker   *worker.TTSWorker
	server      *http.Server

	workerCtx    context.Context
	cancelWorker context.CancelFunc
}

// NewApp opens every backing service. Redis and RabbitMQ are optional and
// their absence only disables rate limiting and background generation.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}
	a.db = db

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db); err != nil {
			a.close()
			return nil, err
		}
		log.Info("Database migrations applied")
	}

	if cfg.RedisHost != "" {
		redisClient, err := redisCache.NewRedisClient(cfg)
		if err != nil {
			log.Warn("Redis unavailable, continuing without rate limiting and post cache: %v", err)
		} else {
			a.redisClient = redisClient
		}
	}

	store, err := a.openAudioStore()
	if err != nil {
		a.close()
		return nil, err
	}

	enricher, err := tts.LoadEnricher(cfg.TTSPresetsPath)
	if err != nil {
		a.close()
		return nil, err
	}

	var engine tts.Engine
	if cfg.TTSAPIKey == "" {
		log.Warn("ELEVENLABS_API_KEY not set, generating silent placeholder audio")
		engine = tts.StubEngine{}
	} else {
		engine = tts.NewHTTPEngine(cfg.TTSAPIURL, cfg.TTSAPIKey, cfg.TTSModelID, cfg.TTSTimeout, cfg.TTSRatePerMin)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	audioCache := audio.NewCache(store, engine, enricher, cfg.AudioURLBase, metrics.NewCollector(registry), log)

	var publisher usecase.JobPublisher
	if cfg.RabbitMQHost != "" {
		queueClient, err := queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Warn("RabbitMQ unavailable, audio will be generated inline: %v", err)
		} else {
			a.queueClient = queueClient
			publisher = queueClient
		}
	}

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	userRepo := persistent.NewUserRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	reactionRepo := persistent.NewReactionRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)

	// Initialize use cases
	jwtService := jwt.NewServiceWithTTL(cfg.JWTSecret, cfg.JWTTTL)
	postUseCase := usecase.NewPostUseCase(postRepo, audioCache, publisher, cache.NewPostCache(a.redisClient), log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, log)
	reactionUseCase := usecase.NewReactionUseCase(reactionRepo, postRepo, log)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, postRepo, log)

	if a.queueClient != nil {
		a.ttsWorker = worker.NewTTSWorker(postUseCase, a.queueClient, log)
	}

	// Initialize HTTP handlers
	handlers := Handlers{
		Post:       httpController.NewPostHandler(postUseCase, log),
		TTS:        httpController.NewTTSHandler(postUseCase, audioCache, log),
		Auth:       httpController.NewAuthHandler(authUseCase, log),
		Engagement: httpController.NewEngagementHandler(commentUseCase, reactionUseCase, interactionUseCase, log),
	}

	router := NewRouter(RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		JWTService:  jwtService,
		Redis:       a.redisClient,
		Gatherer:    registry,
		Logger:      log,
	}, handlers)

	a.server = &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.workerCtx, a.cancelWorker = context.WithCancel(context.Background())

	return a, nil
}

func (a *App) openAudioStore() (blob.Store, error) {
	switch a.cfg.AudioBackend {
	case "fs", "":
		store, err := blob.NewFileStore(a.cfg.AudioDir)
		if err != nil {
			return nil, err
		}
		a.log.Info("Audio artifacts stored in %s", a.cfg.AudioDir)
		return store, nil
	case "s3":
		client, err := s3.NewClient(a.cfg)
		if err != nil {
			return nil, err
		}
		a.log.Info("Audio artifacts stored in bucket %s", a.cfg.S3BucketName)
		return client, nil
	case "nats":
		nc, err := nats.Connect(a.cfg.NATSURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		a.natsConn = nc
		js, err := nc.JetStream()
		if err != nil {
			return nil, fmt.Errorf("failed to open JetStream: %w", err)
		}
		store, err := objectstore.New(js, a.cfg.NATSAudioBucket)
		if err != nil {
			return nil, err
		}
		a.log.Info("Audio artifacts stored in NATS object store %s", a.cfg.NATSAudioBucket)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown AUDIO_BACKEND %q (want fs, s3 or nats)", a.cfg.AudioBackend)
	}
}

// Run starts the queue worker and the HTTP server without blocking.
func (a *App) Run() {
	if a.ttsWorker != nil {
		if err := a.ttsWorker.Start(a.workerCtx); err != nil {
			a.log.Error("Error starting TTS queue worker: %v", err)
		}
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Vocal feed API starting on port %s", a.cfg.ServerPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()
}

// Wait blocks until SIGINT or SIGTERM.
func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down vocal feed API...")
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
	}
	a.close()
	a.log.Info("Vocal feed API exited")
	return err
}

func (a *App) close() {
	if a.cancelWorker != nil {
		a.cancelWorker()
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.natsConn != nil {
		a.natsConn.Close()
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close database connection
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}
}
