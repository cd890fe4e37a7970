package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"openhours-service/internal/app/config"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/delivery/http/routers"
	"openhours-service/internal/app/drivers/database"
	"openhours-service/internal/app/drivers/logger"
	"openhours-service/internal/app/drivers/messaging"
	"openhours-service/internal/app/drivers/storage"
	"openhours-service/internal/app/services/core/businesses"
	"openhours-service/internal/app/services/core/reload"
	"openhours-service/internal/app/services/shared/locker"
	redisRepository "openhours-service/internal/app/services/shared/redis"
	"openhours-service/internal/app/services/shared/reloadqueue"
	minioStorage "openhours-service/internal/app/services/shared/storage"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"
	"openhours-service/internal/pkg/metrics"
	"openhours-service/internal/pkg/utils"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	internalConfig, driverConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building logger: %v\n", err)
		os.Exit(1)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	err = connectDrivers(connectCtx, bootstrap)
	cancelConnect()
	if err != nil {
		log.Fatal("Error connecting drivers", zap.Error(err))
	}

	appCtx, cancelApp := context.WithCancel(context.Background())
	defer cancelApp()

	err = bootstrapingTheApp(appCtx, bootstrap, location)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	cancelApp()
	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func connectDrivers(ctx context.Context, bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig
	log := bootstrap.Logger

	if driverConfig.Redis.Enabled {
		client, err := database.NewRedisClient(ctx, driverConfig)
		if err != nil {
			return err
		}
		bootstrap.Redis = client
		log.Info("Successfully connected to Redis")
	}

	if internalConfig.Index.Source == constvars.IndexSourceMongo {
		client, err := database.NewMongoDB(ctx, driverConfig)
		if err != nil {
			return err
		}
		bootstrap.MongoDB = client
		log.Info("Successfully connected to MongoDB")
	}

	if driverConfig.Minio.Enabled {
		client, err := storage.NewMinio(ctx, driverConfig, internalConfig.Minio.BucketName)
		if err != nil {
			return err
		}
		bootstrap.Minio = client
		log.Info("Successfully connected to MinIO")
	}

	if driverConfig.RabbitMQ.Enabled {
		conn, err := messaging.NewRabbitMQ(driverConfig)
		if err != nil {
			return err
		}
		bootstrap.RabbitMQ = conn
		log.Info("Successfully connected to RabbitMQ")
	}

	return nil
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, location *time.Location) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger
	indexConfig := internalConfig.Index

	// Metrics
	appMetrics := metrics.New()

	// Shared
	var redisRepo contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepo = redisRepository.NewRedisRepository(bootstrap.Redis)
	}
	var objectStorage contracts.Storage
	if bootstrap.Minio != nil {
		objectStorage = minioStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Source
	var source contracts.BusinessSource
	switch indexConfig.Source {
	case constvars.IndexSourceCSV:
		source = businesses.NewBusinessCSVSource(indexConfig.CSVPath, log)
	case constvars.IndexSourceMinio:
		source = businesses.NewBusinessMinioSource(objectStorage, internalConfig.Minio.BucketName, internalConfig.Minio.SourceObjectName, log)
	case constvars.IndexSourceMongo:
		source = businesses.NewBusinessMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.DBName)
	default:
		return exceptions.ErrUnknownIndexSource(nil, indexConfig.Source)
	}

	// Snapshot stores, fastest first
	var snapshotStores []contracts.SnapshotStore
	if redisRepo != nil {
		ttl := time.Duration(indexConfig.SnapshotTTLInMinutes) * time.Minute
		snapshotStores = append(snapshotStores, businesses.NewSnapshotRedisStore(redisRepo, ttl, log))
	}
	if indexConfig.ArchiveSnapshots && objectStorage != nil {
		snapshotStores = append(snapshotStores, businesses.NewSnapshotMinioStore(objectStorage, internalConfig.Minio.BucketName, log))
	}

	// Usecase
	businessUsecase := businesses.NewBusinessUsecase(source, snapshotStores, appMetrics, log, businesses.UsecaseConfig{
		Location:     location,
		Strict:       indexConfig.Strict,
		StoreTimeout: time.Duration(indexConfig.SnapshotStoreTimeoutInSeconds) * time.Second,
	})

	reloadTimeout := time.Duration(indexConfig.ReloadTimeoutInSeconds) * time.Second
	startupCtx := utils.WithRequestID(ctx)

	if indexConfig.WarmStart {
		warmCtx, cancel := context.WithTimeout(startupCtx, reloadTimeout)
		loaded, err := businessUsecase.WarmStart(warmCtx)
		cancel()
		if err != nil {
			log.Warn("Warm start could not read every snapshot store", zap.Error(err))
		}
		log.Info("Warm start finished", zap.Bool("loaded", loaded))
	}

	reloadCtx, cancel := context.WithTimeout(startupCtx, reloadTimeout)
	report, err := businessUsecase.Reload(reloadCtx, constvars.ReloadTriggerStartup)
	cancel()
	if err != nil {
		if indexConfig.Strict && !businessUsecase.Status(ctx).Ready {
			return fmt.Errorf("initial index build failed: %w", err)
		}
		log.Error("Initial index build failed, serving without a fresh index", zap.Error(err))
	} else {
		log.Info("Initial index built",
			zap.String(constvars.LoggingSourceKey, report.Source),
			zap.Int(constvars.LoggingBusinessCountKey, report.Indexed),
			zap.Int(constvars.LoggingFailureCountKey, len(report.Failures)),
		)
	}

	// Reload worker
	if indexConfig.ReloadCronSpec != "" {
		var lockService contracts.LockerService
		if redisRepo != nil {
			lockService = locker.NewLockService(redisRepo, log)
		}
		worker := reload.NewWorker(
			log,
			businessUsecase,
			lockService,
			indexConfig.ReloadCronSpec,
			reloadTimeout,
			time.Duration(indexConfig.LeaderLockTTLInSeconds)*time.Second,
		)
		worker.Start(ctx)
		bootstrap.WorkerStop = worker.Stop
	}

	// Reload queue
	var reloadQueue contracts.ReloadQueue
	if bootstrap.RabbitMQ != nil {
		queue, err := reloadqueue.NewService(bootstrap.RabbitMQ, log, indexConfig.ReloadQueue, internalConfig.RabbitMQ.PrefetchCount)
		if err != nil {
			return err
		}
		reloadQueue = queue

		consumer := reload.NewConsumer(log, queue, businessUsecase, reloadTimeout)
		err = consumer.Start(ctx)
		if err != nil {
			return err
		}
		bootstrap.ConsumerStop = func() {
			consumer.Stop()
			_ = queue.Close()
		}
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig, appMetrics)

	// Controllers
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	businessController := businesses.NewBusinessController(log, businessUsecase, requestTimeout)
	indexController := businesses.NewIndexController(log, businessUsecase, reloadQueue, requestTimeout, reloadTimeout)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, businessController, indexController, appMetrics.Handler())
	return nil
}
