package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tusharverma21/cloud-video-eraser/internal/config"
	"github.com/tusharverma21/cloud-video-eraser/internal/editjobs/repository"
	"github.com/tusharverma21/cloud-video-eraser/internal/ghostcut"
	"github.com/tusharverma21/cloud-video-eraser/internal/poller"
	"github.com/tusharverma21/cloud-video-eraser/internal/worker"
	"github.com/tusharverma21/cloud-video-eraser/pkg/db/aws"
	"github.com/tusharverma21/cloud-video-eraser/pkg/db/postgres"
	"github.com/tusharverma21/cloud-video-eraser/pkg/db/redis"
	"github.com/tusharverma21/cloud-video-eraser/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting submission worker")

	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yml"
	}
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}

	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	defer psqlDB.Close()

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	defer redisClient.Close()

	s3Client, presignClient, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Fatalf("could not connect to s3: %s", err)
	}

	jobsRepo := repository.NewEditJobsRepo(psqlDB)
	redisRepo := repository.NewEditJobsRedisRepo(redisClient)
	awsRepo := repository.NewAwsRepository(s3Client, presignClient)
	gcClient := ghostcut.NewClient(cfg, appLogger)
	jobPoller := poller.NewPoller(cfg, gcClient, jobsRepo, redisRepo, awsRepo, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := worker.NewWorker(cfg, appLogger, jobsRepo, redisRepo, awsRepo, gcClient, jobPoller)
	w.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit

	appLogger.Infof("shutting down workers")
	cancel()
	w.Wait()
}
