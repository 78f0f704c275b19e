package main

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"health-agent/handler"
	"health-agent/internal/cache"
	"health-agent/internal/integrations/gemini"
	"health-agent/internal/integrations/paramstore"
	"health-agent/internal/logging"
	"health-agent/internal/repository"
	"health-agent/internal/session"
	"health-agent/internal/synthesis"
	"health-agent/internal/templates"
	"health-agent/internal/usecase"
)

func main() {
	ctx := context.Background()

	log, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// ---- Configuration (read only here) ----
	turnTable := mustEnv(log, "TURN_TABLE")
	paramPrefix := mustEnv(log, "PARAM_PREFIX")
	geminiModel := os.Getenv("GEMINI_MODEL")
	redisAddr := os.Getenv("REDIS_ADDR")
	maxAttempts := envInt("SYNTH_MAX_ATTEMPTS", 3)

	// ---- AWS SDK config ----
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal("failed to load AWS config", zap.Error(err))
	}

	// ---- Clients ----
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
	if err != nil {
		log.Fatal("failed to create SSM client", zap.Error(err))
	}
	turnLog, err := repository.New(awsdynamodb.NewFromConfig(cfg), turnTable)
	if err != nil {
		log.Fatal("failed to create turn log client", zap.Error(err))
	}

	// Shared Redis when configured, else a per-process map. Sessions are
	// best-effort either way.
	var cacheSvc cache.Service
	if redisAddr != "" {
		cacheSvc, err = cache.NewRedis(redis.NewClient(&redis.Options{Addr: redisAddr}))
		if err != nil {
			log.Fatal("failed to create redis cache", zap.Error(err))
		}
	} else {
		cacheSvc = cache.NewMemory()
	}

	sessions, err := session.New(cacheSvc)
	if err != nil {
		log.Fatal("failed to create session store", zap.Error(err))
	}

	oracle, err := gemini.NewClient(ssmClient, paramPrefix, geminiModel)
	if err != nil {
		log.Fatal("failed to create gemini client", zap.Error(err))
	}

	catalog := templates.NewStatic()
	engine, err := synthesis.New(oracle, catalog, log, synthesis.WithMaxAttempts(maxAttempts))
	if err != nil {
		log.Fatal("failed to create synthesis engine", zap.Error(err))
	}

	dialogue, err := usecase.NewDialogueService(sessions, turnLog, engine, catalog, log)
	if err != nil {
		log.Fatal("failed to create dialogue service", zap.Error(err))
	}

	h, err := handler.NewHandler(dialogue)
	if err != nil {
		log.Fatal("failed to create handler", zap.Error(err))
	}

	lambda.Start(h.Handle)
}

func mustEnv(log *zap.Logger, key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatal("required environment variable is not set", zap.String("key", key))
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
