package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/locker"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/progress"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-autopilot-api/internal/api"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/scheduler"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/reconciling"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/scheduling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	scheduleRepo := repository.NewScheduleRepository(pgConn)

	// Clientes Redis separados para os locks e para as mensagens de progresso
	lockClient := redisClient(ctx, cfg.Redis, cfg.Redis.LockDB)
	defer lockClient.Close()

	streamClient := redisClient(ctx, cfg.Redis, cfg.Redis.StreamDB)
	defer streamClient.Close()

	accountLocker := locker.NewRedisLocker(lockClient)
	progressSink := progress.NewRedisSink(streamClient, cfg.BusinessLocation())

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	statusUpdater := reconciling.NewStatusUpdater(
		metaIntegrator,
		cfg.Reconciler.UpdateMaxAttempts,
		time.Duration(cfg.Reconciler.VerifyDelaySeconds)*time.Second,
	)

	reconcilerService := reconciling.NewService(
		cfg,
		scheduleRepo,
		metaIntegrator,
		statusUpdater,
		accountLocker,
		progressSink,
	)

	schedulingService := scheduling.NewService(scheduleRepo, progressSink)

	reconcilerSyncService := scheduler.NewReconcilerSyncService(
		scheduleRepo,
		reconcilerService,
		cfg,
	)

	// Inicia o agendador em background
	if err := reconcilerSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconciliação de campanhas")
	} else {
		logrus.Info("Agendador de reconciliação de campanhas iniciado com sucesso")
	}

	server, err := api.New(cfg, schedulingService, reconcilerSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisClient cria um cliente Redis apontando para o banco informado
func redisClient(ctx context.Context, redisConfig config.Redis, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}

	logrus.WithField("db", db).Info("Conexão com Redis estabelecida com sucesso")
	return client
}
