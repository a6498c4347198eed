package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/reminder-return-api/infrastructure/cache"
	"github.com/vfg2006/reminder-return-api/infrastructure/database/postgres"
	"github.com/vfg2006/reminder-return-api/infrastructure/observability"
	"github.com/vfg2006/reminder-return-api/infrastructure/repository"
	"github.com/vfg2006/reminder-return-api/infrastructure/source/history"
	"github.com/vfg2006/reminder-return-api/infrastructure/source/ledger"
	"github.com/vfg2006/reminder-return-api/internal/api"
	"github.com/vfg2006/reminder-return-api/internal/api/handler"
	"github.com/vfg2006/reminder-return-api/internal/config"
	"github.com/vfg2006/reminder-return-api/internal/domain"
	"github.com/vfg2006/reminder-return-api/internal/scheduler"
	"github.com/vfg2006/reminder-return-api/internal/usecases/authenticating"
	"github.com/vfg2006/reminder-return-api/internal/usecases/returning"
	"github.com/vfg2006/reminder-return-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	var (
		pgConn        *postgres.Connection
		historyLoader returning.HistoryLoader
		snapshotRepo  repository.ReturnSnapshotRepository
	)

	if cfg.Database.Enabled {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := pgConn.Migrate(); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}

		snapshotRepo = repository.NewReturnSnapshotRepository(pgConn)
	}

	switch cfg.Sources.HistorySource {
	case config.HistorySourcePostgres:
		historyLoader = history.NewPostgresLoader(pgConn)
	default:
		historyLoader = history.NewFileLoader(cfg.Sources.HistoryFile)
	}

	ledgerLoader := ledger.NewExcelLoader(cfg.Sources.SalesFile, cfg.Sources.SalesSheet)

	logrus.WithFields(logrus.Fields{
		"history_source": historyLoader.Source(),
		"sales_source":   ledgerLoader.Source(),
		"cache_ttl":      cfg.Cache.TTL.String(),
		"workers":        cfg.Analysis.Workers,
	}).Info("Fontes da análise de retorno configuradas")

	returnService := returning.NewService(cfg, historyLoader, ledgerLoader, metrics).WithCache(
		cache.New[*domain.SendHistory](cfg.Cache.TTL),
		cache.New[[]domain.SaleRecord](cfg.Cache.TTL),
	)

	authenticator := authenticating.NewService(cfg)

	// Sem banco o job fica fora do ar e a API responde 503 nas rotas dele
	var snapshotJob handler.CronJob
	if snapshotRepo != nil {
		snapshotSyncService := scheduler.NewReturnSnapshotSyncService(returnService, snapshotRepo, cfg)
		if err := snapshotSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de retornos")
		} else {
			logrus.Info("Agendador de consolidação de retornos iniciado com sucesso")
		}
		snapshotJob = snapshotSyncService
	}

	server, err := api.New(
		cfg,
		returnService,
		authenticator,
		metrics,
		snapshotRepo,
		snapshotJob,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
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
