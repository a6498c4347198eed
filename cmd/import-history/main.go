package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/reminder-return-api/infrastructure/database/postgres"
	"github.com/vfg2006/reminder-return-api/infrastructure/source/history"
	"github.com/vfg2006/reminder-return-api/internal/config"
	"github.com/vfg2006/reminder-return-api/pkg/log"
)

// Importa o historico_envios.json para a tabela send_history, preservando a ordem do arquivo
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	flags := pflag.NewFlagSet("import-history", pflag.ExitOnError)
	file := flags.String("file", cfg.Sources.HistoryFile, "arquivo JSON do histórico de envios")
	_ = flags.Parse(os.Args[1:])

	if !cfg.Database.Enabled {
		logrus.Fatal("DATABASE_ENABLED precisa ser true para importar o histórico")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.Migrate(); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrations")
	}

	loader := history.NewFileLoader(*file)
	sendHistory, err := loader.LoadHistory(ctx)
	if err != nil {
		logrus.WithError(err).WithField("file", loader.Source()).Fatal("Erro ao ler histórico de envios")
	}

	imported, err := history.Import(ctx, conn, sendHistory)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar histórico de envios")
	}

	logrus.WithFields(logrus.Fields{
		"file":     loader.Source(),
		"periods":  len(sendHistory.Periods()),
		"imported": imported,
	}).Info("Histórico de envios importado com sucesso")
}
