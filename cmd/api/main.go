package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/storage"
	"github.com/vfg2006/sales-report-api/internal/api"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-report-api/internal/usecases/rendering"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
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

	store, err := storage.NewArtifactStore(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o armazenamento de arquivos")
	}
	logrus.WithField("driver", cfg.Storage.Driver).Info("Armazenamento de arquivos configurado")

	sourceFileRepo := repository.NewSourceFileRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	renderer := rendering.NewRenderer(rendering.NewPDFBackend(rendering.NewChartPainter()))
	pipeline := reporting.NewPipeline(normalizing.NewNormalizer(), renderer)

	reportService := reporting.NewService(sourceFileRepo, reportRepo, store, pipeline, cfg.Upload)

	pdfRetentionService := scheduler.NewPDFRetentionService(reportService, cfg)
	if err := pdfRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de PDFs")
	} else {
		logrus.Info("Agendador de retenção de PDFs iniciado com sucesso")
	}

	server, err := api.New(cfg, pgConn, reportService, pdfRetentionService)
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
