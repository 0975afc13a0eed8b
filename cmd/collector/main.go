package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/searchad-collector/infrastructure/database/postgres"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad"
	"github.com/vfg2006/searchad-collector/infrastructure/integrator/searchad/searchadclient"
	"github.com/vfg2006/searchad-collector/infrastructure/repository"
	"github.com/vfg2006/searchad-collector/internal/api"
	"github.com/vfg2006/searchad-collector/internal/config"
	"github.com/vfg2006/searchad-collector/internal/scheduler"
	"github.com/vfg2006/searchad-collector/internal/usecases/balance"
	"github.com/vfg2006/searchad-collector/internal/usecases/collecting"
	"github.com/vfg2006/searchad-collector/pkg/utils"
)

// app concentra as dependências montadas no boot, compartilhadas pelos
// subcomandos.
type app struct {
	cfg            *config.Config
	conn           *postgres.Connection
	collectService *collecting.Service
	balanceService *balance.Service
	collectSync    *scheduler.CollectSyncService
	bizmoneySync   *scheduler.BizmoneySyncService
}

func main() {
	configureLogger()

	rootCmd := &cobra.Command{
		Use:   "collector",
		Short: "Coletor de dados da API SearchAd para o warehouse",
	}

	rootCmd.AddCommand(serveCmd(), runCmd(), bizmoneyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serveCmd sobe os agendadores e a API operacional.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia os agendadores e a API operacional",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			application, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer application.conn.Close()

			if err := application.collectSync.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de coleta")
			} else {
				logrus.Info("Agendador de coleta iniciado com sucesso")
			}

			if err := application.bizmoneySync.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de bizmoney")
			} else {
				logrus.Info("Agendador de bizmoney iniciado com sucesso")
			}

			server, err := api.New(application.cfg, application.collectSync, application.bizmoneySync)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}

// runCmd executa uma coleta única, para a data alvo e opcionalmente uma
// única conta. Sem --date, coleta a data de ontem.
func runCmd() *cobra.Command {
	var (
		dateFlag     string
		customerFlag int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Executa uma coleta única",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			application, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer application.conn.Close()

			targetDate := utils.Yesterday()
			if dateFlag != "" {
				parsed, err := utils.ParseDate(dateFlag)
				if err != nil {
					return fmt.Errorf("data inválida %q (esperado AAAA-MM-DD): %w", dateFlag, err)
				}
				targetDate = *parsed
			}

			_, err = application.collectService.Run(ctx, targetDate, customerFlag)
			return err
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Data alvo da coleta (AAAA-MM-DD, padrão: ontem)")
	cmd.Flags().Int64Var(&customerFlag, "customer-id", 0, "Coleta apenas a conta informada")

	return cmd
}

// bizmoneyCmd captura o snapshot de saldo de todas as contas uma única vez.
func bizmoneyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bizmoney",
		Short: "Executa um snapshot único de saldo de bizmoney",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			application, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer application.conn.Close()

			_, err = application.balanceService.Run(ctx)
			return err
		},
	}
}

// bootstrap carrega a configuração e monta o grafo de dependências.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	conn := pgconn(ctx, cfg.Database)

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	accountRepo := repository.NewAccountRepository(conn)
	catalogRepo := repository.NewCatalogRepository(conn)
	factRepo := repository.NewFactRepository(conn)
	balanceRepo := repository.NewBalanceRepository(conn)

	client := searchadclient.NewClient(cfg)
	integrator := searchad.New(cfg, client)

	collectService := collecting.NewService(cfg, integrator, accountRepo, catalogRepo, factRepo)
	balanceService := balance.NewService(cfg, integrator, accountRepo, balanceRepo)

	return &app{
		cfg:            cfg,
		conn:           conn,
		collectService: collectService,
		balanceService: balanceService,
		collectSync:    scheduler.NewCollectSyncService(collectService, cfg),
		bizmoneySync:   scheduler.NewBizmoneySyncService(balanceService, cfg),
	}, nil
}

// configureLogger configura o formato e comportamento dos logs.
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados.
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
