package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kilnfi/cardano-schedule-reporter/cmd/reporter/app/config"
	"github.com/kilnfi/cardano-schedule-reporter/internal/blockfrost"
	"github.com/kilnfi/cardano-schedule-reporter/internal/blockfrost/blockfrostapi"
	"github.com/kilnfi/cardano-schedule-reporter/internal/cardano/cardanocli"
	"github.com/kilnfi/cardano-schedule-reporter/internal/history"
	"github.com/kilnfi/cardano-schedule-reporter/internal/marker"
	"github.com/kilnfi/cardano-schedule-reporter/internal/metrics"
	"github.com/kilnfi/cardano-schedule-reporter/internal/reporting"
	"github.com/kilnfi/cardano-schedule-reporter/internal/runlock"
	"github.com/kilnfi/cardano-schedule-reporter/internal/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
)

func init() {
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(loadConfig)
}

func initLogger() {
	var logLevel slog.Level
	switch viper.GetString("log-level") {
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	case "debug":
		logLevel = slog.LevelDebug
	default:
		logLevel = slog.LevelInfo
	}

	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

func NewReporterCommand() *cobra.Command {
	cmd := &cobra.Command{
		TraverseChildren: true,
		Use:              "cardano-schedule-reporter",
		Short:            "cardano schedule reporter publishes a pool's leadership schedule once per epoch",
		Long: `cardano schedule reporter is a one-shot program meant to run from cron.
		It queries the local cardano node for the current epoch and, when a new epoch
		has begun, fetches the pool's leadership schedule and posts it to a reports API.
		A marker file keeps each epoch from being reported more than once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().StringVarP(&configFile, "config", "", "", "config file (default is config.yml)")
	cmd.Flags().StringP("log-level", "", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringP("pool-id", "", "", "stake pool identifier (bech32)")
	cmd.Flags().StringP("pool-vrf-key-file", "", "", "path to the pool VRF signing key file")
	cmd.Flags().StringP("cardano-socket-path", "", "/var/run/cardano.socket", "socket path to communicate with a cardano node")
	cmd.Flags().StringP("cardano-genesis-file", "", "/config/shelley-genesis.json", "path to the shelley genesis file")
	cmd.Flags().StringP("reporting-endpoint", "", "", "URL of the reports API endpoint")
	cmd.Flags().IntP("reporting-timeout", "", 30, "timeout for requests to the reports API (in seconds)")
	cmd.Flags().StringP("marker-path", "", "../last_reported_epoch", "path to the last-reported-epoch marker file")
	cmd.Flags().StringP("lock-path", "", "../.reporter.lock", "path to the advisory lock file guarding a run")
	cmd.Flags().StringP("database-path", "", "", "path to the local report history database (empty disables history)")
	cmd.Flags().StringP("blockfrost-project-id", "", "", "blockfrost project id (empty disables the node sync check)")
	cmd.Flags().StringP("blockfrost-endpoint", "", "", "blockfrost API endpoint")
	cmd.Flags().IntP("blockfrost-timeout", "", 60, "timeout for requests to the blockfrost API (in seconds)")
	cmd.Flags().StringP("metrics-pushgateway-url", "", "", "pushgateway URL to push run metrics to (empty disables the push)")

	// bind flag to viper
	checkError(viper.BindPFlag("log-level", cmd.Flag("log-level")), "unable to bind log-level flag")
	checkError(viper.BindPFlag("pool.id", cmd.Flag("pool-id")), "unable to bind pool-id flag")
	checkError(viper.BindPFlag("pool.vrf-key-file", cmd.Flag("pool-vrf-key-file")), "unable to bind pool-vrf-key-file flag")
	checkError(viper.BindPFlag("cardano.socket-path", cmd.Flag("cardano-socket-path")), "unable to bind cardano-socket-path flag")
	checkError(viper.BindPFlag("cardano.genesis-file", cmd.Flag("cardano-genesis-file")), "unable to bind cardano-genesis-file flag")
	checkError(viper.BindPFlag("reporting.endpoint", cmd.Flag("reporting-endpoint")), "unable to bind reporting-endpoint flag")
	checkError(viper.BindPFlag("reporting.timeout", cmd.Flag("reporting-timeout")), "unable to bind reporting-timeout flag")
	checkError(viper.BindPFlag("marker.path", cmd.Flag("marker-path")), "unable to bind marker-path flag")
	checkError(viper.BindPFlag("lock.path", cmd.Flag("lock-path")), "unable to bind lock-path flag")
	checkError(viper.BindPFlag("database.path", cmd.Flag("database-path")), "unable to bind database-path flag")
	checkError(viper.BindPFlag("blockfrost.project-id", cmd.Flag("blockfrost-project-id")), "unable to bind blockfrost-project-id flag")
	checkError(viper.BindPFlag("blockfrost.endpoint", cmd.Flag("blockfrost-endpoint")), "unable to bind blockfrost-endpoint flag")
	checkError(viper.BindPFlag("blockfrost.timeout", cmd.Flag("blockfrost-timeout")), "unable to bind blockfrost-timeout flag")
	checkError(viper.BindPFlag("metrics.pushgateway-url", cmd.Flag("metrics-pushgateway-url")), "unable to bind metrics-pushgateway-url flag")
	return cmd
}

// loadConfig read the configuration and load it.
func loadConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// the config file is optional unless one was named explicitly
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			logger.Error("unable to read config file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// unmarshal the config
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logger.Error("unable to unmarshal config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// validate the config
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	// Initialize context and cancel function
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize signal channel for handling interrupts
	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Guard the whole run so overlapping cron invocations cannot race on the
	// marker. Contention means another run is already doing the work.
	lock, err := runlock.Acquire(cfg.Lock.Path)
	if err != nil {
		if errors.Is(err, runlock.ErrLockHeld) {
			logger.Info("another run is in progress, exiting", slog.String("lock", cfg.Lock.Path))
			return nil
		}
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Error("unable to release run lock", slog.String("error", err.Error()))
		}
	}()

	// Initialize prometheus metrics
	registry := prometheus.NewRegistry()
	collection := metrics.NewCollection()
	collection.MustRegister(registry)

	// Open the report history database when configured
	var historyStore *history.Store
	if cfg.Database.Path != "" {
		historyStore, err = history.Open(ctx, cfg.Database.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := historyStore.Close(); err != nil {
				logger.Error("unable to close history database", slog.String("error", err.Error()))
			}
		}()
	}

	reportingRunner := runner.New(runner.Options{
		PoolID:     cfg.Pool.ID,
		Cardano:    createCardanoClient(),
		Reporter:   createReportingClient(),
		Marker:     marker.NewStore(cfg.Marker.Path),
		History:    historyStore,
		Blockfrost: createBlockfrostClient(),
		Metrics:    collection,
	})

	runErr := reportingRunner.Run(ctx)

	// Push metrics even for failed runs so they are visible on a dashboard.
	// A failed push never fails the run: the report already happened.
	if cfg.Metrics.PushgatewayURL != "" {
		if err := push.New(cfg.Metrics.PushgatewayURL, "cardano_schedule_reporter").
			Gatherer(registry).
			Push(); err != nil {
			logger.Error("unable to push metrics", slog.String("error", err.Error()))
		}
	}

	return runErr
}

func createCardanoClient() *cardanocli.Client {
	opts := cardanocli.ClientOptions{
		SocketPath:  cfg.Cardano.SocketPath,
		GenesisFile: cfg.Cardano.GenesisFile,
		PoolID:      cfg.Pool.ID,
		VRFKeyFile:  cfg.Pool.VRFKeyFile,
	}
	return cardanocli.NewClient(opts, &cardanocli.RealCommandExecutor{})
}

func createReportingClient() reporting.Client {
	opts := reporting.ClientOptions{
		Endpoint: cfg.Reporting.Endpoint,
		PoolID:   cfg.Pool.ID,
		Timeout:  time.Second * time.Duration(cfg.Reporting.Timeout),
	}
	return reporting.NewHTTPClient(opts)
}

func createBlockfrostClient() blockfrost.Client {
	if cfg.Blockfrost.ProjectID == "" {
		return nil
	}
	opts := blockfrostapi.ClientOptions{
		ProjectID: cfg.Blockfrost.ProjectID,
		Server:    cfg.Blockfrost.Endpoint,
		Timeout:   time.Second * time.Duration(cfg.Blockfrost.Timeout),
	}
	return blockfrostapi.NewClient(opts)
}

// checkError is a helper function to log an error and exit the program
// used for the flag parsing
func checkError(err error, msg string) {
	if err != nil {
		logger.Error(msg, slog.String("error", err.Error()))
		os.Exit(1)
	}
}
