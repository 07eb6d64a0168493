package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainpulse7000-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/chain/bitcoin"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/chain/evm"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/chain/solana"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/metrics"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/chainpulse7000-backend/internal/service"
)

type config struct {
	Mode               string            `long:"mode" env:"CHAINPULSE_MODE" default:"run" choice:"run" choice:"import" choice:"calculate" description:"run both pipelines, imports only, or calculation only"`
	Chains             []string          `long:"chain" env:"CHAINPULSE_CHAINS" env-delim:"," description:"chains to track (defaults to all known chains)"`
	RPCEndpoints       map[string]string `long:"rpc" env:"CHAINPULSE_RPC_ENDPOINTS" env-delim:"," description:"chain RPC endpoint as chain:URL"`
	ClickhouseDSN      string            `long:"clickhouse-dsn" env:"CHAINPULSE_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default" description:"ClickHouse DSN"`
	BitcoinRPCUser     string            `long:"bitcoin-rpc-user" env:"CHAINPULSE_BITCOIN_RPC_USER" description:"Bitcoin RPC username"`
	BitcoinRPCPassword string            `long:"bitcoin-rpc-password" env:"CHAINPULSE_BITCOIN_RPC_PASSWORD" description:"Bitcoin RPC password"`
	MetricsAddr        string            `long:"metrics-addr" env:"CHAINPULSE_METRICS_ADDR" default:":9100" description:"prometheus listen address"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("chainpulse failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	mode, err := service.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	chains, err := parseChains(cfg.Chains)
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	importers := make(map[model.Chain]service.ImportRunner, len(chains))
	if mode != service.ModeCalculate {
		rpcMetrics := metrics.NewRPCClient()
		for _, c := range chains {
			client, closeClient, err := newChainClient(ctx, cfg, c)
			if err != nil {
				return fmt.Errorf("init %s client: %w", c, err)
			}
			defer closeClient()

			observed := chain.NewObservedClient(client, rpcMetrics)
			logClientVersion(ctx, logger, observed)

			importer, err := service.NewImporterService(c, observed, repo, metrics.NewImporter(c), logger)
			if err != nil {
				return err
			}
			importers[c] = importer
		}
	}

	var calculator service.CalculateRunner
	if mode != service.ModeImport {
		calculator, err = service.NewCalculatorService(chains, repo, metrics.NewCalculator(), logger)
		if err != nil {
			return err
		}
	}

	scheduler, err := service.NewScheduler(mode, chains, importers, calculator, logger)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	logger.Info("starting scheduler",
		zap.String("mode", string(mode)),
		zap.Int("chains", len(chains)))
	if err := scheduler.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("shutting down")
			return nil
		}
		return err
	}
	return nil
}

func parseChains(names []string) ([]model.Chain, error) {
	if len(names) == 0 {
		return model.AllChains(), nil
	}
	chains := make([]model.Chain, 0, len(names))
	for _, name := range names {
		c, err := model.ParseChain(name)
		if err != nil {
			return nil, err
		}
		chains = append(chains, c)
	}
	return chains, nil
}

func newChainClient(ctx context.Context, cfg config, c model.Chain) (chain.Client, func(), error) {
	endpoint, ok := cfg.RPCEndpoints[string(c)]
	if !ok || endpoint == "" {
		return nil, nil, fmt.Errorf("no rpc endpoint configured for chain %s", c)
	}

	switch c.Family() {
	case model.FamilyEVM:
		client, err := evm.Dial(ctx, c, endpoint)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	case model.FamilySolana:
		client := solana.New(c, endpoint)
		return client, func() {}, nil
	case model.FamilyBitcoin:
		client, err := bitcoin.Dial(c, endpoint, cfg.BitcoinRPCUser, cfg.BitcoinRPCPassword)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("chain %s has no client family", c)
	}
}

func logClientVersion(ctx context.Context, logger *zap.Logger, client chain.Client) {
	versionCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	version, err := client.ClientVersion(versionCtx)
	if err != nil {
		logger.Warn("could not read client version",
			zap.String("chain", string(client.Chain())),
			zap.Error(err))
		return
	}
	logger.Info("connected",
		zap.String("chain", string(client.Chain())),
		zap.String("client_version", version))
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
}
