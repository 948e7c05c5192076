package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldamasio/robson/cli/internal/config"
	"github.com/ldamasio/robson/cli/internal/log"
	"github.com/ldamasio/robson/cli/internal/stream"
)

const shutdownTimeout = 5 * time.Second

var (
	simulate      bool
	simulateEvery time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the real-time market data server",
	Long: `Starts a WebSocket server (/ws) that broadcasts market data updates from
Redis Pub/Sub to connected clients.

With --simulate the server also publishes a BTCUSDC random walk to the same
channel, standing in for the exchange feed during development.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if simulate && simulateEvery <= 0 {
			return fmt.Errorf("--simulate-interval must be positive, got %s", simulateEvery)
		}

		broker := stream.NewRedisBroker(settings.RedisAddr)
		defer broker.Close()

		if err := broker.Ping(cmd.Context()); err != nil {
			return fmt.Errorf("connecting to redis at %s: %w", settings.RedisAddr, err)
		}

		return runServer(cmd.Context(), broker, ":"+settings.Port, settings.Channel, log.GetLogger())
	},
}

func init() {
	serverCmd.Flags().String(config.KeyRedis, config.DefaultRedisAddr, "Redis address (env: ROBSON_REDIS)")
	serverCmd.Flags().String(config.KeyPort, config.DefaultPort, "WebSocket server port (env: ROBSON_PORT)")
	serverCmd.Flags().String(config.KeyChannel, config.DefaultChannel, "Redis channel carrying price updates")
	serverCmd.Flags().BoolVar(&simulate, "simulate", false, "Publish simulated BTCUSDC prices")
	serverCmd.Flags().DurationVar(&simulateEvery, "simulate-interval", time.Second, "Interval between simulated prices")
	rootCmd.AddCommand(serverCmd)
}

// runServer serves the hub on addr until ctx is cancelled.
func runServer(ctx context.Context, broker stream.Broker, addr, channel string, logger log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := stream.NewHub(logger)
	go hub.Run(ctx)

	if simulate {
		sim := &stream.Simulator{
			Broker:   broker,
			Channel:  channel,
			Symbol:   "BTCUSDC",
			Price:    50000.0,
			Interval: simulateEvery,
			Logger:   logger,
		}
		go sim.Run(ctx)
	}

	relayErr := make(chan error, 1)
	go func() {
		relayErr <- stream.Relay(ctx, broker, channel, hub)
	}()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()
	logger.Info("websocket server started", "addr", listener.Addr().String(), "channel", channel)

	select {
	case <-ctx.Done():
	case err := <-relayErr:
		if err != nil {
			logger.Error("relay stopped", "error", err)
			cancel()
			shutdown(srv, logger)
			return err
		}
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdown(srv, logger)
	return nil
}

func shutdown(srv *http.Server, logger log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("server shutdown", "error", err)
	}
}
