package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"math-quiz-game/internal/app"
	"math-quiz-game/internal/config"
	"math-quiz-game/internal/game"
	"math-quiz-game/internal/infra/memory"
	infraredis "math-quiz-game/internal/infra/redis"
	"math-quiz-game/internal/logging"
	"math-quiz-game/internal/metrics"
	"math-quiz-game/internal/transport/console"
)

type playOptions struct {
	seed    int64
	backend string
}

func (o *playOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "fix the question sequence (overrides game.seed)")
	cmd.Flags().StringVar(&o.backend, "backend", "", "leaderboard backend: memory or redis (overrides leaderboard.backend)")
}

// NewPlayCmd builds the CLI subcommand that starts an interactive session.
func NewPlayCmd() *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), *opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

// leaderboardStore is a leaderboard backend the session must release on exit.
type leaderboardStore interface {
	app.LeaderboardRepository
	Close(ctx context.Context) error
}

func loadPlayConfig(opts playOptions) (config.Config, error) {
	cfg, err := config.Read(configPath, dotenvPath)
	if err != nil {
		return cfg, err
	}
	if opts.seed != 0 {
		cfg.Game.Seed = opts.seed
	}
	if opts.backend != "" {
		cfg.Leaderboard.Backend = opts.backend
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func runPlay(ctx context.Context, in io.Reader, out io.Writer, opts playOptions) error {
	cfg, err := loadPlayConfig(opts)
	if err != nil {
		return err
	}

	log, logCloser, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, err := openLeaderboard(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to open leaderboard")
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tiers := cfg.Tiers()
	recorder := metrics.NewRecorder()
	service := app.NewGameService(store, game.NewGenerator(rand.New(rand.NewSource(seed)), tiers), tiers, recorder, log)
	menu := console.NewMenu(console.New(in, out), service, log)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- menu.Run(runCtx)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case runErr = <-done:
	case <-stop:
		log.Info("shutting down game session...")
	case <-ctx.Done():
		log.Info("context canceled, shutting down game session...")
	}
	cancel()

	if runErr != nil {
		log.WithError(runErr).Error("game session failed")
	}

	if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.WithError(err).Warn("metrics not written")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := store.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("failed to release leaderboard")
	}
	return runErr
}

func openLeaderboard(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (leaderboardStore, error) {
	if cfg.Leaderboard.Backend != config.BackendRedis {
		log.Debug("using in-memory leaderboard")
		return memory.NewLeaderboardStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Leaderboard.Redis.Addr,
		Password: cfg.Leaderboard.Redis.Password,
		DB:       cfg.Leaderboard.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Leaderboard.Redis.Addr, err)
	}

	store := infraredis.NewLeaderboardStore(client, uuid.NewString(), cfg.RedisTTL())
	log = log.WithFields(logrus.Fields{
		"addr":    cfg.Leaderboard.Redis.Addr,
		"session": store.SessionID(),
	})
	log.Info("using redis leaderboard")

	keepCtx, stop := context.WithCancel(context.Background())
	lb := &redisLeaderboard{
		LeaderboardStore: store,
		client:           client,
		stop:             stop,
		done:             make(chan struct{}),
	}
	go func() {
		defer close(lb.done)
		if err := store.KeepAlive(keepCtx, cfg.RedisTTL()/2); err != nil {
			log.WithError(err).Warn("leaderboard ttl refresh failing")
		}
	}()
	return lb, nil
}

// redisLeaderboard keeps the session's rounds alive while the process runs and
// releases them, along with the connection, on Close.
type redisLeaderboard struct {
	*infraredis.LeaderboardStore
	client *redis.Client
	stop   context.CancelFunc
	done   chan struct{}
}

func (r *redisLeaderboard) Close(ctx context.Context) error {
	r.stop()
	<-r.done
	err := r.LeaderboardStore.Close(ctx)
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
