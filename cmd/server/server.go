package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/config"
	apiv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/api/v1alpha1"
	spellv1alpha1 "github.com/KirkDiggler/vagabond-spellcraft/internal/handlers/spellcraft/v1alpha1"
	dicesvc "github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/dice"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/orchestrators/spell"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/clock"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/vagabond-spellcraft/internal/redis"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/reporting"
	actorrepo "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/actor"
	dicesession "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/dice_session"
	spellstate "github.com/KirkDiggler/vagabond-spellcraft/internal/repositories/spell_state"
	"github.com/KirkDiggler/vagabond-spellcraft/internal/ruleset"
)

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the spellcraft gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides GRPC_PORT")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Optional .env file to load")
}

// services are the handlers the server registers
type services struct {
	spellHandler *spellv1alpha1.Handler
	diceHandler  *apiv1alpha1.DiceHandler
	bus          events.EventBus
}

func loadConfig() (*config.Config, error) {
	if envFile != "" {
		return config.Load(envFile)
	}
	return config.Load()
}

func loadRuleset(path string) (ruleset.Ruleset, error) {
	if path == "" {
		return ruleset.Default()
	}
	slog.Info("Loading ruleset", "path", path)
	return ruleset.LoadFile(path)
}

func buildServices(cfg *config.Config, client redisclient.Client) (*services, error) {
	rules, err := loadRuleset(cfg.RulesetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset: %w", err)
	}

	actorRepo, err := actorrepo.NewRedisRepository(&actorrepo.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor repository: %w", err)
	}
	spellStateRepo, err := spellstate.NewRedisRepository(&spellstate.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create spell state repository: %w", err)
	}
	diceSessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	diceService, err := dicesvc.NewOrchestrator(&dicesvc.Config{
		DiceSessionRepo: diceSessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
		Roller:          dice.DefaultRoller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice service: %w", err)
	}

	bus := events.NewBus()
	reporting.SubscribeLogger(bus)
	reporter, err := reporting.NewEventReporter(&reporting.EventReporterConfig{Bus: bus})
	if err != nil {
		return nil, fmt.Errorf("failed to create reporter: %w", err)
	}

	spellService, err := spell.NewOrchestrator(&spell.Config{
		ActorRepo:      actorRepo,
		SpellStateRepo: spellStateRepo,
		DiceService:    diceService,
		Reporter:       reporter,
		Ruleset:        rules,
		IDGenerator:    idgen.NewUUID("cast"),
		Settings:       cfg.Settings(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spell service: %w", err)
	}

	spellHandler, err := spellv1alpha1.NewHandler(&spellv1alpha1.HandlerConfig{SpellService: spellService})
	if err != nil {
		return nil, fmt.Errorf("failed to create spell handler: %w", err)
	}
	diceHandler, err := apiv1alpha1.NewDiceHandler(&apiv1alpha1.DiceHandlerConfig{DiceService: diceService})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice handler: %w", err)
	}

	return &services{
		spellHandler: spellHandler,
		diceHandler:  diceHandler,
		bus:          bus,
	}, nil
}

func newGRPCServer(svcs *services) *grpc.Server {
	logger := grpc_logging.LoggerFunc(logFunc)

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	spellv1alpha1.RegisterSpellServiceServer(srv, svcs.spellHandler)
	apiv1alpha1.RegisterDiceServiceServer(srv, svcs.diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(spellv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.DiceServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redisclient.Ping(pingCtx, client); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	svcs, err := buildServices(cfg, client)
	if err != nil {
		return err
	}
	defer svcs.bus.ClearAll()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(svcs)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
