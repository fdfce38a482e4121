package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/ougirez/ehrenamt/internal/api"
	"github.com/ougirez/ehrenamt/internal/pkg/config"
	"github.com/ougirez/ehrenamt/internal/pkg/constants"
	"github.com/ougirez/ehrenamt/internal/pkg/logger"
	"github.com/ougirez/ehrenamt/internal/pkg/session"
	"github.com/ougirez/ehrenamt/internal/pkg/store"
	"github.com/ougirez/ehrenamt/internal/service/dashboard"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	dev := flag.Bool("dev", false, "human readable logs")
	flag.Parse()

	_ = godotenv.Load(".env")

	if err := config.Load(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(viper.GetString(constants.ViperLogLevelKey), *dev); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc, err := openStore(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer closeSrc()

	data, err := store.LoadDataset(ctx, src)
	if err != nil {
		logger.Fatal(ctx, fmt.Errorf("store.LoadDataset: %w", err))
	}

	ttl := viper.GetDuration(constants.ViperSessionTTLKey)
	sessions, err := session.New(session.Options{
		Backend: viper.GetString(constants.ViperSessionBackendKey),
		TTL:     ttl,
		Redis: &redis.Options{
			Addr:     viper.GetString(constants.ViperRedisAddrKey),
			Password: viper.GetString(constants.ViperRedisPasswordKey),
			DB:       viper.GetInt(constants.ViperRedisDBKey),
		},
	})
	if err != nil {
		logger.Fatal(ctx, fmt.Errorf("session.New: %w", err))
	}
	if rs, ok := sessions.(*session.RedisStore); ok {
		if err = rs.Ping(ctx); err != nil {
			logger.Fatal(ctx, fmt.Errorf("redis ping: %w", err))
		}
	}

	secret := viper.GetString(constants.ViperSecretKey)
	if secret == "" {
		secret = uuid.NewString()
		logger.Warnf(ctx, "%s is empty, sessions will not survive a restart", constants.ViperSecretKey)
	}

	svc, err := api.NewAPIService(dashboard.NewService(data, sessions), api.Options{
		Secret:      secret,
		SessionTTL:  ttl,
		CORSOrigins: viper.GetStringSlice(constants.ViperCORSOriginsKey),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperServerAddrKey)
	go svc.Serve(addr)
	logger.Infof(ctx, "dashboard api listening on %s", addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

func openStore(ctx context.Context) (store.Store, func(), error) {
	switch source := viper.GetString(constants.ViperDatasetSourceKey); source {
	case constants.DatasetSourceFile:
		return store.NewFileStore(store.FileStoreOpts{
			RecordsPath:      viper.GetString(constants.ViperRecordsPathKey),
			GeometryPath:     viper.GetString(constants.ViperGeometryPathKey),
			GeometryKey:      viper.GetString(constants.ViperGeometryKeyKey),
			DemographicsPath: viper.GetString(constants.ViperDemographicsPathKey),
		}), func() {}, nil
	case constants.DatasetSourcePostgres:
		pool, err := store.Connect(ctx, viper.GetString(constants.ViperPostgresDSNKey))
		if err != nil {
			return nil, nil, fmt.Errorf("store.Connect: %w", err)
		}
		if err = store.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store.NewStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset source %q", source)
	}
}
