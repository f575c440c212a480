package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/mustang1105/twilio-service/internal/accesstoken"
	"github.com/mustang1105/twilio-service/internal/config"
	"github.com/mustang1105/twilio-service/internal/etcd"
	"github.com/mustang1105/twilio-service/internal/httputil"
	"github.com/mustang1105/twilio-service/internal/log"
	"github.com/mustang1105/twilio-service/internal/otel"
	"github.com/mustang1105/twilio-service/internal/redis"
	"github.com/mustang1105/twilio-service/internal/retry"
	"github.com/mustang1105/twilio-service/internal/video"
	"github.com/mustang1105/twilio-service/internal/workflow"
	"github.com/mustang1105/twilio-service/rooms/prefs"
	"github.com/mustang1105/twilio-service/rooms/service"
	"github.com/mustang1105/twilio-service/rooms/store"
	"github.com/mustang1105/twilio-service/rooms/transport"
)

type Config struct {
	App                 config.App         `mapstructure:"app"`
	HTTP                httputil.Config    `mapstructure:"http"`
	Etcd                etcd.Config        `mapstructure:"etcd"`
	Redis               redis.Config       `mapstructure:"redis"`
	Otel                otel.Config        `mapstructure:"otel"`
	Provider            video.Config       `mapstructure:"provider"`
	Token               accesstoken.Config `mapstructure:"token"`
	Transport           transport.Config   `mapstructure:"transport"`
	EtcdPrefixRoomStore string             `mapstructure:"etcd_prefix_room_store"`
	RedisPrefsPrefix    string             `mapstructure:"redis_prefs_prefix"`
	PrefsTTL            time.Duration      `mapstructure:"prefs_ttl"`
}

func loadConfig() (*Config, error) {
	return config.Load(&Config{}, func(v *viper.Viper) {
		v.SetDefault("etcd_prefix_room_store", "/video-rooms/")
		v.SetDefault("redis_prefs_prefix", "vrooms")
		v.SetDefault("prefs_ttl", "24h")

		config.Setup(v, "app")
		etcd.Setup(v, "etcd")
		redis.Setup(v, "redis")
		otel.Setup(v, "otel")
		httputil.Setup(v, "http")
		video.Setup(v, "provider")
		accesstoken.Setup(v, "token")
		transport.Setup(v, "transport")

		// override default addrs to ease testing
		v.SetDefault("http.addr", "0.0.0.0:3000")
		v.SetDefault("otel.service_name", "video-rooms")
	})
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration", err)
	}

	logger, err := log.NewLogger(config.App.LogConfigFile)
	if err != nil {
		log.Fatal("Failed to create logger", err)
	}
	defer func() { _ = logger.Sync() }()

	// global background context
	ctx := context.Background()

	// Initialize OpenTelemetry
	otelShutdown, err := otel.Init(ctx, &config.Otel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OTEL provider", log.Error(err))
	}

	logger.Info("Starting Video Rooms service",
		log.String("addr", config.HTTP.Addr),
		log.Any("etcdUrl", config.Etcd.Endpoints),
		log.String("providerUrl", config.Provider.BaseURL))

	// Create etcd client
	etcdClient, err := etcd.NewClient(&config.Etcd)
	if err != nil {
		logger.Fatal("Failed to create etcd client", log.Error(err))
	}

	// Create redis client and wait for connectivity
	redisClient := redis.NewClient(&config.Redis)
	startupRetry := retry.New(logger.Module("Startup"), 200*time.Millisecond, 5*time.Second, 30*time.Second)
	if err := startupRetry.Do(ctx, func() error {
		return redis.Ping(redisClient)
	}); err != nil {
		logger.Fatal("Failed to connect to Redis", log.Error(err))
	}

	// Create components
	roomStore := store.NewRoomStore(
		etcdClient,
		config.EtcdPrefixRoomStore,
		logger.Module("RoomStore"),
	)

	sessionAPI := video.New(&config.Provider, logger.Module("Provider"))

	provisioner := service.NewSessionProvisioner(
		sessionAPI,
		roomStore,
		logger.Module("Provisioner"),
	)

	issuer := accesstoken.NewIssuer(&config.Token)

	prefsState := prefs.New(
		redisClient,
		config.RedisPrefsPrefix,
		config.PrefsTTL,
		logger.Module("Prefs"),
	)

	roomService := service.NewRoomService(
		roomStore,
		provisioner,
		issuer,
		prefsState,
		logger.Module("RoomSvc"),
	)

	// Setup router
	router := transport.NewRouter(roomService, &config.Transport, logger.Module("Router"))
	server := httputil.NewServer(&config.HTTP, router.Handler())

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", log.String("addr", config.HTTP.Addr))
		if err := server.Listen(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", log.Error(err))
		}
	}()

	logger.Info("Video Rooms service started")

	// Setup graceful shutdown
	cleanup := func(ctx context.Context) {
		_ = server.Shutdown(ctx)

		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis client", log.Error(err))
		}
		if err := etcdClient.Close(); err != nil {
			logger.Error("Failed to close etcd client", log.Error(err))
		}
		if err := otelShutdown(ctx); err != nil {
			logger.Error("Failed to shutdown OTEL", log.Error(err))
		}
	}
	workflow.WaitGracefulShutdown(ctx, logger.Module("CleanUp"), cleanup, config.App.ShutdownTimeout)
}
