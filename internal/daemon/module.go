package daemon

import (
	"context"

	"github.com/mvieira/tgd/internal/api"
	"github.com/mvieira/tgd/internal/auth"
	"github.com/mvieira/tgd/internal/bus"
	"github.com/mvieira/tgd/internal/cache"
	"github.com/mvieira/tgd/internal/config"
	"github.com/mvieira/tgd/internal/lock"
	"github.com/mvieira/tgd/internal/logging"
	"github.com/mvieira/tgd/internal/session"
	"github.com/mvieira/tgd/internal/td"
	"github.com/mvieira/tgd/internal/tdjson"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideConfig,
			provideBus,
			provideLock,
			provideConn,
			provideClient,
			provideHandler,
			provideAuthMachine,
			provideAuthService,
			provideAuthorizer,
			provideStore,
			provideIndex,
			provideDispatcher,
			provideEngine,
			provideSynchronizer,
			provideAuthAPI,
			provideChatAPI,
			provideStickerAPI,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName)
}

func provideConfig(logger *zap.Logger) (*config.Config, error) {
	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Info("config loaded", zap.String("path", session.ConfigPath()))
	return cfg, nil
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func provideConn(logger *zap.Logger) *tdjson.Conn {
	return tdjson.New(logger)
}

func provideClient(conn *tdjson.Conn) td.Client {
	return conn
}

func provideHandler(b *bus.Bus, logger *zap.Logger) *td.Handler {
	return td.NewHandler(b, logger)
}

func provideAuthMachine(b *bus.Bus) *auth.Machine {
	return auth.NewMachine(b)
}

func provideAuthService(p Params, machine *auth.Machine, client td.Client, cfg *config.Config, b *bus.Bus, logger *zap.Logger) *auth.Service {
	params := td.SetTdlibParameters{
		DatabaseDirectory:  session.TDLibDir(p.SessionName),
		FilesDirectory:     session.TDLibFilesDir(p.SessionName),
		UseTestDC:          cfg.Telegram.UseTestDC,
		UseMessageDatabase: true,
		UseSecretChats:     true,
		APIID:              cfg.Telegram.APIID,
		APIHash:            cfg.Telegram.APIHash,
		SystemLanguageCode: cfg.Telegram.SystemLanguageCode,
		DeviceModel:        cfg.Telegram.DeviceModel,
		ApplicationVersion: cfg.Telegram.ApplicationVersion,
	}
	return auth.NewService(machine, client, params, b, logger)
}

func provideAuthorizer(a *auth.Service) cache.Authorizer {
	return a
}

func provideStore() *cache.Store {
	return cache.NewStore()
}

func provideIndex() *cache.Index {
	return cache.NewIndex()
}

func provideDispatcher(store *cache.Store, index *cache.Index, logger *zap.Logger) *cache.Dispatcher {
	return cache.NewDispatcher(store, index, logger)
}

func provideEngine(d *cache.Dispatcher, b *bus.Bus, logger *zap.Logger) *cache.Engine {
	return cache.NewEngine(d, b, logger)
}

func provideSynchronizer(store *cache.Store, index *cache.Index, client td.Client, authz cache.Authorizer, logger *zap.Logger) *cache.Synchronizer {
	return cache.NewSynchronizer(store, index, client, authz, logger)
}

func provideAuthAPI(a *auth.Service) *api.AuthService {
	return api.NewAuthService(a)
}

func provideChatAPI(p Params, sync *cache.Synchronizer, client td.Client, authz cache.Authorizer, b *bus.Bus) *api.ChatService {
	return api.NewChatService(sync, client, authz, b, p.SessionName)
}

func provideStickerAPI(client td.Client, authz cache.Authorizer) *api.StickerService {
	return api.NewStickerService(client, authz)
}

func registerLifecycle(
	lc fx.Lifecycle,
	srv *Server,
	lk *lock.Lock,
	conn *tdjson.Conn,
	handler *td.Handler,
	engine *cache.Engine,
	authSvc *auth.Service,
	cfg *config.Config,
	logger *zap.Logger,
) {
	runCtx, cancelRun := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Quiet TDLib's own logging before anything else happens.
			conn.Execute(td.SetLogVerbosityLevel{Level: cfg.Telegram.LogVerbosityLevel})

			// Start the cache engine and auth service (both subscribe to the bus).
			engine.Start(runCtx)
			authSvc.Start(runCtx)

			// Route backend updates onto the bus and start receiving. The
			// first payload is the parameter handshake, which the auth
			// service answers.
			conn.OnUpdate(handler.Handle)
			go conn.Run(runCtx)

			// Start gRPC server in background.
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelRun()
			authSvc.Stop()
			engine.Stop()
			srv.Stop(ctx)
			conn.Close()
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
