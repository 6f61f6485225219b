package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mrvatsan/APTITUDE-AI/internal/app"
	"github.com/Mrvatsan/APTITUDE-AI/internal/config"
	"github.com/Mrvatsan/APTITUDE-AI/internal/generator"
	"github.com/Mrvatsan/APTITUDE-AI/internal/infra/memory"
	"github.com/Mrvatsan/APTITUDE-AI/internal/infra/postgres"
	redisinfra "github.com/Mrvatsan/APTITUDE-AI/internal/infra/redis"
	"github.com/Mrvatsan/APTITUDE-AI/internal/infra/sqlite"
	"github.com/Mrvatsan/APTITUDE-AI/internal/llm"
	transport "github.com/Mrvatsan/APTITUDE-AI/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the practice server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = redisClient.Close() })
	}

	store, loader, closeStore, err := openPersistence(ctx, cfg)
	if err != nil {
		return err
	}
	closers = append(closers, closeStore)

	bank := memory.NewQuestionBank(loader, config.Duration(cfg.Questions.BankTTL, 10*time.Minute))
	var questions app.QuestionSource = bank

	opts := []app.Option{app.WithLocation(config.Location(cfg.Practice.Timezone))}

	settings := llm.Settings{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		MaxAttempts: cfg.LLM.MaxAttempts,
		Timeout:     config.Duration(cfg.LLM.Timeout, 30*time.Second),
	}
	if settings.Enabled() {
		provider, err := llm.New(ctx, settings)
		if err != nil {
			return err
		}
		var generated app.QuestionSource = generator.NewLLMQuestions(provider)
		if redisClient != nil {
			generated = redisinfra.NewQuestionPool(redisClient, generated,
				config.Duration(cfg.Questions.PoolTTL, time.Hour), cfg.Questions.PoolSize)
		}
		questions = generator.WithFallback(generated, bank)
		opts = append(opts, app.WithFeedback(generator.NewLLMFeedback(provider),
			config.Duration(cfg.Practice.FeedbackTimeout, 15*time.Second)))
		log.Printf("[server] question generation via %s (%s)", settings.Provider, provider.Model())
	} else {
		log.Printf("[server] no llm provider configured; serving the built-in question bank")
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, config.Duration(cfg.Redis.TTL, 2*time.Hour))
	} else {
		sessions = memory.NewSessionStore()
	}

	service := app.NewPracticeService(sessions, questions, store, opts...)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	transport.NewHandler(service).RegisterRoutes(e)
	e.GET("/ws", echo.WrapHandler(http.HandlerFunc(transport.NewWSHandler(service).ServeWS)))
	e.Server.ReadTimeout = 15 * time.Second

	idleTTL := config.Duration(cfg.Practice.SessionIdleTTL, 2*time.Hour)
	sweepEvery := config.Duration(cfg.Practice.SweepInterval, 5*time.Minute)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("starting practice service on :%s", finalPort)
		if err := e.Start(":" + finalPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		sweepSessions(gctx, service, idleTTL, sweepEvery)
		return nil
	})
	return g.Wait()
}

// openPersistence picks Postgres, then SQLite, then process memory, and
// returns the matching question loader.
func openPersistence(ctx context.Context, cfg config.Config) (app.PersistenceGateway, memory.QuestionLoader, func(), error) {
	static := memory.NewStaticQuestionLoader(memory.DefaultQuestionBank())

	switch {
	case cfg.Postgres.URL != "":
		db := postgres.Open(cfg.Postgres.URL)
		if err := migrateDB(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		closeAll := func() {
			pool.Close()
			_ = db.Close()
		}
		loader := memory.NewLayeredLoader(postgres.NewQuestionLoader(pool), static)
		return postgres.NewGateway(db), loader, closeAll, nil
	case cfg.SQLite.Path != "":
		gw, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, nil, err
		}
		return gw, static, func() { _ = gw.Close() }, nil
	default:
		log.Printf("[server] no database configured; progress is kept in memory")
		return memory.NewRecordStore(), static, func() {}, nil
	}
}

// sweepSessions evicts idle in-progress sessions until ctx is done.
func sweepSessions(ctx context.Context, service *app.PracticeService, idle, every time.Duration) {
	if idle <= 0 || every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := service.SweepIdle(idle); n > 0 {
				log.Printf("[session] evicted %d idle sessions", n)
			}
		}
	}
}
