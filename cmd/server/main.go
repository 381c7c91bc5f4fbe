package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	dbmigrations "unbounded/db"
	httpadapter "unbounded/internal/adapter/http"
	uuidgen "unbounded/internal/adapter/idgen/uuid"
	"unbounded/internal/adapter/llm/ollama"
	"unbounded/internal/adapter/llm/prompts"
	memlock "unbounded/internal/adapter/lock/memory"
	redislock "unbounded/internal/adapter/lock/redis"
	metricsinmem "unbounded/internal/adapter/metrics/inmemory"
	gormrepo "unbounded/internal/adapter/repo/gorm"
	"unbounded/internal/adapter/repo/memory"
	"unbounded/internal/app/creation"
	"unbounded/internal/app/decaysweep"
	"unbounded/internal/app/history"
	"unbounded/internal/app/interact"
	"unbounded/internal/app/ports"
	"unbounded/internal/app/replay"
	"unbounded/internal/app/roster"
	"unbounded/internal/app/status"
	"unbounded/internal/domain/character"
	"unbounded/internal/platform/config"
	"unbounded/internal/platform/otel"
)

const serviceName = "unbounded"

type characterStore interface {
	ports.CharacterRepository
	ports.CharacterLister
}

type repos struct {
	states       ports.CharacterStateRepository
	characters   characterStore
	interactions ports.InteractionRepository
	events       ports.EventRepository
	tx           ports.TxManager
}

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	hlog.SetLevel(parseLogLevel(cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OtelEndpoint, cfg.OtelEnabled)
	if err != nil {
		hlog.Fatalf("setup tracing: %v", err)
	}

	r, err := buildRepos(ctx, cfg)
	if err != nil {
		hlog.Fatalf("build repositories: %v", err)
	}
	ids := uuidgen.Generator{}
	locker, closeLocker, err := buildLocker(ctx, cfg, ids)
	if err != nil {
		hlog.Fatalf("build locker: %v", err)
	}
	responder, err := buildResponder(ctx, cfg)
	if err != nil {
		hlog.Fatalf("build responder: %v", err)
	}
	kpiRecorder := metricsinmem.NewRecorder()
	sim := character.SimulationService{}

	h := httpadapter.Handler{
		CreateUC: creation.UseCase{
			Characters: r.characters,
			StateRepo:  r.states,
			TxManager:  r.tx,
			IDs:        ids,
			Now:        time.Now,
		},
		StatusUC: status.UseCase{StateRepo: r.states, Characters: r.characters, Sim: sim, Now: time.Now},
		InteractUC: interact.UseCase{
			TxManager:       r.tx,
			StateRepo:       r.states,
			Characters:      r.characters,
			InteractionRepo: r.interactions,
			EventRepo:       r.events,
			Locker:          locker,
			Responder:       responder,
			IDs:             ids,
			Metrics:         kpiRecorder,
			Sim:             sim,
			Now:             time.Now,
			LockTTL:         cfg.LockTTL,
			HistoryLimit:    cfg.HistoryLimit,
		},
		HistoryUC: history.UseCase{Interactions: r.interactions, Characters: r.characters},
		ReplayUC:  replay.UseCase{Events: r.events, Characters: r.characters},
		RosterUC:  roster.UseCase{Characters: r.characters},
		KPI:       kpiRecorder,
	}

	if cfg.SweepInterval > 0 {
		sweep := decaysweep.UseCase{
			TxManager:   r.tx,
			StateRepo:   r.states,
			EventRepo:   r.events,
			Locker:      locker,
			Sim:         sim,
			Now:         time.Now,
			Concurrency: cfg.SweepConcurrency,
			MinIdle:     cfg.SweepMinIdle,
		}
		go sweep.Run(ctx, cfg.SweepInterval)
		hlog.Infof("decay sweep every %s", cfg.SweepInterval)
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)
	s.OnShutdown = append(s.OnShutdown, func(shutdownCtx context.Context) {
		cancel()
		if err := closeLocker(); err != nil {
			hlog.CtxWarnf(shutdownCtx, "close locker: %v", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			hlog.CtxWarnf(shutdownCtx, "shutdown tracing: %v", err)
		}
	})

	hlog.Infof("%s server listening on %s", serviceName, cfg.HTTPAddr)
	s.Spin()
}

func buildRepos(ctx context.Context, cfg config.Config) (repos, error) {
	if strings.TrimSpace(cfg.DatabaseDSN) == "" {
		hlog.Warnf("UNBOUNDED_DB_DSN not set, using in-memory storage")
		store := memory.NewStore()
		return repos{
			states:       memory.NewCharacterStateRepo(store),
			characters:   memory.NewCharacterRepo(store),
			interactions: memory.NewInteractionRepo(store),
			events:       memory.NewEventRepo(store),
			tx:           memory.NewTxManager(store),
		}, nil
	}

	db, err := gormrepo.OpenPostgresWithPool(cfg.DatabaseDSN, gormrepo.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return repos{}, err
	}
	if cfg.AutoMigrate {
		applied, err := gormrepo.ApplyMigrations(ctx, db, dbmigrations.Migrations, "migrations")
		if err != nil {
			return repos{}, err
		}
		if len(applied) > 0 {
			hlog.Infof("applied migrations: %s", strings.Join(applied, ", "))
		}
	}
	return repos{
		states:       gormrepo.NewCharacterStateRepo(db),
		characters:   gormrepo.NewCharacterRepo(db),
		interactions: gormrepo.NewInteractionRepo(db),
		events:       gormrepo.NewEventRepo(db),
		tx:           gormrepo.NewTxManager(db),
	}, nil
}

func buildLocker(ctx context.Context, cfg config.Config, tokens ports.IDGenerator) (ports.CharacterLocker, func() error, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		hlog.Warnf("UNBOUNDED_REDIS_ADDR not set, character locks are process-local")
		return memlock.NewLocker(), func() error { return nil }, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}
	return redislock.Locker{Client: rdb, Tokens: tokens}, rdb.Close, nil
}

// buildResponder returns nil when no Ollama endpoint is configured, which
// turns reply generation off.
func buildResponder(ctx context.Context, cfg config.Config) (ports.ResponseGenerator, error) {
	if strings.TrimSpace(cfg.OllamaURL) == "" {
		hlog.Infof("OLLAMA_API_URL not set, character replies disabled")
		return nil, nil
	}

	var src ollama.TemplateSource
	if dir := strings.TrimSpace(cfg.PromptDir); dir != "" {
		src = prompts.Provider{Root: dir}
	}
	tmpl, err := ollama.LoadTemplate(ctx, src)
	if err != nil {
		return nil, err
	}
	responder, err := ollama.NewResponder(ollama.Config{
		BaseURL: cfg.OllamaURL,
		Model:   cfg.OllamaModel,
		Timeout: cfg.OllamaTimeout,
	}, tmpl)
	if err != nil {
		return nil, err
	}
	return responder, nil
}

func parseLogLevel(raw string) hlog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "notice":
		return hlog.LevelNotice
	case "warn", "warning":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
