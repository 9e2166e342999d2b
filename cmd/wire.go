package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	tomlrepo "github.com/bnema/quotevault-cli/internal/adapters/repo/toml"
	"github.com/bnema/quotevault-cli/internal/adapters/store/firebase"
	"github.com/bnema/quotevault-cli/internal/application"
	"github.com/bnema/quotevault-cli/internal/domain"
	"github.com/bnema/quotevault-cli/internal/ports"
)

const (
	dbURLKey     = "db.url"
	dbTimeoutKey = "db.timeout"
	chatPollKey  = "chat.poll"
	configDir    = ".quotevault"
)

type app struct {
	store    ports.RemoteStore
	sessions ports.SessionRepository
	mirror   *application.Mirror
	engine   *application.Engine
	logger   *zap.Logger
	chatPoll time.Duration
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(dbTimeoutKey, 8*time.Second)
	cfg.SetDefault(chatPollKey, 2*time.Second)
	_ = cfg.BindEnv(dbURLKey, "QV_DB_URL")

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := cfg.GetString(dbURLKey)
	if baseURL == "" {
		return nil, fmt.Errorf("store URL not configured: set %s in ~/%s/config.toml or the QV_DB_URL environment variable", dbURLKey, configDir)
	}

	logger := zap.NewNop()
	if os.Getenv("QV_DEBUG") != "" {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build debug logger: %w", err)
		}
	}

	store, err := firebase.NewClient(baseURL,
		firebase.WithHTTPClient(&http.Client{Timeout: cfg.GetDuration(dbTimeoutKey)}),
		firebase.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("wire store client: %w", err)
	}

	sessions, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	mirror := application.NewMirror(store, logger)

	return &app{
		store:    store,
		sessions: sessions,
		mirror:   mirror,
		engine:   application.NewEngine(store, mirror, ports.SystemClock{}, logger),
		logger:   logger,
		chatPoll: cfg.GetDuration(chatPollKey),
	}, nil
}

// loadSession returns the persisted session identity, minting and saving a
// fresh user id on first use.
func (a *app) loadSession(ctx context.Context) (*domain.Session, error) {
	session, err := a.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, fmt.Errorf("load session: %w", err)
		}

		session = domain.Session{UserID: domain.UserID(uuid.NewString())}
		if err := a.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("save new session: %w", err)
		}
	}

	return &session, nil
}
