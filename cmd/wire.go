package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"uadm/internal/adapters/api"
	chainstore "uadm/internal/adapters/credstore/chain"
	"uadm/internal/application"
	"uadm/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	configDir      = ".uadm"
	credentialFile = "session.toml"

	baseURLKey  = "api.base_url"
	credPathKey = "credentials.path"

	defaultBaseURL = "http://localhost:5000/api"
)

type app struct {
	session *application.Session
	guard   *application.Guard
	gateway ports.AdminGateway
	creds   ports.CredentialStore
	baseURL string
	now     func() time.Time
}

func wireApp() (*app, error) {
	cfg := viper.New()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(credPathKey, filepath.Join(homeDir, configDir, credentialFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	baseURL := envOrDefault("UADM_API_BASE_URL", cfg.GetString(baseURLKey))
	credPath := envOrDefault("UADM_CREDENTIALS_PATH", cfg.GetString(credPathKey))

	creds, err := chainstore.NewPassFirstWithFileFallback(credPath)
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}

	session := application.NewSession(creds, ports.SystemClock{})

	gateway, err := api.NewClient(baseURL, http.DefaultClient, session)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	return &app{
		session: session,
		guard:   application.NewGuard(session),
		gateway: gateway,
		creds:   creds,
		baseURL: baseURL,
		now:     time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
