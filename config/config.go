package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"required"`

	// Portal configuration for the back-office report source
	Portal PortalConfig `json:"portal" yaml:"portal"`

	// Catalog configuration for the public unit-catalog API
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Storage configuration for the cloud-disk stop-list feed
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Telegram configuration for operator alerting
	Telegram *TelegramConfig `json:"telegram" yaml:"telegram"`

	// Sync tuning for the report synchronization runs
	Sync SyncConfig `json:"sync" yaml:"sync"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PortalConfig defines the back-office endpoints and login context.
type PortalConfig struct {
	AuthBaseURL   string        `json:"authBaseUrl" yaml:"authBaseUrl" validate:"required,url"`
	OfficeBaseURL string        `json:"officeBaseUrl" yaml:"officeBaseUrl" validate:"required,url"`
	CountryCode   string        `json:"countryCode" yaml:"countryCode" validate:"required"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// CatalogConfig defines the public unit-catalog endpoint.
type CatalogConfig struct {
	UnitInfoURL string        `json:"unitInfoUrl" yaml:"unitInfoUrl" validate:"required,url"`
	CountryCode string        `json:"countryCode" yaml:"countryCode" validate:"required"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// StorageConfig defines the cloud-disk feed used for the stop list.
type StorageConfig struct {
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	Token        string        `json:"token" yaml:"token" validate:"required"`
	StopListPath string        `json:"stopListPath" yaml:"stopListPath" validate:"required"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// TelegramConfig defines the operator alerting channel.
type TelegramConfig struct {
	BotToken string        `json:"botToken" yaml:"botToken" validate:"required"`
	ChatID   string        `json:"chatId" yaml:"chatId" validate:"required"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// SyncConfig tunes the report synchronization runs. Zero values fall back to
// the engine's defaults.
type SyncConfig struct {
	// Maximum days per report request window.
	MaxWindowDays int `json:"maxWindowDays" yaml:"maxWindowDays" validate:"gte=0"`

	// Fetch attempts per window before the unit's sync fails.
	Attempts int `json:"attempts" yaml:"attempts" validate:"gte=0"`

	// Pause between failed fetch attempts.
	Backoff time.Duration `json:"backoff" yaml:"backoff"`

	// Phone prefix that marks a row as belonging to the deployment's country.
	PhonePrefix string `json:"phonePrefix" yaml:"phonePrefix"`

	// Upper bound in days on how far back a unit's first sync may reach.
	HistoryDays int `json:"historyDays" yaml:"historyDays" validate:"gte=0"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
