package services

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tomazdalcortivo/sdpe_mid/helpers"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/joho/godotenv"
)

// Backends suportados para o armazenamento do token.
const (
	TokenStoreFile   = "file"
	TokenStoreRedis  = "redis"
	TokenStoreMemory = "memory"
)

// Config centraliza a configuração necessária para os serviços externos.
type Config struct {
	AppName        string
	HTTPPort       int
	RunMode        string
	APIBaseURL     string
	PublicBaseURL  string
	CORSOrigins    []string
	RequestTimeout time.Duration
	RetryCount     int
	RetryBackoffMs int
	TamPag         int
	ImageMaxBytes  int64
	CoverRPS       int
	AdminRole      string
	TokenStore     string
	TokenFile      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ServiceToken   string
}

var (
	cfg     Config
	cfgErr  error
	once    sync.Once
	envOnce sync.Once
)

// ErrMissingBaseURL indica que a origem do backend não foi configurada.
var ErrMissingBaseURL = errors.New("SDPE_API_BASE_URL não configurado")

// GetConfig devolve a configuração carregada e falha rápido quando inválida.
func GetConfig() Config {
	c, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadConfig lê .env, variáveis de ambiente e app.conf, nessa ordem de prioridade.
func LoadConfig() (Config, error) {
	once.Do(func() {
		cfg, cfgErr = readConfig()
		if cfgErr == nil {
			helpers.SetDefaultRetryCount(cfg.RetryCount)
			helpers.SetRetryBackoff(cfg.RetryBackoffMs)
		}
	})
	return cfg, cfgErr
}

func readConfig() (Config, error) {
	loadDotEnv()

	c := Config{
		AppName:        getString("APP_NAME", "appname", "sdpe_mid"),
		HTTPPort:       getInt("HTTP_PORT", "httpport", 8080),
		RunMode:        getString("RUN_MODE", "runmode", "dev"),
		APIBaseURL:     normalizeBase(getString("SDPE_API_BASE_URL", "sdpe_api_base_url", "")),
		PublicBaseURL:  normalizeBase(getString("PUBLIC_BASE_URL", "public_base_url", "")),
		CORSOrigins:    splitList(getString("CORS_ORIGINS", "cors_origins", "http://localhost:5173")),
		RequestTimeout: time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
		RetryCount:     getInt("RETRY_COUNT", "retry_count", 2),
		RetryBackoffMs: getInt("RETRY_BACKOFF_MS", "retry_backoff_ms", 300),
		TamPag:         getInt("TAM_PAG", "tam_pag", 200),
		ImageMaxBytes:  int64(getInt("IMAGE_MAX_BYTES", "image_max_bytes", 5<<20)),
		CoverRPS:       getInt("COVER_RPS", "cover_rps", 20),
		AdminRole:      getString("ADMIN_ROLE", "admin_role", "ADMIN"),
		TokenStore:     strings.ToLower(getString("TOKEN_STORE", "token_store", TokenStoreMemory)),
		TokenFile:      getString("TOKEN_FILE", "token_file", defaultTokenFile()),
		RedisAddr:      getString("REDIS_ADDR", "redis_addr", ""),
		RedisPassword:  getString("REDIS_PASSWORD", "redis_password", ""),
		RedisDB:        getInt("REDIS_DB", "redis_db", 0),
		ServiceToken:   getString("SDPE_SERVICE_TOKEN", "sdpe_service_token", ""),
	}

	if c.APIBaseURL == "" {
		return Config{}, ErrMissingBaseURL
	}
	if c.TamPag <= 0 {
		c.TamPag = 200
	}
	switch c.TokenStore {
	case TokenStoreFile, TokenStoreMemory:
	case TokenStoreRedis:
		if c.RedisAddr == "" {
			return Config{}, errors.New("REDIS_ADDR obrigatório quando TOKEN_STORE=redis")
		}
	default:
		return Config{}, errors.New("TOKEN_STORE inválido: " + c.TokenStore)
	}
	return c, nil
}

func loadDotEnv() {
	envOnce.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			logs.Warn("falha lendo .env: %v", err)
		}
	})
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSuffix(strings.TrimSpace(value), "/")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "sdpe", "sdpe_token")
}

// BuildURL compõe uma URL garantindo que não haja barras duplicadas.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
