// Package session guarda o token bearer emitido pelo backend do SDPE.
//
// O token fica sempre sob a mesma chave (TokenKey). A presença do token
// habilita as rotas autenticadas; a ausência não é erro.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomazdalcortivo/sdpe_mid/services"
)

// TokenKey é a chave fixa sob a qual o token é persistido.
const TokenKey = "sdpe_token"

// TokenSource fornece o token atual ("" quando não há sessão).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Store é um TokenSource que também permite gravar e apagar o token.
type Store interface {
	TokenSource
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Static é um TokenSource somente leitura, usado para propagar o header da requisição de entrada.
type Static string

// Token devolve o valor fixo.
func (s Static) Token(context.Context) (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// Chain consulta cada fonte em ordem e devolve o primeiro token não vazio.
type Chain []TokenSource

// Token implementa TokenSource.
func (c Chain) Token(ctx context.Context) (string, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		tok, err := src.Token(ctx)
		if err != nil {
			return "", err
		}
		if tok != "" {
			return tok, nil
		}
	}
	return "", nil
}

// MemoryStore mantém o token em memória.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore(initial string) *MemoryStore {
	return &MemoryStore{token: strings.TrimSpace(initial)}
}

func (m *MemoryStore) Token(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *MemoryStore) SetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
	return nil
}

func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// FileStore persiste o token em um arquivo com permissão 0600.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path devolve o caminho do arquivo do token.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Token(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("lendo token: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (f *FileStore) SetToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("criando diretório do token: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(strings.TrimSpace(token)), 0o600); err != nil {
		return fmt.Errorf("gravando token: %w", err)
	}
	return os.Rename(tmp, f.path)
}

func (f *FileStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removendo token: %w", err)
	}
	return nil
}

// RedisStore guarda o token em uma chave Redis, com TTL opcional.
type RedisStore struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, key: TokenKey, ttl: ttl}
}

func (r *RedisStore) Token(ctx context.Context) (string, error) {
	v, err := r.rdb.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return v, nil
}

func (r *RedisStore) SetToken(ctx context.Context, token string) error {
	if err := r.rdb.Set(ctx, r.key, strings.TrimSpace(token), r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", r.key, err)
	}
	return nil
}

// NewStore escolhe o backend conforme TOKEN_STORE.
func NewStore(cfg services.Config) (Store, error) {
	switch cfg.TokenStore {
	case services.TokenStoreFile:
		return NewFileStore(cfg.TokenFile), nil
	case services.TokenStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return NewRedisStore(rdb, 0), nil
	case services.TokenStoreMemory, "":
		return NewMemoryStore(cfg.ServiceToken), nil
	default:
		return nil, fmt.Errorf("token store desconhecido: %q", cfg.TokenStore)
	}
}
