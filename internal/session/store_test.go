package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomazdalcortivo/sdpe_mid/services"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok, "store vazio não deve ter token")

	require.NoError(t, s.SetToken(ctx, "  abc.def.ghi \n"))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, s.Clear(ctx))
	tok, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	// limpar duas vezes não é erro
	require.NoError(t, s.Clear(ctx))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(""))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", TokenKey)
	s := NewFileStore(path)
	exerciseStore(t, s)

	require.NoError(t, s.SetToken(context.Background(), "tok"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	s := NewRedisStore(rdb, 0)
	exerciseStore(t, s)

	require.NoError(t, s.SetToken(context.Background(), "tok"))
	v, err := mr.Get(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)
}

func TestRedisStoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = rdb.Close() })

	_, err := NewRedisStore(rdb, 0).Token(context.Background())
	assert.Error(t, err)
}

func TestChainPrefersFirstNonEmpty(t *testing.T) {
	ctx := context.Background()
	stored := NewMemoryStore("guardado")

	tok, err := Chain{Static(""), stored}.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "guardado", tok)

	tok, err = Chain{Static("do-header"), stored}.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "do-header", tok)

	tok, err = Chain{nil, Static("")}.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(services.Config{TokenStore: services.TokenStoreMemory, ServiceToken: "svc"})
	require.NoError(t, err)
	tok, _ := s.Token(context.Background())
	assert.Equal(t, "svc", tok)

	s, err = NewStore(services.Config{TokenStore: services.TokenStoreFile, TokenFile: filepath.Join(t.TempDir(), "t")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = NewStore(services.Config{TokenStore: "etcd"})
	assert.Error(t, err)
}
