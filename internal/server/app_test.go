package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/recipesearch/recipesearch/internal/logging"
	"github.com/recipesearch/recipesearch/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.EndpointAddrHTTP = "127.0.0.1:0"
	cfg.DatabaseDSN = "file:" + filepath.Join(t.TempDir(), "data", "skupno.db3") + "?_pragma=foreign_keys(1)"
	cfg.SessionPurgeInterval = 10 * time.Millisecond
	return cfg
}

func runUntilCancelled(t *testing.T, app *App) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_SQLiteAndSQLSessions(t *testing.T) {
	cfg := testConfig(t)

	app, err := NewApp(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, app.redis)

	runUntilCancelled(t, app)
	assert.Error(t, app.db.Ping(), "db is closed after Run")
}

func TestNewApp_RedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisAddr = mr.Addr()

	app, err := NewApp(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, app.redis)

	runUntilCancelled(t, app)
}

func TestNewApp_Errors(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig(t)
	cfg.DatabaseDriver = "mysql"
	_, err := NewApp(ctx, cfg, logging.NewNop())
	assert.ErrorContains(t, err, "db init error")

	cfg = testConfig(t)
	cfg.SessionStore = "memcached"
	_, err = NewApp(ctx, cfg, logging.NewNop())
	assert.ErrorContains(t, err, "unknown session store")

	cfg = testConfig(t)
	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisAddr = "127.0.0.1:1"
	_, err = NewApp(ctx, cfg, logging.NewNop())
	assert.ErrorContains(t, err, "redis init error")
}

func TestRun_ListenError(t *testing.T) {
	cfg := testConfig(t)
	cfg.EndpointAddrHTTP = "bad-address"

	app, err := NewApp(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("app did not stop")
	}
}
