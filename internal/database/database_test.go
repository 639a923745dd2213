package database

import (
	"context"
	"strconv"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/podcast-network/internal/config"
)

func startContainer(t *testing.T, req tc.ContainerRequest) (string, int) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port(req.ExposedPorts[0]))
	require.NoError(t, err)
	return host, port.Int()
}

func TestConnectAndMigrate(t *testing.T) {
	host, port := startContainer(t, tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	})

	cfg := config.PostgresConfig{
		Host: host, Port: port, User: "postgres", Password: "password", DB: "testdb",
		MaxOpenConns: 4, MaxIdleConns: 2,
	}

	ctx := context.Background()
	db, err := Connect(ctx, cfg)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(cfg.DSN()))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(cfg.DSN()))

	for _, table := range []string{"users", "hosts", "shows", "episodes", "advertisers"} {
		var exists bool
		err := db.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Connect(ctx, config.PostgresConfig{Host: "127.0.0.1", Port: 1, User: "u", DB: "d"})
	assert.Error(t, err)
}

func TestNewRedis(t *testing.T) {
	host, port := startContainer(t, tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	})

	rdb, err := NewRedis(context.Background(), config.RedisConfig{Host: host, Port: port, PoolSize: 2})
	require.NoError(t, err)
	defer rdb.Close()

	assert.Equal(t, host+":"+strconv.Itoa(port), rdb.Options().Addr)
}
