package database

import (
	"testing"
	"time"

	"github.com/gosm1/pureperfumes/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	t.Run("pool settings come from config", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host:            "db.example.com",
			Port:            5433,
			User:            "app",
			Password:        "secret",
			Database:        "pureperfumes",
			MaxConnections:  40,
			MinConnections:  8,
			MaxConnLifetime: 600,
			MaxConnIdleTime: 120,
		}

		pc, err := poolConfig(cfg)
		require.NoError(t, err)

		assert.Equal(t, int32(40), pc.MaxConns)
		assert.Equal(t, int32(8), pc.MinConns)
		assert.Equal(t, 600*time.Second, pc.MaxConnLifetime)
		assert.Equal(t, 120*time.Second, pc.MaxConnIdleTime)
		assert.Equal(t, "db.example.com", pc.ConnConfig.Host)
		assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
		assert.Equal(t, "pureperfumes", pc.ConnConfig.Database)
	})

	t.Run("unparseable connection string", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host:     "bad host",
			User:     "app user",
			Database: "db name",
		}

		_, err := poolConfig(cfg)
		assert.Error(t, err)
	})
}
