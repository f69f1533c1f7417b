package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
user = "booking"
password = "secret"
dbname = "booking_calendar"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(minimalConfig)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Equal(t, 3, cfg.Booking.SerializationRetries)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "primary", cfg.CalendarSync.CalendarID)
	assert.Equal(t, "host=localhost port=5432 user=booking password=secret dbname=booking_calendar sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := minimalConfig + `
[server]
http_port = 9090

[booking]
timezone = "Europe/Berlin"

[events.kafka]
enabled = true
brokers = "kafka-1:9092, kafka-2:9092,"
topic = "changes"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Kafka.BrokerList())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		extra  string
		errMsg string
	}{
		{name: "bad timezone", extra: "[booking]\ntimezone = \"Mars/Olympus\"", errMsg: "booking.timezone"},
		{name: "redis without addr", extra: "[events.redis]\nenabled = true", errMsg: "events.redis.addr"},
		{name: "kafka without brokers", extra: "[events.kafka]\nenabled = true", errMsg: "events.kafka.brokers"},
		{name: "sync without url", extra: "[calendar_sync]\nenabled = true", errMsg: "calendar_sync.url"},
		{name: "bad port", extra: "[server]\nhttp_port = 70000", errMsg: "server.http_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(minimalConfig + "\n" + tt.extra)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_RequiresDatabase(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
