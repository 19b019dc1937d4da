package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mytheresa/product-catalog/app/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewUsesJSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	l := New(&config.Config{AppEnv: "production"}, &buf)

	l.Info("catalog ready", "tables", 10)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "catalog ready", line["msg"])
	assert.Equal(t, "catalog", line["service"])
	assert.EqualValues(t, 10, line["tables"])
}

func TestNewUsesTextOutsideProduction(t *testing.T) {
	var buf bytes.Buffer
	l := New(&config.Config{AppEnv: "local"}, &buf)

	l.Debug("debug enabled")

	assert.Contains(t, buf.String(), "msg=\"debug enabled\"")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, gormLevel("silent"))
	assert.Equal(t, gormlogger.Error, gormLevel("error"))
	assert.Equal(t, gormlogger.Info, gormLevel("info"))
	assert.Equal(t, gormlogger.Warn, gormLevel("warn"))
	assert.Equal(t, gormlogger.Warn, gormLevel("bogus"))
}

func TestGormLoggerKeepsSeverity(t *testing.T) {
	statement := func() (string, int64) { return "SELECT 1", 1 }

	testCases := []struct {
		name      string
		dbLevel   string
		trace     func(l gormlogger.Interface)
		wantLevel string
		wantMsg   string
	}{
		{
			name:    "Failed statement",
			dbLevel: "warn",
			trace: func(l gormlogger.Interface) {
				l.Trace(context.Background(), time.Now(), statement, errors.New("connection reset"))
			},
			wantLevel: "ERROR",
			wantMsg:   "query failed",
		},
		{
			name:    "Slow statement",
			dbLevel: "warn",
			trace: func(l gormlogger.Interface) {
				l.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)
			},
			wantLevel: "WARN",
			wantMsg:   "slow query",
		},
		{
			name:    "Statement at info",
			dbLevel: "info",
			trace: func(l gormlogger.Interface) {
				l.Trace(context.Background(), time.Now(), statement, nil)
			},
			wantLevel: "INFO",
			wantMsg:   "query",
		},
		{
			name:    "Record not found is not an error",
			dbLevel: "warn",
			trace: func(l gormlogger.Interface) {
				l.Trace(context.Background(), time.Now(), statement, gormlogger.ErrRecordNotFound)
			},
		},
		{
			name:    "Error message",
			dbLevel: "error",
			trace: func(l gormlogger.Interface) {
				l.Error(context.Background(), "migrate %s", "products")
			},
			wantLevel: "ERROR",
			wantMsg:   "migrate products",
		},
		{
			name:    "Silent",
			dbLevel: "silent",
			trace: func(l gormlogger.Interface) {
				l.Trace(context.Background(), time.Now(), statement, errors.New("connection reset"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{AppEnv: "production", DBLogLevel: tc.dbLevel}

			tc.trace(GormLogger(cfg, New(cfg, &buf)))

			if tc.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			var line map[string]any
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
			assert.Equal(t, tc.wantLevel, line["level"])
			assert.Equal(t, tc.wantMsg, line["msg"])
			assert.Equal(t, "gorm", line["component"])
		})
	}
}
