package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/accs-uaa/avdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "avdb"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "avdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "avdb", "logs"),
		},
		{
			msg: "datasets file",
			fn:  config.DatasetsFilePath,
			res: filepath.Join(tempHome, ".config", "avdb", "datasets.yaml"),
		},
		{
			msg: "registry file",
			fn:  config.RegistryFilePath,
			res: filepath.Join(tempHome, ".config", "avdb", "registry.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "akveg", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 5_000, cfg.Database.BatchSize)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []config.Option
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "sets database fields",
			opts: []config.Option{
				config.OptDatabaseHost("db.example.org"),
				config.OptDatabasePort(5433),
				config.OptDatabaseBatchSize(1000),
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "db.example.org", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, 1000, cfg.Database.BatchSize)
			},
		},
		{
			name: "rejects empty host",
			opts: []config.Option{config.OptDatabaseHost("  ")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "localhost", cfg.Database.Host)
			},
		},
		{
			name: "rejects invalid log level",
			opts: []config.Option{config.OptLogLevel("verbose")},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name: "rejects negative jobs number",
			opts: []config.Option{config.OptJobsNumber(-2)},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
			},
		},
		{
			name: "sets runtime load fields",
			opts: []config.Option{
				config.OptLoadDatasetIDs([]int{25, 44}),
				config.OptLoadOutputDir("/tmp/out"),
				config.OptLoadDryRun(true),
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []int{25, 44}, cfg.Load.DatasetIDs)
				assert.Equal(t, "/tmp/out", cfg.Load.OutputDir)
				assert.True(t, cfg.Load.DryRun)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update(tt.opts)
			tt.check(t, cfg)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	orig := config.New()
	orig.Update([]config.Option{
		config.OptDatabaseHost("db.internal"),
		config.OptDatabaseDatabase("akveg_build"),
		config.OptLogFormat("text"),
		config.OptJobsNumber(4),
	})

	clone := config.New()
	clone.Update(orig.ToOptions())

	assert.Equal(t, orig.Database, clone.Database)
	assert.Equal(t, orig.Log, clone.Log)
	assert.Equal(t, orig.JobsNumber, clone.JobsNumber)
}
