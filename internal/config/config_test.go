package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerequity-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("PEQ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("PEQ_EQUITY_MAX_TRIALS", "50000")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal(5000, cfg.Equity.DefaultTrials)
	a.Equal(2, cfg.Equity.Workers)

	// environment beats the file
	a.Equal(50000, cfg.Equity.MaxTrials)

	// ensure we aren't handing out a shared pointer
	cfg.Log.Level = "bad"
	a.Equal("debug", Instance().Log.Level)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("PEQ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("./sql", cfg.MigrationsPath)
	a.Equal(10000, cfg.Equity.DefaultTrials)
	a.Equal(1000000, cfg.Equity.MaxTrials)
	a.Empty(cfg.PGDSN)
}
