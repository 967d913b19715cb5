package mindiff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m-Py/minDiff/internal/logger"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 2, cfg.SetsN)
	require.Equal(t, []string{"mean"}, cfg.Equalizers)
	require.Equal(t, 100, cfg.Repetitions)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, 10000, cfg.MaxBalanceRejects)
	require.Equal(t, "group", cfg.LabelColumn)
	require.False(t, cfg.Exact)
	require.Empty(t, cfg.ScaleCriteria)
	require.Empty(t, cfg.NominalCriteria)
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig().SetsN, cfg.SetsN)
		require.Equal(t, DefaultConfig().Repetitions, cfg.Repetitions)
		require.Equal(t, DefaultConfig().Workers, cfg.Workers)
		require.Equal(t, DefaultConfig().MaxBalanceRejects, cfg.MaxBalanceRejects)
		require.Equal(t, DefaultConfig().LabelColumn, cfg.LabelColumn)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := Config{
			SetsN:       4,
			Repetitions: 5000,
			Workers:     8,
			Equalizers:  []string{"sd"},
			LabelColumn: "set",
		}
		SetDefaults(&cfg)

		require.Equal(t, 4, cfg.SetsN)
		require.Equal(t, 5000, cfg.Repetitions)
		require.Equal(t, 8, cfg.Workers)
		require.Equal(t, []string{"sd"}, cfg.Equalizers)
		require.Equal(t, "set", cfg.LabelColumn)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.ScaleCriteria = []string{"iq"}

		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("single group is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.SetsN = 1
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("no criteria is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.ScaleCriteria = nil
		require.ErrorIs(t, cfg.Validate(), ErrNoCriteria)
	})

	t.Run("three nominal criteria are rejected", func(t *testing.T) {
		cfg := valid()
		cfg.NominalCriteria = []string{"a", "b", "c"}
		require.ErrorIs(t, cfg.Validate(), ErrTooManyNominal)
	})

	t.Run("one nominal criterion needs one tolerance", func(t *testing.T) {
		cfg := valid()
		cfg.NominalCriteria = []string{"gender"}
		require.ErrorIs(t, cfg.Validate(), ErrToleranceMismatch)

		cfg.Tolerances = []float64{1}
		require.NoError(t, cfg.Validate())
	})

	t.Run("two nominal criteria need three tolerances", func(t *testing.T) {
		cfg := valid()
		cfg.NominalCriteria = []string{"gender", "site"}
		cfg.Tolerances = []float64{1, 1}
		require.ErrorIs(t, cfg.Validate(), ErrToleranceMismatch)

		cfg.Tolerances = []float64{1, 1, 2}
		require.NoError(t, cfg.Validate())
	})

	t.Run("negative tolerance is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.NominalCriteria = []string{"gender"}
		cfg.Tolerances = []float64{-1}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("infinite tolerance is accepted", func(t *testing.T) {
		cfg := valid()
		cfg.NominalCriteria = []string{"gender"}
		cfg.Tolerances = []float64{math.Inf(1)}
		require.NoError(t, cfg.Validate())
	})

	t.Run("zero repetitions rejected in random mode", func(t *testing.T) {
		cfg := valid()
		cfg.Repetitions = 0
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("zero repetitions allowed in exact mode", func(t *testing.T) {
		cfg := valid()
		cfg.Exact = true
		cfg.Repetitions = 0
		require.NoError(t, cfg.Validate())
	})

	t.Run("zero workers rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Workers = 0
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	// Warnings must never panic, whatever the combination
	cfg := DefaultConfig()
	cfg.Exact = true
	cfg.Workers = 8
	cfg.NominalCriteria = []string{"gender"}
	cfg.MaxBalanceRejects = 10

	require.NotPanics(t, func() {
		cfg.ValidateWithWarnings(logger.NewNop())
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.Equal(t, 50, cfg.Repetitions)
	require.Equal(t, int64(1), cfg.Seed)
	require.Equal(t, 1000, cfg.MaxBalanceRejects)

	cfg.ScaleCriteria = []string{"iq"}
	require.NoError(t, cfg.Validate())
}
