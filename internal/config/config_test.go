package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solumex/exchange-core/internal/matching"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
algorithm: otc
pairs:
  - base: { symbol: BTC, decimals: 8 }
    quote: { symbol: USDT, decimals: 2 }
  - base: { symbol: ETH, decimals: 8 }
    quote: { symbol: USDT, decimals: 2 }
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, matching.AlgorithmOTC, cfg.MatchingAlgorithm())

	pairs := cfg.AssetPairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "BTC/USDT", pairs[0].Symbol())
	assert.Equal(t, int32(8), pairs[0].Base.Decimals)
	assert.Equal(t, int32(2), pairs[0].Quote.Decimals)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	t.Run("unknown algorithm", func(t *testing.T) {
		path := writeConfig(t, `
algorithm: vickrey
pairs:
  - base: { symbol: BTC, decimals: 8 }
    quote: { symbol: USDT, decimals: 2 }
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("no pairs", func(t *testing.T) {
		path := writeConfig(t, "algorithm: continuous\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing symbol", func(t *testing.T) {
		path := writeConfig(t, `
algorithm: continuous
pairs:
  - base: { decimals: 8 }
    quote: { symbol: USDT, decimals: 2 }
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "algorithm: [")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
