// Package config loads the engine configuration from YAML.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/solumex/exchange-core/internal/domain"
	"github.com/solumex/exchange-core/internal/matching"
)

type AssetConfig struct {
	Symbol   string `yaml:"symbol" validate:"required"`
	Decimals int32  `yaml:"decimals" validate:"gte=0,lte=18"`
}

type PairConfig struct {
	Base  AssetConfig `yaml:"base" validate:"required"`
	Quote AssetConfig `yaml:"quote" validate:"required"`
}

type Config struct {
	Algorithm string       `yaml:"algorithm" validate:"required,oneof=continuous otc"`
	Pairs     []PairConfig `yaml:"pairs" validate:"required,min=1,dive"`
}

var (
	validate     *validator.Validate
	onceValidate sync.Once
)

func getValidator() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Load reads and validates the YAML config at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// MatchingAlgorithm returns the configured algorithm name.
func (c *Config) MatchingAlgorithm() matching.Algorithm {
	return matching.Algorithm(c.Algorithm)
}

// AssetPairs converts the configured pairs into domain values.
func (c *Config) AssetPairs() []domain.AssetPair {
	pairs := make([]domain.AssetPair, 0, len(c.Pairs))
	for _, p := range c.Pairs {
		pairs = append(pairs, domain.AssetPair{
			Base:  domain.Asset{Symbol: p.Base.Symbol, Decimals: p.Base.Decimals},
			Quote: domain.Asset{Symbol: p.Quote.Symbol, Decimals: p.Quote.Decimals},
		})
	}
	return pairs
}
