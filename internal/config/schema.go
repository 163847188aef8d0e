package config

import (
	"time"

	"github.com/gyaneshwarpardhi/evochain/internal/condition"
)

// Config is the top-level config file structure. The same tags serve the
// YAML and TOML encodings.
type Config struct {
	Version string      `yaml:"version" toml:"version" validate:"required"`
	Engine  EngineConf  `yaml:"engine" toml:"engine"`
	Store   StoreConf   `yaml:"store" toml:"store"`
	Lexicon LexiconConf `yaml:"lexicon" toml:"lexicon"`
}

// EngineConf holds tunable concurrency settings.
type EngineConf struct {
	Workers          int `yaml:"workers" toml:"workers" validate:"gte=1,lte=1024"`
	QueueDepth       int `yaml:"queue_depth" toml:"queue_depth" validate:"gte=1"`
	ResolveTimeoutMs int `yaml:"resolve_timeout_ms" toml:"resolve_timeout_ms" validate:"gte=1"`
}

// ResolveTimeout returns the per-request resolution timeout.
func (c EngineConf) ResolveTimeout() time.Duration {
	return time.Duration(c.ResolveTimeoutMs) * time.Millisecond
}

// StoreConf selects where imported species details are kept.
type StoreConf struct {
	Backend       string `yaml:"backend" toml:"backend" validate:"oneof=memory redis"`
	RedisAddr     string `yaml:"redis_addr" toml:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `yaml:"redis_password" toml:"redis_password"`
	RedisDB       int    `yaml:"redis_db" toml:"redis_db" validate:"gte=0"`
	KeyPrefix     string `yaml:"key_prefix" toml:"key_prefix"`
	TTLSeconds    int    `yaml:"ttl_seconds" toml:"ttl_seconds" validate:"gte=0"`
}

// TTL returns the expiry of stored details; zero means none.
func (c StoreConf) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// LexiconConf overrides the built-in display tables.
type LexiconConf struct {
	Separator string            `yaml:"separator" toml:"separator"`
	Items     map[string]string `yaml:"items" toml:"items"`
	Locations map[string]string `yaml:"locations" toml:"locations"`
	Types     map[string]string `yaml:"types" toml:"types"`
}

// Build merges the overrides over condition.DefaultLexicon.
func (c LexiconConf) Build() *condition.Lexicon {
	return condition.DefaultLexicon().Merge(&condition.Lexicon{
		Separator: c.Separator,
		Items:     c.Items,
		Locations: c.Locations,
		Types:     c.Types,
	})
}

// Describer builds a condition describer for this config.
func (c *Config) Describer() *condition.Describer {
	return condition.NewDescriber(c.Lexicon.Build())
}
