// Package config loads monthgraph settings from a TOML file.
//
// Every field has a default, so a missing file or an empty one is valid.
// A complete file looks like:
//
//	[display]
//	density_dpi = 420
//	reference_dpi = 160
//	screen_width = 1080
//
//	[dimensions]
//	graph_padding = 16   # dp, referenced by [graph] padding
//
//	[graph]
//	height = 240
//	padding = "graph_padding"
//	labels = true
//	style = "rounded"
//
//	[colors]
//	past = "#339eb2"
//	today = "#ffffff"
//	future = "#545a8c"
//	label = "#66ffffff"
//
//	[cache]
//	backend = "file"   # none | file | redis | mongo
//	key_prefix = ""    # namespace for every cache key
//
//	[server]
//	addr = ":8080"
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/monthgraph/pkg/cache"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
	"github.com/matzehuels/monthgraph/pkg/errors"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Backends lists the accepted cache backends.
var Backends = []string{BackendNone, BackendFile, BackendRedis, BackendMongo}

// Config is the root of the configuration file.
type Config struct {
	Display    Display            `toml:"display"`
	Dimensions map[string]float64 `toml:"dimensions"`
	Graph      Graph              `toml:"graph"`
	Colors     styles.PaletteSpec `toml:"colors"`
	Cache      Cache              `toml:"cache"`
	Server     Server             `toml:"server"`
}

// Display describes the host surface.
type Display struct {
	DensityDPI   float64 `toml:"density_dpi"`
	ReferenceDPI float64 `toml:"reference_dpi"`
	ScreenWidth  float64 `toml:"screen_width"`
}

// Graph holds the month graph defaults.
type Graph struct {
	Height  float64 `toml:"height"`
	Padding string  `toml:"padding"`
	Labels  bool    `toml:"labels"`
	Style   string  `toml:"style"`
}

// Cache selects and configures the artifact cache.
type Cache struct {
	Backend         string `toml:"backend"`
	KeyPrefix       string `toml:"key_prefix"`
	Dir             string `toml:"dir"`
	RedisAddr       string `toml:"redis_addr"`
	RedisPassword   string `toml:"redis_password"`
	RedisDB         int    `toml:"redis_db"`
	RedisPrefix     string `toml:"redis_prefix"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures `monthgraph serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// DefaultPaddingID is the dimension the default config pads with.
const DefaultPaddingID = "graph_padding"

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: Display{
			DensityDPI:   metrics.ReferenceDPI,
			ReferenceDPI: metrics.ReferenceDPI,
			ScreenWidth:  720,
		},
		Dimensions: map[string]float64{DefaultPaddingID: 16},
		Graph: Graph{
			Height:  240,
			Padding: DefaultPaddingID,
			Labels:  true,
			Style:   styles.StyleRounded,
		},
		Cache: Cache{
			Backend:         BackendFile,
			RedisAddr:       "localhost:6379",
			RedisPrefix:     "monthgraph:",
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   "monthgraph",
			MongoCollection: "cache",
		},
		Server: Server{Addr: ":8080"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/monthgraph/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "monthgraph", "config.toml"), nil
}

// Load reads path on top of [Default]. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when given. With an empty path it loads the
// default location if a file exists there and falls back to [Default].
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(def); err != nil {
		return Default(), nil
	}
	return Load(def)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Display.DensityDPI <= 0 || c.Display.ReferenceDPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "display densities must be positive")
	}
	if err := errors.ValidateDimensions(c.Display.ScreenWidth, c.Graph.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "display")
	}
	for id, dp := range c.Dimensions {
		if err := errors.ValidateDimensionID(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "dimensions")
		}
		if dp < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "dimension %q cannot be negative", id)
		}
	}
	if c.Graph.Padding != "" && c.Graph.Padding != month.PaddingNone {
		if _, ok := c.Dimensions[c.Graph.Padding]; !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "graph padding %q is not a defined dimension", c.Graph.Padding)
		}
	}
	if _, ok := styles.ByName(c.Graph.Style); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown style %q (must be one of: %s)", c.Graph.Style, strings.Join(styles.Names(), ", "))
	}
	if !slices.Contains(Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be one of: %s)", c.Cache.Backend, strings.Join(Backends, ", "))
	}
	if _, err := c.Colors.Resolve(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "colors")
	}
	return nil
}

// Metrics builds a static metrics provider from the display section.
func (c Config) Metrics() *metrics.Static {
	dims := make(map[string]float64, len(c.Dimensions))
	for k, v := range c.Dimensions {
		dims[k] = v
	}
	return &metrics.Static{
		DensityDPI:   c.Display.DensityDPI,
		ReferenceDPI: c.Display.ReferenceDPI,
		Width:        c.Display.ScreenWidth,
		Dimensions:   dims,
	}
}

// Palette resolves the colors section on top of the default palette.
func (c Config) Palette() (styles.Palette, error) {
	return c.Colors.Resolve()
}

// PaddingID returns the configured padding dimension, or [month.PaddingNone].
func (c Config) PaddingID() string {
	if c.Graph.Padding == "" {
		return month.PaddingNone
	}
	return c.Graph.Padding
}

// Keyer returns the cache keyer, scoped by the key_prefix setting.
func (c Config) Keyer() cache.Keyer {
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Cache.KeyPrefix)
}

// OpenCache opens the configured cache backend.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendFile:
		dir := c.Cache.Dir
		if dir == "" {
			d, err := cache.DefaultDir()
			if err != nil {
				return nil, fmt.Errorf("cache dir: %w", err)
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return fc, nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
			Prefix:   c.Cache.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	case BackendMongo:
		mc, err := cache.NewMongoCache(ctx, cache.MongoOptions{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDatabase,
			Collection: c.Cache.MongoCollection,
		})
		if err != nil {
			return nil, err
		}
		return mc, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
}
