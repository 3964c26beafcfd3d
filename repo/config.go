package repo

import (
	"fmt"
	"path/filepath"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/object/storage"
	"github.com/named-data/ndnx/std/utils/toolutils"
)

type Config struct {
	Core    CoreConfig         `json:"core"`
	Decoder enc.DecoderOptions `json:"decoder"`
	Face    FaceConfig         `json:"face"`
	Store   StoreConfig        `json:"store"`
	Repo    RepoConfig         `json:"repo"`
}

type CoreConfig struct {
	// Log level: TRACE, DEBUG, INFO, WARN or ERROR.
	LogLevel string `json:"log_level"`
	// Log file; stderr if empty.
	LogFile string `json:"log_file"`
}

type FaceConfig struct {
	// tcp, tcp4, tcp6, unix, ws, wss or quic.
	Network string `json:"network"`
	Addr    string `json:"addr"`
}

type StoreConfig struct {
	// badger, sqlite or memory.
	Backend string `json:"backend"`
	// Directory for badger, database file for sqlite.
	Path string `json:"path"`
	// Oldest objects are evicted beyond this count. Zero keeps everything.
	MaxObjects int `json:"max_objects"`
}

type RepoConfig struct {
	// Name prefixes served and stored by the repo.
	Prefixes []string `json:"prefixes"`

	// Parsed Prefixes.
	PrefixesN []enc.Name `json:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			LogLevel: "INFO",
		},
		Decoder: enc.DefaultDecoderOptions(),
		Face: FaceConfig{
			Network: "tcp",
			Addr:    "127.0.0.1:9695",
		},
		Store: StoreConfig{
			Backend: storage.BackendBadger,
			Path:    "", // invalid
		},
	}
}

// ReadConfig loads a YAML configuration file over the defaults and parses it.
func ReadConfig(file string) (*Config, error) {
	config := DefaultConfig()
	if err := toolutils.ReadYaml(config, file); err != nil {
		return nil, err
	}
	if err := config.Parse(); err != nil {
		return nil, err
	}
	return config, nil
}

// Parse validates the configuration and fills the derived fields.
func (c *Config) Parse() (err error) {
	if _, err = log.ParseLevel(c.Core.LogLevel); err != nil {
		return err
	}

	if c.Decoder.MaxDocumentSize <= 0 {
		return fmt.Errorf("decoder.max_document_size must be positive")
	}
	if c.Decoder.TapeSize < 0 || c.Decoder.TapeIncrement < 0 {
		return fmt.Errorf("decoder tape sizes must not be negative")
	}

	if c.Face.Network == "" || c.Face.Addr == "" {
		return fmt.Errorf("face.network and face.addr must be set")
	}

	switch c.Store.Backend {
	case storage.BackendMemory:
	case storage.BackendBadger, storage.BackendSqlite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path must be set for %s", c.Store.Backend)
		}
		if c.Store.Path, err = filepath.Abs(c.Store.Path); err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
	default:
		return fmt.Errorf("unknown store.backend: %s", c.Store.Backend)
	}
	if c.Store.MaxObjects < 0 {
		return fmt.Errorf("store.max_objects must not be negative")
	}

	if len(c.Repo.Prefixes) == 0 {
		return fmt.Errorf("repo.prefixes must not be empty")
	}
	c.Repo.PrefixesN = make([]enc.Name, 0, len(c.Repo.Prefixes))
	for _, p := range c.Repo.Prefixes {
		name, err := enc.NameFromStr(p)
		if err != nil {
			return fmt.Errorf("failed to parse repo prefix (%s): %w", p, err)
		}
		c.Repo.PrefixesN = append(c.Repo.PrefixesN, name)
	}

	return nil
}
