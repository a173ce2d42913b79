package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/go-oanda"
)

const defaultTimeout = 30 * time.Second

// Config is everything needed to construct a client: where to connect
// and how to authenticate. The account ID is optional; account-scoped
// helpers need it, the instrument endpoints do not.
type Config struct {
	Host       string
	StreamHost string
	Token      string
	AccountID  string
	Timeout    time.Duration
}

// configTmp mirrors the YAML file layout; defaults are filled in after
// decoding.
type configTmp struct {
	Host       string        `yaml:"host"`
	StreamHost string        `yaml:"stream_host,omitempty"`
	Token      string        `yaml:"token"`
	AccountID  string        `yaml:"account_id,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}

// FromEnv reads configuration from the environment, loading a .env
// file first when one exists. OANDA_HOST and OANDA_KEY are required;
// OANDA_STREAM_HOST, OANDA_ACCOUNT and OANDA_TIMEOUT are optional.
func FromEnv() (Config, error) {
	// Missing .env is fine, the variables may be set directly.
	_ = godotenv.Load()

	c := Config{
		Host:       os.Getenv("OANDA_HOST"),
		StreamHost: os.Getenv("OANDA_STREAM_HOST"),
		Token:      os.Getenv("OANDA_KEY"),
		AccountID:  os.Getenv("OANDA_ACCOUNT"),
		Timeout:    defaultTimeout,
	}

	if v := os.Getenv("OANDA_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect OANDA_TIMEOUT env (correct format is 30s), error: %w", err)
		}
		c.Timeout = d
	}

	return c, c.validate()
}

// FromYaml reads configuration from a YAML file.
func FromYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, fmt.Errorf("incorrect yaml config: %w", err)
	}

	c := Config{
		Host:       tmp.Host,
		StreamHost: tmp.StreamHost,
		Token:      tmp.Token,
		AccountID:  tmp.AccountID,
		Timeout:    tmp.Timeout,
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}

	return c, c.validate()
}

// Client builds a client from the configuration. Extra options are
// applied after the ones derived from the config, so they win.
func (c Config) Client(opts ...oanda.Option) *oanda.Client {
	base := []oanda.Option{oanda.WithTimeout(c.Timeout)}
	if c.StreamHost != "" {
		base = append(base, oanda.WithStreamHost(c.StreamHost))
	}
	return oanda.NewClient(c.Host, c.Token, append(base, opts...)...)
}

func (c Config) validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is not set (OANDA_HOST env or 'host' yaml param), use %q for demo accounts", oanda.PracticeHost)
	}
	if c.Token == "" {
		return fmt.Errorf("API token is not set (OANDA_KEY env or 'token' yaml param)")
	}
	return nil
}
