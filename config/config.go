package config

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v2"

	"github.com/zonesec/zonesec/log"
)

// Config is the complete tool configuration. Every field carries a usable
// default so the tool works without a config file at all.
type Config struct {
	Log        log.Config       `yaml:"log"`
	Cloudflare CloudflareConfig `yaml:"cloudflare"`
	Harden     HardenConfig     `yaml:"harden"`
	Preload    PreloadConfig    `yaml:"preload"`
}

// CloudflareConfig holds the control plane endpoint and credentials.
// Credentials supplied via CLI flags or environment take precedence.
type CloudflareConfig struct {
	BaseURL  string   `yaml:"baseUrl" default:"https://api.cloudflare.com/client/v4"`
	Token    string   `yaml:"token"`
	Email    string   `yaml:"email"`
	APIKey   string   `yaml:"apiKey"`
	Timeout  Duration `yaml:"timeout" default:"10s"`
	Attempts uint     `yaml:"attempts" default:"1"`
}

// HardenConfig tunes the hardening operations themselves.
type HardenConfig struct {
	// ApexConflictTypes is probed in order at the apex before the AAAA
	// placeholder is created. The first matching type blocks creation.
	ApexConflictTypes  QTypeList `yaml:"apexConflictTypes" default:"[\"AAAA\",\"A\",\"CNAME\"]"`
	RecordTTL          int       `yaml:"recordTtl" default:"120"`
	PlaceholderAddress string    `yaml:"placeholderAddress" default:"100::"`
	SPFPolicy          string    `yaml:"spfPolicy" default:"v=spf1 -all"`
	ProxyPlaceholder   bool      `yaml:"proxyPlaceholder" default:"true"`
}

// PreloadConfig holds the HSTS preload submission endpoint.
type PreloadConfig struct {
	Endpoint string   `yaml:"endpoint" default:"https://hstspreload.org/api/v2/submit"`
	Timeout  Duration `yaml:"timeout" default:"20s"`
	Attempts uint     `yaml:"attempts" default:"1"`
}

// LoadConfig creates new config from YAML file at the given path. A missing
// file is only an error when mandatory is set.
func LoadConfig(path string, mandatory bool) (*Config, error) {
	cfg := Config{}
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("can't apply default values: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mandatory {
			return &cfg, nil
		}

		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("wrong file structure: %w", err)
	}

	return &cfg, nil
}
