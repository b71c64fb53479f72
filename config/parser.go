// Package config contains the optional configuration file of the checkin tool.
package config

import (
	"encoding/json"
	"net/url"
	"os"

	"github.com/ooni/checkinv2/internal/probeservices"
	"github.com/pkg/errors"
)

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return c, nil
}

// ParseConfig returns config from JSON bytes.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	c.Default()

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return &c, nil
}

// Config for the checkin tool
type Config struct {
	// ProbeServicesURL is the base URL of the backend.
	ProbeServicesURL string `json:"probe_services_url"`

	// UserAgent is the User-Agent header to use.
	UserAgent string `json:"user_agent"`

	// OnlyCategories contains the default category codes.
	OnlyCategories []string `json:"only_categories"`
}

// New returns the config we use when there is no config file.
func New() *Config {
	c := &Config{}
	c.Default()
	return c
}

// Default fills the empty fields with default values
func (c *Config) Default() {
	if c.ProbeServicesURL == "" {
		c.ProbeServicesURL = probeservices.DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = probeservices.DefaultUserAgent
	}
	if c.OnlyCategories == nil {
		c.OnlyCategories = []string{}
	}
}

// ErrInvalidProbeServicesURL indicates that the probe services URL is invalid.
var ErrInvalidProbeServicesURL = errors.New("invalid probe services URL")

// Validate the config
func (c *Config) Validate() error {
	URL, err := url.Parse(c.ProbeServicesURL)
	if err != nil {
		return errors.Wrap(ErrInvalidProbeServicesURL, err.Error())
	}
	if (URL.Scheme != "https" && URL.Scheme != "http") || URL.Host == "" {
		return errors.Wrapf(ErrInvalidProbeServicesURL, "unsupported URL: %s", c.ProbeServicesURL)
	}
	return nil
}
