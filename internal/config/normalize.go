package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAPI()
	c.normalizeClips()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("PODCLIP_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ManifestDir) == "" {
		c.Paths.ManifestDir = filepath.Join(c.Paths.DataDir, defaultManifestDirName)
	}
	if c.Paths.ManifestDir, err = expandPath(c.Paths.ManifestDir); err != nil {
		return fmt.Errorf("paths.manifest_dir: %w", err)
	}
	if value, ok := os.LookupEnv("PODCLIP_API_BIND"); ok && strings.TrimSpace(value) != "" {
		c.Paths.APIBind = value
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeAPI() {
	if len(c.API.Tokens) > 0 {
		tokens := make(map[string]string, len(c.API.Tokens))
		for token, tenant := range c.API.Tokens {
			token = strings.TrimSpace(token)
			tenant = strings.TrimSpace(tenant)
			if token == "" {
				continue
			}
			tokens[token] = tenant
		}
		c.API.Tokens = tokens
	}
	if c.API.ReadTimeout <= 0 {
		c.API.ReadTimeout = defaultReadTimeoutSecs
	}
	if c.API.WriteTimeout <= 0 {
		c.API.WriteTimeout = defaultWriteTimeoutSecs
	}
	origins := c.API.AllowedOrigins[:0]
	for _, origin := range c.API.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	c.API.AllowedOrigins = origins
}

func (c *Config) normalizeClips() {
	c.Clips.DefaultStatus = strings.ToLower(strings.TrimSpace(c.Clips.DefaultStatus))
	if c.Clips.DefaultStatus == "" {
		c.Clips.DefaultStatus = defaultClipStatus
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("PODCLIP_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
