// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
// The DevServer group is checked separately by [DevServerConfig.validate]
// because the web client never reads it.
func (cfg *StructuredConfig) validate() error {
	if err := validateOrigin(cfg.Client.BaseURL, "http", "https"); err != nil || cfg.Client.Timeout <= 0 {
		return fmt.Errorf("%w: base url %q, timeout %s", ErrInvalidClientConfigs, cfg.Client.BaseURL, cfg.Client.Timeout)
	}

	if cfg.Web.HTTPAddress == "" || !strings.HasPrefix(cfg.Web.MountAnchor, "#") || len(cfg.Web.MountAnchor) < 2 {
		return fmt.Errorf("%w: address %q, mount anchor %q", ErrInvalidWebConfigs, cfg.Web.HTTPAddress, cfg.Web.MountAnchor)
	}

	if !strings.HasPrefix(cfg.Web.BasePath, "/") {
		return fmt.Errorf("%w: base path %q must start with /", ErrInvalidWebConfigs, cfg.Web.BasePath)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.SourceDir == "" {
		return fmt.Errorf("%w: address %q, source dir %q", ErrInvalidDevServerConfigs, cfg.HTTPAddress, cfg.SourceDir)
	}

	if err := validateOrigin(cfg.APITarget, "http", "https"); err != nil {
		return fmt.Errorf("%w: api target: %w", ErrInvalidDevServerConfigs, err)
	}

	if err := validateOrigin(cfg.WSTarget, "ws", "wss", "http", "https"); err != nil {
		return fmt.Errorf("%w: ws target: %w", ErrInvalidDevServerConfigs, err)
	}

	return nil
}

func validateOrigin(raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}

	return fmt.Errorf("%q: unsupported scheme %q", raw, u.Scheme)
}
