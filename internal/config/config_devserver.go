package config

import (
	"fmt"
)

// DevServerConfig is the view of [StructuredConfig] the development server
// runs with. It embeds the dev server group and carries the web client
// config the proxied application is built from.
type DevServerConfig struct {
	DevServer

	// App is the full web client configuration. The dev server builds the
	// same application the web binary ships.
	App *StructuredConfig
}

// GetDevServerConfig builds and validates the dev server configuration from
// the merged structured configuration.
func GetDevServerConfig(args []string) (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		DevServer: cfg.DevServer,
		App:       cfg,
	}

	if err = devCfg.validate(); err != nil {
		return nil, err
	}

	return devCfg, nil
}
