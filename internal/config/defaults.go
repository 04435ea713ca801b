package config

import "time"

// Built-in defaults mirror the values the web client ships with.
const (
	DefaultClientBaseURL     = "http://127.0.0.1:6000"
	DefaultClientTimeout     = 30 * time.Second
	DefaultClientContentType = "application/json"

	DefaultWebAddress        = "127.0.0.1:8080"
	DefaultMountAnchor       = "#app"
	DefaultBasePath          = "/"
	DefaultWebRequestTimeout = 60 * time.Second

	DefaultDevAddress   = "localhost:5174"
	DefaultDevSourceDir = "./internal/views"
	DefaultDevAPITarget = "http://127.0.0.1:6000"
	DefaultDevWSTarget  = "ws://127.0.0.1:6000"

	DefaultLogLevel = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Client: Client{
			BaseURL:     DefaultClientBaseURL,
			Timeout:     DefaultClientTimeout,
			ContentType: DefaultClientContentType,
		},
		Web: Web{
			HTTPAddress:    DefaultWebAddress,
			MountAnchor:    DefaultMountAnchor,
			BasePath:       DefaultBasePath,
			RequestTimeout: DefaultWebRequestTimeout,
		},
		DevServer: DevServer{
			HTTPAddress: DefaultDevAddress,
			SourceDir:   DefaultDevSourceDir,
			APITarget:   DefaultDevAPITarget,
			WSTarget:    DefaultDevWSTarget,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
