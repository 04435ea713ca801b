package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of a JSON config file.
type StructuredJSONConfig struct {
	Client struct {
		BaseURL     string   `json:"base_url"`
		Timeout     Duration `json:"timeout"`
		ContentType string   `json:"content_type"`
	} `json:"client,omitempty"`

	Web struct {
		HTTPAddress    string   `json:"http_address"`
		MountAnchor    string   `json:"mount_anchor"`
		BasePath       string   `json:"base_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"web,omitempty"`

	DevServer struct {
		HTTPAddress string `json:"http_address"`
		SourceDir   string `json:"source_dir"`
		APITarget   string `json:"api_target"`
		WSTarget    string `json:"ws_target"`
		NoWatch     bool   `json:"no_watch"`
	} `json:"dev_server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Client: Client{
			BaseURL:     jsonCfg.Client.BaseURL,
			Timeout:     time.Duration(jsonCfg.Client.Timeout),
			ContentType: jsonCfg.Client.ContentType,
		},
		Web: Web{
			HTTPAddress:    jsonCfg.Web.HTTPAddress,
			MountAnchor:    jsonCfg.Web.MountAnchor,
			BasePath:       jsonCfg.Web.BasePath,
			RequestTimeout: time.Duration(jsonCfg.Web.RequestTimeout),
		},
		DevServer: DevServer{
			HTTPAddress: jsonCfg.DevServer.HTTPAddress,
			SourceDir:   jsonCfg.DevServer.SourceDir,
			APITarget:   jsonCfg.DevServer.APITarget,
			WSTarget:    jsonCfg.DevServer.WSTarget,
			NoWatch:     jsonCfg.DevServer.NoWatch,
		},
		Log: Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" and from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
