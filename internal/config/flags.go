package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a web client address in format [host]:[port]
//	-dev-address dev server address in format [host]:[port]
//	-base-url backend base URL for outgoing API requests
//	-timeout outgoing request timeout (e.g., "30s")
//	-content-type default Content-Type of outgoing requests
//	-mount mount anchor selector (e.g., "#app")
//	-base-path router base path
//	-request-timeout inbound request timeout (e.g., "1m")
//	-src dev server source directory the "@" alias resolves to
//	-api-target dev proxy HTTP backend origin
//	-ws-target dev proxy WebSocket backend origin
//	-no-watch disable view reloading in the dev server
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var webAddress, devAddress NetAddress
	var baseURL, contentType string
	var timeout, requestTimeout time.Duration
	var mountAnchor, basePath string
	var sourceDir, apiTarget, wsTarget string
	var noWatch bool
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-agent-console", flag.ContinueOnError)
	fs.Var(&webAddress, "a", "Web client net address host:port")
	fs.Var(&devAddress, "dev-address", "Dev server net address host:port")
	fs.StringVar(&baseURL, "base-url", "", "Backend base URL")
	fs.DurationVar(&timeout, "timeout", 0, "Outgoing request timeout (e.g., 30s)")
	fs.StringVar(&contentType, "content-type", "", "Default Content-Type of outgoing requests")
	fs.StringVar(&mountAnchor, "mount", "", "Mount anchor selector")
	fs.StringVar(&basePath, "base-path", "", "Router base path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 1m)")
	fs.StringVar(&sourceDir, "src", "", "Source directory for the @ alias")
	fs.StringVar(&apiTarget, "api-target", "", "Dev proxy HTTP backend")
	fs.StringVar(&wsTarget, "ws-target", "", "Dev proxy WebSocket backend")
	fs.BoolVar(&noWatch, "no-watch", false, "Disable view reloading")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Client: Client{
			BaseURL:     baseURL,
			Timeout:     timeout,
			ContentType: contentType,
		},
		Web: Web{
			HTTPAddress:    webAddress.String(),
			MountAnchor:    mountAnchor,
			BasePath:       basePath,
			RequestTimeout: requestTimeout,
		},
		DevServer: DevServer{
			HTTPAddress: devAddress.String(),
			SourceDir:   sourceDir,
			APITarget:   apiTarget,
			WSTarget:    wsTarget,
			NoWatch:     noWatch,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the value
// does not override lower priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any host other than "localhost" must
// be an IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
