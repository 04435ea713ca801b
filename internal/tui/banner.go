package tui

import (
	"fmt"
	"net"
	"strings"

	"github.com/MKhiriev/go-agent-console/internal/devproxy"
	"github.com/MKhiriev/go-agent-console/models"
	"github.com/charmbracelet/lipgloss"
)

// BannerInfo is what the dev server prints on startup.
type BannerInfo struct {
	Title     string
	Address   string
	BasePath  string
	Rules     []devproxy.Rule
	SourceDir string
	Watching  bool
	Build     models.AppBuildInfo
}

// Banner renders info as a bordered block.
func Banner(info BannerInfo) string {
	lines := []string{
		titleStyle.Render(info.Title),
		"",
		row("Local", urlStyle.Render(LocalURL(info.Address, info.BasePath))),
	}

	for i, rule := range info.Rules {
		label := ""
		if i == 0 {
			label = "Proxy"
		}
		lines = append(lines, row(label, describeRule(rule)))
	}

	source := info.SourceDir
	if info.Watching {
		source += helpStyle.Render(" (watching)")
	}
	lines = append(lines,
		row("Source", source),
		"",
		renderBuildInfo(info.Build),
	)

	return bannerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// LocalURL is the browser URL of a server listening on address. Wildcard
// hosts are shown as localhost.
func LocalURL(address, basePath string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		host, port = address, ""
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if port != "" {
		host = net.JoinHostPort(host, port)
	}

	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return "http://" + host + basePath
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func describeRule(rule devproxy.Rule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s", rule.Context, rule.Target)

	var flags []string
	if rule.Rewrite != nil && rule.Rewrite.Source != nil {
		flags = append(flags, fmt.Sprintf("%s -> %s", rule.Rewrite.Source, rule.Rewrite.Destination))
	}
	if rule.WS {
		flags = append(flags, "ws")
	}
	if rule.ChangeOrigin {
		flags = append(flags, "changeOrigin")
	}
	if len(flags) > 0 {
		b.WriteString(helpStyle.Render(" (" + strings.Join(flags, ", ") + ")"))
	}

	return b.String()
}
