package stream

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

const (
	restPort          = "3000"
	defaultStreamPort = "3001"
)

var streamPorts = map[string]struct{}{"3001": {}, "3002": {}}

// BuildStreamURL derives the websocket endpoint of a node from its REST URL.
// http becomes ws and https becomes wss. The REST port 3000 maps to 3001, a missing port
// defaults to 3001 and any other explicit port is kept. "/ws" is appended to the path.
func BuildStreamURL(nodeURL string) (string, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(nodeURL), "/"))
	if err != nil {
		return "", fmt.Errorf("parse node url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported node url scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("node url %q has no host", nodeURL)
	}

	port := u.Port()
	if _, ok := streamPorts[port]; !ok {
		switch port {
		case "", restPort:
			port = defaultStreamPort
		}
	}
	u.Host = net.JoinHostPort(u.Hostname(), port)
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
