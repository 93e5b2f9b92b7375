package dashrpc

import (
	"fmt"
	"os"
	"strings"
)

// Auth carries the node's RPC credentials: either a user/password pair or
// the path of a cookie file the node writes on startup.
type Auth struct {
	Username   string `env:"DASHRPC_USER" json:"username"`
	Password   string `env:"DASHRPC_PASSWORD" json:"password"`
	CookiePath string `env:"DASHRPC_COOKIE_PATH" json:"cookie_path"`
}

// Credentials resolves the pair to send as HTTP basic auth. A cookie file
// takes precedence over inline credentials. Both empty means no auth.
func (a Auth) Credentials() (user, pass string, err error) {
	if a.CookiePath != "" {
		return readCookieFile(a.CookiePath)
	}
	return a.Username, a.Password, nil
}

// readCookieFile parses the node's .cookie file, a single "user:password"
// line.
func readCookieFile(path string) (user, pass string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading cookie file: %w", err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(raw)), "\n")
	user, pass, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("cookie file %s is not a user:password pair", path)
	}
	return user, pass, nil
}
