package gatewayhttp

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/hoopspot/hoopspot/internal/pkg/jwt"
	"github.com/hoopspot/hoopspot/services/geofence"
)

// FileSessionProvider reads the session token from a file managed by the
// login flow. The file is read on every call: tokens written or removed
// while the monitor runs take effect on the next cycle.
type FileSessionProvider struct {
	path string
	now  func() time.Time
}

// NewFileSessionProvider creates a session provider backed by a token file.
func NewFileSessionProvider(path string) *FileSessionProvider {
	return &FileSessionProvider{path: path, now: time.Now}
}

// Token returns the stored session token, or ErrNoSession when the file is
// missing, empty, or holds an expired token.
func (p *FileSessionProvider) Token(_ context.Context) (string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return "", geofence.ErrNoSession
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", geofence.ErrNoSession
	}
	if jwt.Expired(token, p.now()) {
		return "", geofence.ErrNoSession
	}
	return token, nil
}
