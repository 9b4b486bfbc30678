// Package branding loads the banner shown at the top of interactive output.
package branding

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Fallback is shown when the banner asset cannot be read.
const Fallback = "CareFlow"

// Load returns the banner text at path. A missing or unreadable file is
// logged as a warning and Fallback is returned.
func Load(path string, logger zerolog.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		evt := logger.Warn().Err(err).Str("path", path)
		if errors.Is(err, fs.ErrNotExist) {
			evt.Msg("banner asset missing, using text fallback")
		} else {
			evt.Msg("banner asset unreadable, using text fallback")
		}
		return Fallback
	}

	banner := strings.TrimRight(string(data), "\r\n")
	if strings.TrimSpace(banner) == "" {
		logger.Warn().Str("path", path).Msg("banner asset empty, using text fallback")
		return Fallback
	}
	return banner
}
