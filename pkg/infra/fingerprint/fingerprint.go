package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/click"
)

const separator = "|"

// Compute hashes the device signals in a fixed order:
// user agent, language, timezone, screen width, screen height, canvas.
// Missing values serialize as empty strings.
func Compute(raw *click.RawClick) click.Fingerprint {
	parts := []string{
		raw.UserAgent,
		raw.Language,
		raw.Timezone,
		dimension(raw.ScreenWidth),
		dimension(raw.ScreenHeight),
		raw.Canvas,
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, separator)))
	return click.Fingerprint(hex.EncodeToString(sum[:]))
}

func dimension(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}
