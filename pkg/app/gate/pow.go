package gate

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HasHoneypot reports whether the hidden form field was filled in.
func HasHoneypot(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Verify checks a proof-of-work solution. The session id is part of the hashed
// input, so a nonce solved for one session does not validate for another.
func Verify(challenge, sessionID, nonce, requiredPrefix string) bool {
	if challenge == "" || sessionID == "" || nonce == "" || requiredPrefix == "" {
		return false
	}
	sum := sha256.Sum256([]byte(challenge + sessionID + nonce))
	return strings.HasPrefix(hex.EncodeToString(sum[:]), requiredPrefix)
}

func requiredPrefix(difficulty int) string {
	return strings.Repeat("0", difficulty)
}
