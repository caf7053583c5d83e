package credentials

import (
	"fmt"
	"strings"
)

// Pair is an access key / secret key pair for one profile.
type Pair struct {
	AccessKeyID     string
	SecretAccessKey string
}

// Empty reports whether either half of the pair is missing.
func (p Pair) Empty() bool {
	return p.AccessKeyID == "" || p.SecretAccessKey == ""
}

// String renders the pair with the secret masked, safe for logs.
func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.AccessKeyID, MaskSecret(p.SecretAccessKey))
}

// MaskSecret hides all but the last four characters of a secret.
// Secrets of four characters or fewer are fully masked.
func MaskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}
