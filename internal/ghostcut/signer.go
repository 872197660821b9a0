package ghostcut

import (
	"crypto/md5"
	"encoding/hex"
)

// Sign computes the AppSign header for a request body: the body is
// hashed, then the hex digest concatenated with the shared secret is
// hashed again. Pure function of body and secret.
func Sign(body []byte, secret string) string {
	first := md5.Sum(body)
	firstHex := hex.EncodeToString(first[:])
	second := md5.Sum([]byte(firstHex + secret))
	return hex.EncodeToString(second[:])
}
