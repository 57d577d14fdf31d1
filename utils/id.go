package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 16
)

// Identifier prefixes
const (
	OrderIDPrefix   = "order_"
	PaymentIDPrefix = "pay_"
)

// GenerateID returns a prefixed opaque identifier: the prefix followed by 16
// characters drawn from a 62-symbol alphanumeric alphabet. One random byte
// feeds each character; the modulo bias is negligible for identifiers.
func GenerateID(prefix string) (string, error) {
	buf := make([]byte, idLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %v", err)
	}
	out := make([]byte, idLength)
	for i, b := range buf {
		out[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return prefix + string(out), nil
}
