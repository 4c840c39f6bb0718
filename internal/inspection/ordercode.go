package inspection

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	orderCodePrefix   = "INS-"
	orderCodeLength   = 6
	orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var orderCodeAlphabetLen = big.NewInt(int64(len(orderCodeAlphabet)))

// GenerateOrderCode draws a candidate code of the form INS-XXXXXX uniformly
// from the 36^6 space. Uniqueness is not guaranteed here; the insert's unique
// constraint is the backstop and the caller retries on a collision.
func GenerateOrderCode() (string, error) {
	out := make([]byte, 0, len(orderCodePrefix)+orderCodeLength)
	out = append(out, orderCodePrefix...)
	for i := 0; i < orderCodeLength; i++ {
		n, err := rand.Int(rand.Reader, orderCodeAlphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out = append(out, orderCodeAlphabet[n.Int64()])
	}
	return string(out), nil
}
