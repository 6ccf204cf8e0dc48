package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// maxOTPLength keeps 10^length within int64.
const maxOTPLength = 18

// GenerateNumericCode returns a code of exactly length decimal digits drawn
// uniformly from [0, 10^length) with crypto/rand. Leading zeros are kept.
func GenerateNumericCode(length int) (string, error) {
	if length < 1 || length > maxOTPLength {
		return "", errors.New("invalid code length")
	}

	upper := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, upper)
	if err != nil {
		return "", fmt.Errorf("error reading random number: %w", err)
	}

	code := n.String()
	return strings.Repeat("0", length-len(code)) + code, nil
}
