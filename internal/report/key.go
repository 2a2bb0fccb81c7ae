package report

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// AccessKey mints a patient access key of the form NR-1234-X. Keys gate the
// encrypted report download in the demo flow; they are short by design and
// not a substitute for real credentials.
func AccessKey() (string, error) {
	digits, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("generate access key: %w", err)
	}
	letter, err := rand.Int(rand.Reader, big.NewInt(26))
	if err != nil {
		return "", fmt.Errorf("generate access key: %w", err)
	}
	return fmt.Sprintf("NR-%04d-%c", digits.Int64(), 'A'+byte(letter.Int64())), nil
}
