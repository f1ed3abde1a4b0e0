package generator

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Refresh tokens are opaque bearer credentials stored server side,
// so they get a longer alphabet-encoded form than entity IDs.
const refreshTokenLength = 48

func GenerateRandomID(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", err
		}
		result[i] = alphabet[randomIndex.Int64()]
	}

	return string(result), nil
}

func NewRefreshToken() (string, error) {
	return GenerateRandomID(refreshTokenLength)
}
