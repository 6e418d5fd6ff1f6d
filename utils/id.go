package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"
)

// NewID returns a unique record identifier.
func NewID() string {
	return uuid.NewString()
}

// NewBusinessID returns an 8-digit numeric display identifier for a newly
// formed business. Generated once at creation, never regenerated.
func NewBusinessID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(90000000))
	if err != nil {
		panic("failed to generate business id")
	}
	return strconv.FormatInt(n.Int64()+10000000, 10)
}
