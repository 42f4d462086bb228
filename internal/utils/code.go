package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // omit easily confused chars

// JoinCodeLength is the length of a room's join code.
const JoinCodeLength = 6

// GenerateJoinCode returns a crypto-random uppercase code of JoinCodeLength
// characters used to join a room.
func GenerateJoinCode() (string, error) {
	b := make([]byte, JoinCodeLength)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = codeAlphabet[idx.Int64()]
	}
	return string(b), nil
}
