package security

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestVerifyPIN(t *testing.T) {
	sum := sha256.Sum256([]byte("1234"))
	stored := hex.EncodeToString(sum[:])

	t.Run("correct pin", func(t *testing.T) {
		if !VerifyPIN("1234", stored) {
			t.Fatal("expected correct PIN to verify")
		}
	})

	t.Run("wrong pin", func(t *testing.T) {
		if VerifyPIN("0000", stored) {
			t.Fatal("expected wrong PIN to fail")
		}
	})

	t.Run("empty pin", func(t *testing.T) {
		if VerifyPIN("", stored) {
			t.Fatal("expected empty PIN to fail")
		}
	})
}
