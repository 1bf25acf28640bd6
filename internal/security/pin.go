package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// VerifyPIN compara el digest SHA-256 del candidato contra el digest
// almacenado (hex). Es una verificación de capacidad con un secreto
// compartido, no un sistema de autenticación: sin sal, sin rotación,
// sin bloqueo de cuenta.
func VerifyPIN(candidate, storedHexDigest string) bool {
	sum := sha256.Sum256([]byte(candidate))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedHexDigest)) == 1
}
