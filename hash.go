package p256r1

import (
	sha256simd "github.com/minio/sha256-simd"
)

// MessageDigest returns the SHA-256 digest of msg.
func MessageDigest(msg []byte) [32]byte {
	return sha256simd.Sum256(msg)
}

// VerifyMessage hashes msg with SHA-256 and verifies sig over the digest
// with pub.
func VerifyMessage(sig *Signature, msg []byte, pub *PublicKey) bool {
	digest := MessageDigest(msg)
	return ECDSAVerify(sig, digest[:], pub)
}
