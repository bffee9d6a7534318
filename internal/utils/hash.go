package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HMACSigner computes keyed HMAC-SHA256 signatures over response bodies.
// Hash instances are pooled so that signing every response does not
// allocate a fresh HMAC state. It is safe for concurrent use.
type HMACSigner struct {
	pool sync.Pool
}

// NewHMACSigner returns a signer keyed with hashKey.
//
// Example usage:
//
//	signer := utils.NewHMACSigner("my-secret-key")
//	header := signer.Sign(body)
func NewHMACSigner(hashKey string) *HMACSigner {
	key := []byte(hashKey)
	return &HMACSigner{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *HMACSigner) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 digest of data.
func (s *HMACSigner) Sign(data []byte) string {
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex-encoded digest of data.
// The comparison is constant-time.
func (s *HMACSigner) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, s.Sum(data))
}
