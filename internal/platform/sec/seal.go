// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Sealer encrypts credential values before they are written to Redis.
//
// # Threat Model
//
// A leaked Redis snapshot must not yield usable Core API bearer tokens.
// Values are sealed with ChaCha20-Poly1305 keyed from the session secret,
// so only a process holding SESSION_SECRET can open them.
type Sealer struct {
	key []byte
}

// NewSealer derives a sealing key from the shared session secret.
func NewSealer(secret string) *Sealer {
	// Derive a fixed-size key regardless of secret length.
	key := sha256.Sum256([]byte(secret))
	return &Sealer{key: key[:]}
}

// Seal encrypts a plaintext value into a base64 string (nonce prepended).
func (sealer *Sealer) Seal(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(sealer.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to initialize cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("sec: failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts a value produced by [Seal].
func (sealer *Sealer) Open(sealedValue string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealedValue)
	if err != nil {
		return "", fmt.Errorf("sec: malformed sealed value: %w", err)
	}

	aead, err := chacha20poly1305.NewX(sealer.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to initialize cipher: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return "", fmt.Errorf("sec: sealed value too short")
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("sec: failed to open sealed value: %w", err)
	}

	return string(plaintext), nil
}
