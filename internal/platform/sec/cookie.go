// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

// Package sec provides cryptographic primitives for the browser session layer.
//
// # Architecture
//
// This package isolates security-sensitive code (cookie signing, token
// sealing) from the domain logic. The console never verifies admin
// credentials itself — the Core API owns those — but it must prove that a
// browser cookie was issued by this server and that tokens at rest in Redis
// cannot be read out of band.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cookieClaims is the payload embedded inside the session cookie JWT.
//
// # Why a JWT cookie?
//
// The cookie carries only an opaque browser session ID; signing it lets the
// gate reject forged or tampered IDs without a storage round-trip.
type cookieClaims struct {
	jwt.RegisteredClaims

	// SID is the browser session ID that keys the credential record.
	SID string `json:"sid"`
}

// CookieSigner issues and verifies the signed browser-session cookie (HS256).
type CookieSigner struct {
	secret []byte
	issuer string
}

// NewCookieSigner creates a CookieSigner from the shared session secret.
func NewCookieSigner(secret, issuer string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret), issuer: issuer}
}

// Issue creates a signed cookie value binding the given browser session ID.
func (signer *CookieSigner) Issue(sid string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    signer.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		SID: sid,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(signer.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session cookie: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a cookie value and returns the
// embedded browser session ID.
func (signer *CookieSigner) Verify(cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &cookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return signer.secret, nil
	})

	if err != nil {
		return "", fmt.Errorf("sec: invalid session cookie: %w", err)
	}

	claims, ok := token.Claims.(*cookieClaims)
	if !ok || !token.Valid || claims.SID == "" {
		return "", fmt.Errorf("sec: invalid session cookie claims")
	}

	return claims.SID, nil
}
