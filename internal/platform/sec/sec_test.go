// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalcurv/backoffice/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestCookieSigner_RoundTrip verifies that an issued cookie verifies back to
the same browser session ID.
*/
func TestCookieSigner_RoundTrip(t *testing.T) {
	signer := sec.NewCookieSigner(testSecret, "test-issuer")

	cookie, err := signer.Issue("sid-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	sid, err := signer.Verify(cookie)
	require.NoError(t, err)
	assert.Equal(t, "sid-123", sid)
}

/*
TestCookieSigner_RejectsTampering verifies forged or foreign cookies fail.
*/
func TestCookieSigner_RejectsTampering(t *testing.T) {
	signer := sec.NewCookieSigner(testSecret, "test-issuer")
	otherSigner := sec.NewCookieSigner("another-secret-another-secret-xx", "test-issuer")

	cookie, err := otherSigner.Issue("sid-123", time.Hour)
	require.NoError(t, err)

	_, err = signer.Verify(cookie)
	assert.Error(t, err)

	_, err = signer.Verify("not-a-jwt")
	assert.Error(t, err)
}

/*
TestCookieSigner_RejectsExpired verifies expired cookies fail verification.
*/
func TestCookieSigner_RejectsExpired(t *testing.T) {
	signer := sec.NewCookieSigner(testSecret, "test-issuer")

	cookie, err := signer.Issue("sid-123", -time.Minute)
	require.NoError(t, err)

	_, err = signer.Verify(cookie)
	assert.Error(t, err)
}

/*
TestSealer_RoundTrip verifies sealed values open back to the original.
*/
func TestSealer_RoundTrip(t *testing.T) {
	sealer := sec.NewSealer(testSecret)

	sealed, err := sealer.Seal("bearer-token-value")
	require.NoError(t, err)
	assert.NotEqual(t, "bearer-token-value", sealed)

	opened, err := sealer.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "bearer-token-value", opened)
}

/*
TestSealer_WrongKey verifies values sealed under one secret cannot be opened
with another.
*/
func TestSealer_WrongKey(t *testing.T) {
	sealed, err := sec.NewSealer(testSecret).Seal("bearer-token-value")
	require.NoError(t, err)

	_, err = sec.NewSealer("another-secret-another-secret-xx").Open(sealed)
	assert.Error(t, err)
}

/*
TestSealer_Malformed verifies garbage input is rejected cleanly.
*/
func TestSealer_Malformed(t *testing.T) {
	sealer := sec.NewSealer(testSecret)

	_, err := sealer.Open("!!not-base64!!")
	assert.Error(t, err)

	_, err = sealer.Open("c2hvcnQ")
	assert.Error(t, err)
}
