// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/capitalcurv/backoffice/internal/platform/constants"
	"github.com/capitalcurv/backoffice/internal/platform/sec"
)

// RedisCredentialStore implements [CredentialStore] on a Redis hash.
//
// # Layout
//
// One hash per browser session ID ("gate:creds:<sid>") holding the two
// credential fields, sealed at rest. A TTL matching the session cookie
// lifetime lets abandoned sessions age out on their own.
type RedisCredentialStore struct {
	client *redis.Client
	sealer *sec.Sealer
	sid    string
}

// NewRedisCredentialStore binds a store to one browser session ID.
func NewRedisCredentialStore(client *redis.Client, sealer *sec.Sealer, sid string) *RedisCredentialStore {
	return &RedisCredentialStore{client: client, sealer: sealer, sid: sid}
}

func (store *RedisCredentialStore) key() string {
	return constants.RedisPrefixCredentials + store.sid
}

/*
Get retrieves and unseals a credential value.

Returns:
  - string: The plaintext credential, or "" when the field is absent.
  - error: Connectivity or unsealing failures.
*/
func (store *RedisCredentialStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := store.client.HGet(ctx, store.key(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_credential_get_failed: %w", err)
	}

	value, err := store.sealer.Open(sealed)
	if err != nil {
		// A record sealed under a rotated secret is unreadable; treat it the
		// same as a missing credential so the gate fails closed.
		return "", fmt.Errorf("redis_credential_unseal_failed: %w", err)
	}

	return value, nil
}

/*
Set seals and stores a credential value, refreshing the record's TTL.
*/
func (store *RedisCredentialStore) Set(ctx context.Context, key, value string) error {
	sealed, err := store.sealer.Seal(value)
	if err != nil {
		return fmt.Errorf("redis_credential_seal_failed: %w", err)
	}

	if err := store.client.HSet(ctx, store.key(), key, sealed).Err(); err != nil {
		return fmt.Errorf("redis_credential_set_failed: %w", err)
	}

	if err := store.client.Expire(ctx, store.key(), constants.SessionCookieTTL).Err(); err != nil {
		return fmt.Errorf("redis_credential_expire_failed: %w", err)
	}

	return nil
}

/*
Remove deletes a single credential field. Removing an absent field is a no-op.
*/
func (store *RedisCredentialStore) Remove(ctx context.Context, key string) error {
	if err := store.client.HDel(ctx, store.key(), key).Err(); err != nil {
		return fmt.Errorf("redis_credential_remove_failed: %w", err)
	}
	return nil
}
