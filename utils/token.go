package utils

import (
	"sync"
	"time"
)

// Revoked session tokens, keyed by jti. Entries expire together with the
// token itself, so the map stays bounded by the session TTL.
var (
	revokedTokens = make(map[string]time.Time)
	revokedMutex  sync.RWMutex
	sweeperOnce   sync.Once
)

// RevokeToken invalidates a session token until expiry. Lookup after
// revocation fails closed: the caller is treated as unauthenticated.
func RevokeToken(jti string, expiry time.Time) {
	sweeperOnce.Do(func() { go sweepRevoked() })

	revokedMutex.Lock()
	defer revokedMutex.Unlock()
	revokedTokens[jti] = expiry
}

func IsTokenRevoked(jti string) bool {
	revokedMutex.RLock()
	defer revokedMutex.RUnlock()

	expiry, exists := revokedTokens[jti]
	return exists && time.Now().Before(expiry)
}

func sweepRevoked() {
	for {
		time.Sleep(1 * time.Hour)
		revokedMutex.Lock()
		now := time.Now()
		for jti, expiry := range revokedTokens {
			if now.After(expiry) {
				delete(revokedTokens, jti)
			}
		}
		revokedMutex.Unlock()
	}
}
