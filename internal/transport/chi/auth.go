package chi

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// publicPaths answer without a token so probes and scrapers need no key.
var publicPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

var (
	errMissingAuth = errors.New("missing authorization header")
	errNotBearer   = errors.New("authorization header must use Bearer scheme")
	errBadKey      = errors.New("invalid api key")
)

// keyring holds the accepted API keys. Lookups compare every key in
// constant time.
type keyring [][]byte

func newKeyring(apiKeys []string) keyring {
	keys := make(keyring, 0, len(apiKeys))
	seen := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, []byte(k))
	}
	return keys
}

func (k keyring) accepts(token string) bool {
	t := []byte(token)
	ok := 0
	for _, key := range k {
		ok |= subtle.ConstantTimeCompare(key, t)
	}
	return ok == 1
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", errMissingAuth
	}
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", errNotBearer
	}
	return auth[len(bearerPrefix):], nil
}

// BearerAuthMiddleware rejects requests without a known Bearer token.
// An empty key list disables authentication.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := newKeyring(apiKeys)

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			token, err := bearerToken(r)
			if err == nil && !keys.accepts(token) {
				err = errBadKey
			}
			if err != nil {
				writeError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
