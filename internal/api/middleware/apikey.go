package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/ycwang-tw/etf-dashboard-backend/internal/api/response"
)

// timeTokenTTL bounds how long a generated time token stays valid.
const timeTokenTTL = 60 * time.Second

// fernetKey derives a fernet key from the shared API key.
// SHA-256 maps the key material onto the 32 bytes fernet requires.
func fernetKey(apiKey string) *fernet.Key {
	sum := sha256.Sum256([]byte(apiKey))
	key := fernet.Key(sum)
	return &key
}

// GenerateTimeToken creates a short-lived token bound to the given API key.
// Clients send it in the X-Time-Token header alongside X-API-Key so that
// captured requests cannot be replayed after the token expires.
func GenerateTimeToken(apiKey string) string {
	payload := strconv.FormatInt(time.Now().Unix(), 10)
	token, err := fernet.EncryptAndSign([]byte(payload), fernetKey(apiKey))
	if err != nil {
		return ""
	}
	return string(token)
}

// APIKeyMiddleware authenticates mutating requests with a shared API key and
// a time-limited token. The key is read from INTERNAL_API_KEY on every
// request so the process does not need a restart after rotation.
//
// Returns 401 Unauthorized when the key or token is missing or invalid, and
// 500 Internal Server Error when no key is configured.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedKey := os.Getenv("INTERNAL_API_KEY")
		if expectedKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "authentication misconfigured", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}

		payload := fernet.VerifyAndDecrypt([]byte(timeToken), timeTokenTTL, []*fernet.Key{fernetKey(expectedKey)})
		if payload == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
