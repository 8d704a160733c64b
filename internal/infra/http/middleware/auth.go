package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const adminIDKey contextKey = "adminID"

const sessionTTL = 24 * time.Hour

// NewAdminToken issues the session token returned by the login endpoint.
func NewAdminToken(secret, adminID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   adminID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireAdmin guards the admin surface. The API answers 401 JSON; the
// redirect to the login page is the UI's job.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				unauthorized(w)
				return
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w)
				return
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminID returns the authenticated admin's id, empty outside RequireAdmin.
func AdminID(ctx context.Context) string {
	id, _ := ctx.Value(adminIDKey).(string)
	return id
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("sitelab_session"); err == nil {
		return cookie.Value
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
