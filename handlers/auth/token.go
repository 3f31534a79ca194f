package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates the JWT handed to the admin browser after a
// successful login. The token only proves "this browser passed the login
// check"; the backend credential itself stays inside the content store and
// is re-sent upstream on every write.
func GenerateToken(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyRequest checks the Authorization bearer token on an admin request.
// Websocket upgrades and form posts can pass it as ?token= instead.
func VerifyRequest(r *http.Request, secret string) error {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		tokenString = r.URL.Query().Get("token")
	}
	if tokenString == "" {
		return fmt.Errorf("no token provided")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	if secret == "" {
		return fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token claims")
	}
	if admin, _ := claims["admin"].(bool); !admin {
		return fmt.Errorf("not an admin token")
	}
	return nil
}
