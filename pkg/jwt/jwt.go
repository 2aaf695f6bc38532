package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered JWT claims plus the application fields.
// Role lets the RBAC middleware decide without a database lookup.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"` // "ADMIN" | "CASHIER"
}

// Generate signs an HS256 token carrying the user id (as subject),
// username and role.
func Generate(secret string, userID int64, username, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Username: username,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns the user id, username and role.
// Fails on invalid signature, wrong algorithm or expiry.
func Parse(secret, tokenString string) (userID int64, username, role string, err error) {
	if secret == "" {
		return 0, "", "", fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", "", fmt.Errorf("jwt: invalid token")
	}
	userID, err = strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", "", fmt.Errorf("jwt: invalid subject: %w", err)
	}
	return userID, claims.Username, claims.Role, nil
}
