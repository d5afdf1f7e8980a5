package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

const TokenExpire = 3 * time.Hour
const CookieName = "jwt-token"

type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func buildJWTString(id string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpire)),
			},
			UserID: id,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

func Authenticate(id string, secret []byte) (http.Cookie, error) {
	jwtString, err := buildJWTString(id, secret)
	if err != nil {
		return http.Cookie{}, fmt.Errorf("authentication failed: %w", err)
	}
	return http.Cookie{
		Name:     CookieName,
		Value:    jwtString,
		Path:     "/",
		MaxAge:   int(TokenExpire.Seconds()),
		HttpOnly: true,
	}, nil
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return secret, nil
		})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, serviceerrs.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("failed to parse token %w", err)
	}
	if claims.UserID == "" {
		return Claims{}, errors.New("token carries no user id")
	}

	return *claims, nil
}

// HashLogin returns a stable hex digest so raw logins never reach the DB.
func HashLogin(login string) string {
	sum := sha256.Sum256([]byte(login))
	return hex.EncodeToString(sum[:])
}
