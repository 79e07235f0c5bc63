package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nagarseva/apperr"
	"nagarseva/models"
)

// GenerateToken issues an HS256 session token for the given principal.
// Claims carry subject id, role and (for staff/admin) city so later requests
// authorize without a DB round trip.
func GenerateToken(p models.Principal, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  p.ID,
		"role": string(p.Role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}
	if p.City != "" {
		claims["city"] = p.City
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken parses and validates a session token, failing closed: any
// missing, malformed or expired token yields apperr.ErrUnauthorized.
func VerifyToken(tokenString string, secret []byte) (models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, apperr.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, apperr.ErrUnauthorized
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return models.Principal{}, apperr.ErrUnauthorized
	}
	roleStr, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return models.Principal{}, apperr.ErrUnauthorized
	}
	city, _ := claims["city"].(string)

	return models.Principal{ID: int64(sub), Role: role, City: city}, nil
}
