package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/AaronM524/SAT-Prep/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const userIDKey = "user_id"

// RequireUser validates the bearer token issued by the identity provider and
// puts the token subject (the user id) on the request context. Every failure
// mode answers a uniform 401.
func RequireUser(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c)
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.Debug().Err(err).Msg("Rejected bearer token")
			abortUnauthorized(c)
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.Subject == "" {
			abortUnauthorized(c)
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
}

// CurrentUserID returns the authenticated user's id set by RequireUser.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
