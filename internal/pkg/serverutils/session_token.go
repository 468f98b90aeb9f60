package serverutils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	WizardSessionHeader = "X-Wizard-Session"
	WizardSessionLocal  = "wizard_session_id"

	wizardSessionClaim = "wizard_session_id"
)

// SessionTokens signs and verifies the opaque handles given to wizard clients.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	return &SessionTokens{secret: []byte(secret), ttl: ttl}
}

func (t *SessionTokens) Issue(sessionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		wizardSessionClaim: sessionID,
		"iat":              now.Unix(),
		"exp":              expiresAt.Unix(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (t *SessionTokens) Parse(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	sessionID, ok := claims[wizardSessionClaim].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session id missing from token")
	}
	return sessionID, nil
}

// Middleware resolves the session handle from X-Wizard-Session or a Bearer token.
func (t *SessionTokens) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := ctx.Get(WizardSessionHeader)
		if tokenStr == "" {
			authHeader := ctx.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = authHeader[7:]
			}
		}
		if tokenStr == "" {
			return Unauthorized("Missing wizard session token")
		}

		sessionID, err := t.Parse(tokenStr)
		if err != nil {
			return Unauthorized("Invalid wizard session token")
		}

		ctx.Locals(WizardSessionLocal, sessionID)
		return ctx.Next()
	}
}
