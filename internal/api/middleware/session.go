package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/softspace/internal/app"
	"github.com/d60-Lab/softspace/pkg/response"
)

const (
	sessionKey = "session"
	issuer     = "softspace"
)

var ErrInvalidToken = errors.New("invalid session token")

// TokenIssuer 会话令牌：HS256 签名，subject 为会话 ID。只标识会话，不认证身份。
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(sessionID string) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse 校验签名与过期时间，返回会话 ID
func (t *TokenIssuer) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// SessionLookup 按 ID 查找会话
type SessionLookup func(id string) (*app.Session, bool)

// SessionAuth 从 Authorization: Bearer 或 ?token= 取令牌（EventSource 无法设置请求头）
func SessionAuth(tokens *TokenIssuer, lookup SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			response.Unauthorized(c, "missing session token")
			return
		}
		id, err := tokens.Parse(raw)
		if err != nil {
			response.Unauthorized(c, "invalid session token")
			return
		}
		s, ok := lookup(id)
		if !ok {
			response.Unauthorized(c, "session expired")
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if after, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
	}
	return c.Query("token")
}

// SessionFrom 取出 SessionAuth 注入的会话
func SessionFrom(c *gin.Context) *app.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*app.Session)
	return s
}

// SetSession 测试与内部路由使用
func SetSession(c *gin.Context, s *app.Session) { c.Set(sessionKey, s) }
