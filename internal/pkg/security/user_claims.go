package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         []byte
	jwtExpirationTime = time.Hour * 24 * 7
)

// Init 注入签名密钥与会话有效期，必须在签发/校验前调用
func Init(secret string, expireHours int) {
	jwtSecret = []byte(secret)
	if expireHours > 0 {
		jwtExpirationTime = time.Duration(expireHours) * time.Hour
	}
}

// UserClaims 会话令牌中携带的业务信息
type UserClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// StateClaims OAuth 授权往返的无状态 state 载荷
// code_verifier 随 state 一起签名下发，回调时无需任何服务端会话即可完成交换
type StateClaims struct {
	CodeVerifier string `json:"code_verifier"`
	UserID       string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}
