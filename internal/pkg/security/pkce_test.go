package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeChallengeKnownVector(t *testing.T) {
	// RFC 7636 附录 B 的示例
	challenge := CodeChallenge("dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk")
	assert.Equal(t, "E9Melhoa2OwvFrEMTJguCHaoeK1t8URWbuGJSstw-cM", challenge)
}

func TestGenerateCodeVerifier(t *testing.T) {
	first, err := GenerateCodeVerifier()
	require.NoError(t, err)
	second, err := GenerateCodeVerifier()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	// 32 字节 base64url 无填充是 43 个字符
	assert.Len(t, first, 43)
	assert.NotContains(t, first, "=")
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
}
