package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignature_SignVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := svc.BuildCanonicalString("post", "/api/v1/deposits", 1700000000, "n-1", `{"amount":"10"}`)
	assert.Equal(t, `POST|/api/v1/deposits|1700000000|n-1|{"amount":"10"}`, payload)

	sig := svc.Sign("secret", payload)
	assert.Len(t, sig, 64)
	assert.Equal(t, strings.ToLower(sig), sig)

	assert.True(t, svc.Verify("secret", payload, sig))
	assert.True(t, svc.Verify("secret", payload, strings.ToUpper(sig)))
	assert.False(t, svc.Verify("other", payload, sig))
	assert.False(t, svc.Verify("secret", payload+"x", sig))
	assert.False(t, svc.Verify("secret", payload, "not-hex"))
	assert.False(t, svc.Verify("secret", payload, ""))
}

func TestHMACSignature_KnownVector(t *testing.T) {
	// RFC 4231 test case 2.
	svc := NewHMACSignatureService()
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		svc.Sign("Jefe", "what do ya want for nothing?"),
	)
}
