package otp

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snappdoctor/telemed-api/internal/httperr"
)

type captureSender struct {
	phone string
	code  string
}

func (c *captureSender) SendCode(_ context.Context, phone, code string) error {
	c.phone = phone
	c.code = code
	return nil
}

func newTestService(t *testing.T) (*Service, *captureSender, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sender := &captureSender{}
	return NewService(rdb, sender), sender, mr
}

func TestIssueAndVerify(t *testing.T) {
	svc, sender, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, PurposeRegistration, "09121234567"))
	assert.Equal(t, "09121234567", sender.phone)
	assert.Len(t, sender.code, 4)

	require.NoError(t, svc.Verify(ctx, PurposeRegistration, "09121234567", sender.code))
}

func TestVerifyWrongCode(t *testing.T) {
	svc, sender, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, PurposeLogin, "09121234567"))

	err := svc.Verify(ctx, PurposeLogin, "09121234567", "0000")
	if sender.code == "0000" {
		t.Skip("generated the guessed code")
	}
	assert.True(t, httperr.IsBusiness(err, "invalid_otp"))
}

func TestVerifyIsSingleUse(t *testing.T) {
	svc, sender, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, PurposeRegistration, "09121234567"))
	require.NoError(t, svc.Verify(ctx, PurposeRegistration, "09121234567", sender.code))

	err := svc.Verify(ctx, PurposeRegistration, "09121234567", sender.code)
	assert.True(t, httperr.IsBusiness(err, "invalid_otp"))
}

func TestVerifyExpiredCode(t *testing.T) {
	svc, sender, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, PurposeRegistration, "09121234567"))
	mr.FastForward(6 * time.Minute)

	err := svc.Verify(ctx, PurposeRegistration, "09121234567", sender.code)
	assert.True(t, httperr.IsBusiness(err, "invalid_otp"))
}

func TestVerifyPurposeScoped(t *testing.T) {
	svc, sender, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Issue(ctx, PurposeRegistration, "09121234567"))

	err := svc.Verify(ctx, PurposeLogin, "09121234567", sender.code)
	assert.True(t, httperr.IsBusiness(err, "invalid_otp"))
}
