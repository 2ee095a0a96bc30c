package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/snappdoctor/telemed-api/internal/httperr"
)

// Verification-code service: 4-digit codes held in redis with a short
// TTL, consumed on first successful verification.

const (
	PurposeRegistration = "registration"
	PurposeLogin        = "login"

	codeTTL = 5 * time.Minute
)

// Sender delivers a code to a phone number. SMS gateway mechanics live
// behind this interface; the default implementation just logs.
type Sender interface {
	SendCode(ctx context.Context, phone, code string) error
}

type LogSender struct{}

func (LogSender) SendCode(_ context.Context, phone, code string) error {
	log.Printf("otp: code %s for %s", code, phone)
	return nil
}

type Service struct {
	rdb    *redis.Client
	sender Sender
}

func NewService(rdb *redis.Client, sender Sender) *Service {
	return &Service{rdb: rdb, sender: sender}
}

func key(purpose, phone string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, phone)
}

// Issue generates and delivers a fresh code, replacing any outstanding
// one for the same phone and purpose.
func (s *Service) Issue(ctx context.Context, purpose, phone string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, key(purpose, phone), code, codeTTL).Err(); err != nil {
		return err
	}

	return s.sender.SendCode(ctx, phone, code)
}

// Verify consumes the outstanding code. A wrong, expired or already
// used code yields the invalid_otp business error.
func (s *Service) Verify(ctx context.Context, purpose, phone, code string) error {
	stored, err := s.rdb.Get(ctx, key(purpose, phone)).Result()
	if err == redis.Nil {
		return httperr.ErrBusiness("invalid_otp")
	}
	if err != nil {
		return err
	}

	if stored != code {
		return httperr.ErrBusiness("invalid_otp")
	}

	return s.rdb.Del(ctx, key(purpose, phone)).Err()
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}
