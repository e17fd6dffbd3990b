// Package auth implements phone-number login with one-time passwords
// and opaque bearer tokens backed by the session table.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/talgya/kisan-mitra/internal/persistence"
)

var (
	ErrInvalidPhone = errors.New("please provide a valid 10-digit phone number")
	ErrUnknownPhone = errors.New("no account found for this phone number")
	ErrInvalidOTP   = errors.New("invalid OTP")
	ErrOTPExpired   = errors.New("OTP has expired")
	ErrUnauthorized = errors.New("token invalid or expired")
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// SMSSender delivers a text message to an Indian mobile number.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// LogSender writes messages to the log instead of sending them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, phone, message string) error {
	slog.Info("sms (not sent)", "to", "+91"+phone, "message", message)
	return nil
}

// Service issues OTPs, verifies them and resolves bearer tokens.
type Service struct {
	DB         *persistence.DB
	SMS        SMSSender
	OTPTTL     time.Duration
	SessionTTL time.Duration
	Now        func() time.Time
}

// NewService creates an auth service. A nil sender logs OTPs.
func NewService(db *persistence.DB, sms SMSSender, otpTTL, sessionTTL time.Duration) *Service {
	if sms == nil {
		sms = LogSender{}
	}
	return &Service{DB: db, SMS: sms, OTPTTL: otpTTL, SessionTTL: sessionTTL, Now: time.Now}
}

// ValidPhone reports whether phone is exactly ten digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// SendOTP finds or creates the user for phone, stores a fresh OTP and
// sends it by SMS. A name fills in an account that has none yet.
// The OTP is returned so development builds can echo it.
func (s *Service) SendOTP(ctx context.Context, phone, name string) (string, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)
	if !ValidPhone(phone) {
		return "", ErrInvalidPhone
	}
	now := s.Now()

	user, err := s.DB.UserByPhone(phone)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		user, err = s.DB.CreateUser(phone, name, now)
		if err != nil {
			return "", err
		}
		slog.Info("user registered", "user", user.ID)
	case err != nil:
		return "", err
	case name != "" && user.Name == "":
		if err := s.DB.UpdateName(user.ID, name, now); err != nil {
			return "", err
		}
	}

	otp, err := generateOTP()
	if err != nil {
		return "", err
	}
	if err := s.DB.SetOTP(user.ID, otp, now.Add(s.OTPTTL), now); err != nil {
		return "", err
	}

	msg := fmt.Sprintf("Your Kisan Mitra OTP is %s. Valid for %d minutes.", otp, int(s.OTPTTL.Minutes()))
	if err := s.SMS.Send(ctx, phone, msg); err != nil {
		return "", fmt.Errorf("send otp: %w", err)
	}
	return otp, nil
}

// VerifyOTP checks otp against the pending one for phone. On success the
// OTP is cleared, the user is marked verified and a new session token is
// returned.
func (s *Service) VerifyOTP(phone, otp string) (string, *persistence.User, error) {
	phone = strings.TrimSpace(phone)
	otp = strings.TrimSpace(otp)

	user, err := s.DB.UserByPhone(phone)
	if errors.Is(err, persistence.ErrNotFound) {
		return "", nil, ErrUnknownPhone
	}
	if err != nil {
		return "", nil, err
	}

	if !user.OTP.Valid || subtle.ConstantTimeCompare([]byte(user.OTP.String), []byte(otp)) != 1 {
		return "", nil, ErrInvalidOTP
	}
	now := s.Now()
	if !user.OTPExpiry.Valid || user.OTPExpiry.Int64 < now.Unix() {
		return "", nil, ErrOTPExpired
	}

	if err := s.DB.MarkVerified(user.ID, now); err != nil {
		return "", nil, err
	}
	token, err := newToken()
	if err != nil {
		return "", nil, err
	}
	if err := s.DB.CreateSession(token, user.ID, now.Add(s.SessionTTL), now); err != nil {
		return "", nil, err
	}

	user.IsVerified = true
	user.OTP.Valid = false
	user.OTPExpiry.Valid = false
	slog.Info("user logged in", "user", user.ID)
	return token, user, nil
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(token string) (*persistence.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.DB.SessionUser(token, s.Now())
	if errors.Is(err, persistence.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	return user, err
}

// Logout revokes a bearer token.
func (s *Service) Logout(token string) error {
	return s.DB.DeleteSession(token)
}

// Rename updates the user's display name and returns the fresh record.
func (s *Service) Rename(userID, name string) (*persistence.User, error) {
	if err := s.DB.UpdateName(userID, strings.TrimSpace(name), s.Now()); err != nil {
		return nil, err
	}
	return s.DB.UserByID(userID)
}

// generateOTP returns a uniformly random six-digit code in [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
