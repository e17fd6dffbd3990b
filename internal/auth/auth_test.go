package auth

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/talgya/kisan-mitra/internal/persistence"
)

type captureSender struct {
	phone, message string
}

func (c *captureSender) Send(_ context.Context, phone, message string) error {
	c.phone, c.message = phone, message
	return nil
}

func newTestService(t *testing.T) (*Service, *captureSender, *time.Time) {
	t.Helper()
	db, err := persistence.Open(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	sms := &captureSender{}
	svc := NewService(db, sms, 5*time.Minute, 24*time.Hour)
	now := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }
	return svc, sms, &now
}

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		otp, err := generateOTP()
		if err != nil {
			t.Fatal(err)
		}
		n, err := strconv.Atoi(otp)
		if err != nil || len(otp) != 6 || n < 100000 || n > 999999 {
			t.Fatalf("otp %q out of range", otp)
		}
	}
}

func TestSendOTPValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	for _, phone := range []string{"", "12345", "98765432101", "98765abcde", "+919876543210"} {
		if _, err := svc.SendOTP(context.Background(), phone, ""); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("SendOTP(%q) err = %v", phone, err)
		}
	}
}

func TestLoginFlow(t *testing.T) {
	svc, sms, _ := newTestService(t)
	ctx := context.Background()

	otp, err := svc.SendOTP(ctx, "9876543210", "Sita")
	if err != nil {
		t.Fatal(err)
	}
	if sms.phone != "9876543210" || sms.message == "" {
		t.Errorf("sms = %+v", sms)
	}

	wrong := "100000"
	if otp == wrong {
		wrong = "100001"
	}
	if _, _, err := svc.VerifyOTP("9876543210", wrong); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("wrong otp err = %v", err)
	}
	if _, _, err := svc.VerifyOTP("9999999999", otp); !errors.Is(err, ErrUnknownPhone) {
		t.Errorf("unknown phone err = %v", err)
	}

	token, user, err := svc.VerifyOTP("9876543210", otp)
	if err != nil {
		t.Fatal(err)
	}
	if len(token) != 64 || !user.IsVerified || user.Name != "Sita" {
		t.Errorf("token %q user %+v", token, user)
	}

	// The OTP is single use.
	if _, _, err := svc.VerifyOTP("9876543210", otp); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("reused otp err = %v", err)
	}

	got, err := svc.Authenticate(token)
	if err != nil || got.ID != user.ID {
		t.Fatalf("Authenticate = %+v, %v", got, err)
	}
	if _, err := svc.Authenticate("bogus"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("bogus token err = %v", err)
	}
	if _, err := svc.Authenticate(""); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("empty token err = %v", err)
	}

	renamed, err := svc.Rename(user.ID, "  Sita Devi ")
	if err != nil || renamed.Name != "Sita Devi" {
		t.Errorf("Rename = %+v, %v", renamed, err)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Authenticate(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("after logout err = %v", err)
	}
}

func TestNameFillsOnlyWhenEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.SendOTP(ctx, "9000000000", "")
	svc.SendOTP(ctx, "9000000000", "Arjun")
	svc.SendOTP(ctx, "9000000000", "Someone Else")

	u, err := svc.DB.UserByPhone("9000000000")
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "Arjun" {
		t.Errorf("name = %q, want Arjun", u.Name)
	}
}

func TestOTPExpiry(t *testing.T) {
	svc, _, now := newTestService(t)
	otp, err := svc.SendOTP(context.Background(), "9123456789", "")
	if err != nil {
		t.Fatal(err)
	}
	*now = now.Add(6 * time.Minute)
	if _, _, err := svc.VerifyOTP("9123456789", otp); !errors.Is(err, ErrOTPExpired) {
		t.Errorf("expired otp err = %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	svc, _, now := newTestService(t)
	otp, _ := svc.SendOTP(context.Background(), "9123456780", "")
	token, _, err := svc.VerifyOTP("9123456780", otp)
	if err != nil {
		t.Fatal(err)
	}
	*now = now.Add(25 * time.Hour)
	if _, err := svc.Authenticate(token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expired session err = %v", err)
	}
}
