package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/luggio/console/internal/domain"
)

// fakeStaffRepo implements domain.StaffRepository in memory.
type fakeStaffRepo struct {
	byEmail map[string]*domain.Staff
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.Staff) error {
	r.byEmail[staff.Email] = staff
	return nil
}

func (r *fakeStaffRepo) GetByID(_ context.Context, id uint) (*domain.Staff, error) {
	for _, s := range r.byEmail {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*domain.Staff, error) {
	if s, ok := r.byEmail[email]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func newTestService(t *testing.T) (Service, *TokenManager) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeStaffRepo{byEmail: map[string]*domain.Staff{
		"ops@luggio.io": {
			BaseModel:    domain.BaseModel{ID: 3},
			Name:         "Ops",
			Email:        "ops@luggio.io",
			PasswordHash: string(hash),
		},
	}}
	tm := NewTokenManager(testSecret, time.Hour)
	return NewService(tm, repo), tm
}

func TestService_Login_Success(t *testing.T) {
	svc, tm := newTestService(t)

	resp, err := svc.Login(context.Background(), "ops@luggio.io", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	if resp.ExpiresAt <= time.Now().Unix() {
		t.Errorf("expires_at %d is not in the future", resp.ExpiresAt)
	}

	id, err := tm.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if id != 3 {
		t.Errorf("token staff id = %d, want 3", id)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "ops@luggio.io", "wrong-password")
	if !domain.IsUnauthorized(err) {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	// Unknown accounts look identical to wrong passwords.
	_, err := svc.Login(context.Background(), "nobody@luggio.io", "correct-horse")
	if !domain.IsUnauthorized(err) {
		t.Errorf("err = %v, want unauthorized", err)
	}
}
