package partner

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/luggio/console/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Partner{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T) domain.PartnerService {
	t.Helper()
	return NewService(NewRepository(setupTestDB(t)))
}

func TestService_Create_DefaultsToRequested(t *testing.T) {
	svc := newTestService(t)

	partner, err := svc.Create(context.Background(), domain.PartnerDraft{
		KrName:      "카페어니언",
		BusinessNum: "123-45-67890",
		Address:     "8 Achasan-ro",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if partner.Status != domain.PartnerStatusRequested {
		t.Errorf("status = %q, want %q", partner.Status, domain.PartnerStatusRequested)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		draft domain.PartnerDraft
	}{
		{"missing name", domain.PartnerDraft{BusinessNum: "1", Address: "a"}},
		{"missing business number", domain.PartnerDraft{KrName: "n", Address: "a"}},
		{"missing address", domain.PartnerDraft{KrName: "n", BusinessNum: "1"}},
		{"unknown status", domain.PartnerDraft{KrName: "n", BusinessNum: "1", Address: "a", Status: "BOGUS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.draft); !domain.IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestService_Update_KeepsStatusWhenOmitted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PartnerDraft{
		KrName:      "카페어니언",
		BusinessNum: "123-45-67890",
		Address:     "8 Achasan-ro",
		Status:      domain.PartnerStatusActive,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, domain.PartnerDraft{
		KrName:      "카페어니언 성수",
		BusinessNum: "123-45-67890",
		Address:     "8 Achasan-ro",
		LogoPath:    "/uploads/logo.png",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.PartnerStatusActive {
		t.Errorf("status = %q, want preserved %q", updated.Status, domain.PartnerStatusActive)
	}
	if updated.LogoPath != "/uploads/logo.png" {
		t.Errorf("logo path = %q", updated.LogoPath)
	}
}

func TestService_StatusTransition(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PartnerDraft{
		KrName:      "편의점 GS",
		BusinessNum: "987-65-43210",
		Address:     "1 Gangnam-daero",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, domain.PartnerDraft{
		KrName:      created.KrName,
		BusinessNum: created.BusinessNum,
		Address:     created.Address,
		Status:      domain.PartnerStatusActive,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.PartnerStatusActive {
		t.Errorf("status = %q, want %q", updated.Status, domain.PartnerStatusActive)
	}
}
