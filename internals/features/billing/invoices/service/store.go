// file: internals/features/billing/invoices/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feemodel "sekolahku_backend/internals/features/billing/fees/model"
	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	notifmodel "sekolahku_backend/internals/features/billing/notifications/model"
	stumodel "sekolahku_backend/internals/features/school/students/model"
)

// BillingStore: kolaborator eksternal billing run. Diabstraksi supaya
// generator bisa diuji tanpa Postgres.
type BillingStore interface {
	// Roster siswa aktif (status = active), wali ikut dimuat.
	ListActiveStudents(ctx context.Context) ([]stumodel.Student, error)

	// nil, nil kalau periode belum dikonfigurasi.
	GetFeeSchedule(ctx context.Context, month, year int) (*feemodel.FeeSchedule, error)

	// nil, nil kalau belum ada invoice (student, month, year).
	FindInvoice(ctx context.Context, studentID uuid.UUID, month, year int) (*invmodel.Invoice, error)

	CreateInvoice(ctx context.Context, inv *invmodel.Invoice) error

	// Satu batch write, bukan satu write per record.
	BatchCreateNotifications(ctx context.Context, records []notifmodel.Notification) error
}

// =========================================================
// GORM IMPLEMENTATION
// =========================================================

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) ListActiveStudents(ctx context.Context) ([]stumodel.Student, error) {
	var list []stumodel.Student
	err := s.DB.WithContext(ctx).
		Preload("StudentGuardians").
		Where("student_status = ?", stumodel.StudentStatusActive).
		Order("student_created_at ASC").
		Find(&list).Error
	return list, err
}

func (s *GormStore) GetFeeSchedule(ctx context.Context, month, year int) (*feemodel.FeeSchedule, error) {
	var m feemodel.FeeSchedule
	err := s.DB.WithContext(ctx).
		First(&m, "fee_schedule_month = ? AND fee_schedule_year = ?", month, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) FindInvoice(ctx context.Context, studentID uuid.UUID, month, year int) (*invmodel.Invoice, error) {
	var m invmodel.Invoice
	err := s.DB.WithContext(ctx).
		First(&m, "invoice_student_id = ? AND invoice_month = ? AND invoice_year = ?", studentID, month, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) CreateInvoice(ctx context.Context, inv *invmodel.Invoice) error {
	return s.DB.WithContext(ctx).Create(inv).Error
}

func (s *GormStore) BatchCreateNotifications(ctx context.Context, records []notifmodel.Notification) error {
	if len(records) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).CreateInBatches(records, 200).Error
}
