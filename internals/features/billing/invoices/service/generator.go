// file: internals/features/billing/invoices/service/generator.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	notifmodel "sekolahku_backend/internals/features/billing/notifications/model"
	notifsvc "sekolahku_backend/internals/features/billing/notifications/service"
)

// Periode tanpa fee schedule = hard stop: billing tidak boleh jalan
// dengan harga default/implisit.
var ErrFeeScheduleNotConfigured = errors.New("fee schedule belum dikonfigurasi untuk periode ini")

// =========================================================
// OUTCOME PER SISWA
// =========================================================

type OutcomeCode string

const (
	OutcomeBilled               OutcomeCode = "billed"
	OutcomeSkippedAlreadyBilled OutcomeCode = "skipped_already_billed"
	OutcomeSkippedNoFee         OutcomeCode = "skipped_no_fee"
	OutcomeSkippedNoOverlap     OutcomeCode = "skipped_no_overlap"
)

type StudentOutcome struct {
	StudentID   uuid.UUID   `json:"student_id"`
	StudentName string      `json:"student_name"`
	Outcome     OutcomeCode `json:"outcome"`
}

type RunSummary struct {
	Month        int                `json:"month"`
	Year         int                `json:"year"`
	CreatedCount int                `json:"created_count"`
	Invoices     []invmodel.Invoice `json:"invoices"`
	Outcomes     []StudentOutcome   `json:"outcomes"`
}

// =========================================================
// ORCHESTRATOR
// =========================================================

type Generator struct {
	Store BillingStore
}

func NewGenerator(store BillingStore) *Generator {
	return &Generator{Store: store}
}

// Generate: billing run sekuensial untuk satu periode. Aman dijalankan
// ulang — idempotency guard per siswa membuat run kedua menghasilkan
// created_count 0, bukan tagihan ganda. Kegagalan di tengah run
// meninggalkan invoice yang sudah dibuat (retry melanjutkan sisanya).
func (g *Generator) Generate(ctx context.Context, month, year int) (RunSummary, error) {
	summary := RunSummary{Month: month, Year: year}

	// 1) Resolve schedule sekali, lalu dipakai by-value sepanjang run —
	// edit schedule di tengah run tidak mengubah batch yang sedang jalan.
	schedule, err := g.Store.GetFeeSchedule(ctx, month, year)
	if err != nil {
		return summary, err
	}
	if schedule == nil {
		return summary, fmt.Errorf("%w: %02d-%d", ErrFeeScheduleNotConfigured, month, year)
	}
	sched := *schedule

	monthStart, monthEnd := MonthBounds(month, year)

	students, err := g.Store.ListActiveStudents(ctx)
	if err != nil {
		return summary, err
	}

	staged := make([]notifmodel.Notification, 0, len(students))

	for _, stu := range students {
		// 2) Idempotency guard sebelum hitung apa pun
		existing, err := g.Store.FindInvoice(ctx, stu.StudentID, month, year)
		if err != nil {
			return summary, err
		}
		if existing != nil {
			summary.Outcomes = append(summary.Outcomes, StudentOutcome{stu.StudentID, stu.StudentName, OutcomeSkippedAlreadyBilled})
			continue
		}

		// 3) Tanpa irisan temporal → exclude sebelum prorata
		if !HasOverlap(stu.StudentJoinedAt, stu.StudentEndedAt, monthStart, monthEnd) {
			summary.Outcomes = append(summary.Outcomes, StudentOutcome{stu.StudentID, stu.StudentName, OutcomeSkippedNoOverlap})
			continue
		}

		// 4) Tarif jenjang tidak dikonfigurasi → skip siswa ini saja
		baseFee, ok := sched.LevelFee(stu.StudentLevelCode)
		if !ok {
			log.Printf("[WARN] generate %02d-%d: level %q tanpa tarif, siswa %s dilewati", month, year, stu.StudentLevelCode, stu.StudentID)
			summary.Outcomes = append(summary.Outcomes, StudentOutcome{stu.StudentID, stu.StudentName, OutcomeSkippedNoFee})
			continue
		}

		// 5) Prorata
		tuition, billable := ProrateTuition(ProrationInput{
			BaseFeeIDR:           baseFee,
			JoinedAt:             stu.StudentJoinedAt,
			EndedAt:              stu.StudentEndedAt,
			MonthStart:           monthStart,
			MonthEnd:             monthEnd,
			IsTrial:              stu.StudentIsTrial,
			TrialDiscountPercent: sched.FeeScheduleTrialDiscountPercent,
		})
		if !billable {
			summary.Outcomes = append(summary.Outcomes, StudentOutcome{stu.StudentID, stu.StudentName, OutcomeSkippedNoOverlap})
			continue
		}

		// 6) Rakit & simpan
		inv := AssembleInvoice(stu.StudentID, month, year, stu.StudentLevelCode, stu.StudentIsTrial, tuition, sched.FeeScheduleExtraFees)
		if err := g.Store.CreateInvoice(ctx, &inv); err != nil {
			if isUniqueViolation(err) {
				// Unique constraint = jaring pengaman kalau ada run paralel
				// untuk periode yang sama; bukan mekanisme utama.
				summary.Outcomes = append(summary.Outcomes, StudentOutcome{stu.StudentID, stu.StudentName, OutcomeSkippedAlreadyBilled})
				continue
			}
			return summary, err
		}

		summary.CreatedCount++
		summary.Invoices = append(summary.Invoices, inv)
		summary.Outcomes = append(summary.Outcomes, StudentOutcome{stu.StudentID, stu.StudentName, OutcomeBilled})

		// 7) Stage notifikasi per wali
		staged = append(staged, notifsvc.BuildInvoiceNotifications(inv, stu)...)
	}

	// 8) Satu batch write setelah loop; gagal di sini tidak me-rollback
	// invoice yang sudah dibuat.
	if len(staged) > 0 {
		if err := g.Store.BatchCreateNotifications(ctx, staged); err != nil {
			return summary, fmt.Errorf("batch notifikasi gagal: %w", err)
		}
	}

	return summary, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
