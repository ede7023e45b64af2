// file: internals/features/billing/invoices/service/generator_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feemodel "sekolahku_backend/internals/features/billing/fees/model"
	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	notifmodel "sekolahku_backend/internals/features/billing/notifications/model"
	stumodel "sekolahku_backend/internals/features/school/students/model"
)

// =========================================================
// FAKE STORE — in-memory, tanpa Postgres
// =========================================================

type fakeStore struct {
	students []stumodel.Student
	schedule *feemodel.FeeSchedule

	invoices map[string]invmodel.Invoice
	notifs   []notifmodel.Notification

	batchCalls    int
	failCreateFor map[uuid.UUID]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		invoices:      map[string]invmodel.Invoice{},
		failCreateFor: map[uuid.UUID]error{},
	}
}

func invoiceKey(studentID uuid.UUID, month, year int) string {
	return fmt.Sprintf("%s|%02d|%d", studentID, month, year)
}

func (f *fakeStore) ListActiveStudents(ctx context.Context) ([]stumodel.Student, error) {
	return f.students, nil
}

func (f *fakeStore) GetFeeSchedule(ctx context.Context, month, year int) (*feemodel.FeeSchedule, error) {
	if f.schedule == nil || f.schedule.FeeScheduleMonth != month || f.schedule.FeeScheduleYear != year {
		return nil, nil
	}
	return f.schedule, nil
}

func (f *fakeStore) FindInvoice(ctx context.Context, studentID uuid.UUID, month, year int) (*invmodel.Invoice, error) {
	if inv, ok := f.invoices[invoiceKey(studentID, month, year)]; ok {
		return &inv, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateInvoice(ctx context.Context, inv *invmodel.Invoice) error {
	if err, ok := f.failCreateFor[inv.InvoiceStudentID]; ok {
		return err
	}
	inv.InvoiceID = uuid.New()
	f.invoices[invoiceKey(inv.InvoiceStudentID, inv.InvoiceMonth, inv.InvoiceYear)] = *inv
	return nil
}

func (f *fakeStore) BatchCreateNotifications(ctx context.Context, records []notifmodel.Notification) error {
	f.batchCalls++
	f.notifs = append(f.notifs, records...)
	return nil
}

// =========================================================
// FIXTURES
// =========================================================

func julySchedule() *feemodel.FeeSchedule {
	return &feemodel.FeeSchedule{
		FeeScheduleID:    uuid.New(),
		FeeScheduleMonth: 7,
		FeeScheduleYear:  2025,
		FeeScheduleLevelAmounts: []feemodel.LevelAmount{
			{LevelCode: "sd", AmountIDR: 2_000_000},
			{LevelCode: "smp", AmountIDR: 2_600_000},
		},
		FeeScheduleExtraFees: []feemodel.ExtraFee{
			{Key: "kegiatan", Name: "Dana Kegiatan", AmountIDR: 50_000},
		},
		FeeScheduleTrialDiscountPercent: 50,
	}
}

func activeStudent(name, level string, joined time.Time, guardians int) stumodel.Student {
	s := stumodel.Student{
		StudentID:        uuid.New(),
		StudentName:      name,
		StudentLevelCode: level,
		StudentJoinedAt:  joined,
		StudentStatus:    stumodel.StudentStatusActive,
	}
	for i := 0; i < guardians; i++ {
		s.StudentGuardians = append(s.StudentGuardians, stumodel.StudentGuardian{
			StudentGuardianID:        uuid.New(),
			StudentGuardianStudentID: s.StudentID,
			StudentGuardianUserID:    uuid.New(),
		})
	}
	return s
}

func outcomeFor(t *testing.T, summary RunSummary, studentID uuid.UUID) OutcomeCode {
	t.Helper()
	for _, o := range summary.Outcomes {
		if o.StudentID == studentID {
			return o.Outcome
		}
	}
	t.Fatalf("outcome untuk siswa %s tidak ada", studentID)
	return ""
}

// =========================================================
// TESTS
// =========================================================

func TestGenerate_MissingScheduleFailsFast(t *testing.T) {
	store := newFakeStore()
	store.students = []stumodel.Student{activeStudent("Aisyah", "sd", date(2025, time.January, 1), 1)}

	_, err := NewGenerator(store).Generate(context.Background(), 7, 2025)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFeeScheduleNotConfigured)
	assert.Empty(t, store.invoices, "tidak boleh ada invoice parsial")
	assert.Zero(t, store.batchCalls)
}

func TestGenerate_MixedRoster(t *testing.T) {
	store := newFakeStore()
	store.schedule = julySchedule()

	full := activeStudent("Aisyah", "sd", date(2025, time.January, 1), 2)
	joiner := activeStudent("Bagas", "sd", date(2025, time.July, 13), 1)
	trial := activeStudent("Citra", "smp", date(2025, time.July, 26), 1)
	trial.StudentIsTrial = true
	future := activeStudent("Dimas", "sd", date(2025, time.August, 1), 1)
	noFee := activeStudent("Eka", "tk", date(2025, time.January, 1), 1)
	store.students = []stumodel.Student{full, joiner, trial, future, noFee}

	summary, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.CreatedCount)
	assert.Len(t, summary.Invoices, 3)
	assert.Len(t, summary.Outcomes, 5)

	assert.Equal(t, OutcomeBilled, outcomeFor(t, summary, full.StudentID))
	assert.Equal(t, OutcomeBilled, outcomeFor(t, summary, joiner.StudentID))
	assert.Equal(t, OutcomeBilled, outcomeFor(t, summary, trial.StudentID))
	assert.Equal(t, OutcomeSkippedNoOverlap, outcomeFor(t, summary, future.StudentID))
	assert.Equal(t, OutcomeSkippedNoFee, outcomeFor(t, summary, noFee.StudentID))

	// Nominal: paket penuh + biaya tambahan flat.
	fullInv := store.invoices[invoiceKey(full.StudentID, 7, 2025)]
	assert.Equal(t, 2_000_000+50_000, fullInv.InvoiceTotalIDR)

	// Prorata 16 hari + biaya tambahan.
	joinerInv := store.invoices[invoiceKey(joiner.StudentID, 7, 2025)]
	assert.Equal(t, 1_231_000+50_000, joinerInv.InvoiceTotalIDR)
	assert.Equal(t, 16, joinerInv.InvoiceStudyDays)

	// Trial 5 hari diskon 50% dari tarif smp: 2.600.000/26*5*0,5 = 250.000.
	trialInv := store.invoices[invoiceKey(trial.StudentID, 7, 2025)]
	assert.Equal(t, 250_000+50_000, trialInv.InvoiceTotalIDR)
	assert.True(t, trialInv.InvoiceIsTrial)
}

func TestGenerate_SecondRunCreatesNothing(t *testing.T) {
	store := newFakeStore()
	store.schedule = julySchedule()
	stu := activeStudent("Aisyah", "sd", date(2025, time.January, 1), 1)
	store.students = []stumodel.Student{stu}

	first, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)
	require.Equal(t, 1, first.CreatedCount)

	second, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)

	assert.Zero(t, second.CreatedCount)
	assert.Equal(t, OutcomeSkippedAlreadyBilled, outcomeFor(t, second, stu.StudentID))
	assert.Len(t, store.invoices, 1)
	// Run kedua tidak boleh menambah notifikasi.
	assert.Equal(t, 1, store.batchCalls)
}

func TestGenerate_DifferentPeriodsIndependent(t *testing.T) {
	store := newFakeStore()
	store.schedule = julySchedule()
	stu := activeStudent("Aisyah", "sd", date(2025, time.January, 1), 1)
	store.students = []stumodel.Student{stu}

	_, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)

	// Periode Agustus punya schedule sendiri.
	store.schedule = julySchedule()
	store.schedule.FeeScheduleMonth = 8

	summary, err := NewGenerator(store).Generate(context.Background(), 8, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CreatedCount)
	assert.Len(t, store.invoices, 2)
}

func TestGenerate_UniqueViolationTreatedAsAlreadyBilled(t *testing.T) {
	store := newFakeStore()
	store.schedule = julySchedule()
	racer := activeStudent("Aisyah", "sd", date(2025, time.January, 1), 1)
	other := activeStudent("Bagas", "sd", date(2025, time.January, 1), 1)
	store.students = []stumodel.Student{racer, other}

	// Simulasi run paralel: insert kena unique constraint di DB.
	store.failCreateFor[racer.StudentID] = &pgconn.PgError{Code: "23505"}

	summary, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.CreatedCount)
	assert.Equal(t, OutcomeSkippedAlreadyBilled, outcomeFor(t, summary, racer.StudentID))
	assert.Equal(t, OutcomeBilled, outcomeFor(t, summary, other.StudentID))
}

func TestGenerate_NotificationFanout(t *testing.T) {
	store := newFakeStore()
	store.schedule = julySchedule()

	twoGuardians := activeStudent("Aisyah", "sd", date(2025, time.January, 1), 2)
	oneGuardian := activeStudent("Bagas", "sd", date(2025, time.January, 1), 1)
	orphanRecord := activeStudent("Citra", "sd", date(2025, time.January, 1), 0)
	store.students = []stumodel.Student{twoGuardians, oneGuardian, orphanRecord}

	summary, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)
	require.Equal(t, 3, summary.CreatedCount)

	// Satu record per (invoice, wali); siswa tanpa wali tidak menyumbang.
	assert.Len(t, store.notifs, 3)
	// Semua notifikasi dalam SATU batch write.
	assert.Equal(t, 1, store.batchCalls)

	for _, n := range store.notifs {
		assert.Contains(t, n.NotificationMessage, "Juli 2025")
		assert.NotEqual(t, uuid.Nil, n.NotificationInvoiceID)
		assert.False(t, n.NotificationIsRead)
	}
}

func TestGenerate_NoStudents(t *testing.T) {
	store := newFakeStore()
	store.schedule = julySchedule()

	summary, err := NewGenerator(store).Generate(context.Background(), 7, 2025)
	require.NoError(t, err)
	assert.Zero(t, summary.CreatedCount)
	assert.Empty(t, summary.Outcomes)
	assert.Zero(t, store.batchCalls, "tanpa invoice baru tidak ada batch write")
}
