// file: internals/features/billing/notifications/service/fanout_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	stumodel "sekolahku_backend/internals/features/school/students/model"
)

func TestBuildInvoiceNotifications(t *testing.T) {
	inv := invmodel.Invoice{
		InvoiceID:       uuid.New(),
		InvoiceMonth:    7,
		InvoiceYear:     2025,
		InvoiceTotalIDR: 1_281_000,
	}
	student := stumodel.Student{
		StudentID:   uuid.New(),
		StudentName: "Aisyah",
		StudentGuardians: []stumodel.StudentGuardian{
			{StudentGuardianUserID: uuid.New()},
			{StudentGuardianUserID: uuid.New()},
		},
	}

	out := BuildInvoiceNotifications(inv, student)
	require.Len(t, out, 2)

	for i, n := range out {
		assert.Equal(t, student.StudentGuardians[i].StudentGuardianUserID, n.NotificationUserID)
		assert.Equal(t, inv.InvoiceID, n.NotificationInvoiceID)
		assert.Equal(t, "Tagihan SPP Juli 2025", n.NotificationTitle)
		assert.Contains(t, n.NotificationMessage, "Aisyah")
		assert.Contains(t, n.NotificationMessage, "Rp1281000")
		assert.False(t, n.NotificationIsRead)
	}
}

func TestBuildInvoiceNotifications_NoGuardians(t *testing.T) {
	out := BuildInvoiceNotifications(invmodel.Invoice{}, stumodel.Student{StudentName: "Bagas"})
	assert.Nil(t, out)
}
