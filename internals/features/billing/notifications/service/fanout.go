// file: internals/features/billing/notifications/service/fanout.go
package service

import (
	"fmt"

	invmodel "sekolahku_backend/internals/features/billing/invoices/model"
	notifmodel "sekolahku_backend/internals/features/billing/notifications/model"
	stumodel "sekolahku_backend/internals/features/school/students/model"
)

// BuildInvoiceNotifications: satu record per (invoice, wali) dengan pesan
// yang sudah dirender. Record mulai unread; status baca selanjutnya urusan
// subsistem notifikasi.
func BuildInvoiceNotifications(inv invmodel.Invoice, student stumodel.Student) []notifmodel.Notification {
	if len(student.StudentGuardians) == 0 {
		return nil
	}

	period := invmodel.PeriodLabel(inv.InvoiceMonth, inv.InvoiceYear)
	title := "Tagihan SPP " + period
	message := fmt.Sprintf(
		"Tagihan SPP %s untuk ananda %s telah terbit sebesar Rp%d. Mohon segera melakukan pembayaran.",
		period, student.StudentName, inv.InvoiceTotalIDR,
	)

	out := make([]notifmodel.Notification, 0, len(student.StudentGuardians))
	for _, g := range student.StudentGuardians {
		out = append(out, notifmodel.Notification{
			NotificationUserID:    g.StudentGuardianUserID,
			NotificationInvoiceID: inv.InvoiceID,
			NotificationTitle:     title,
			NotificationMessage:   message,
		})
	}
	return out
}
