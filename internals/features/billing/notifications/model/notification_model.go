// file: internals/features/billing/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// =========================================================
// MODEL notifications — satu baris per (invoice, wali)
// =========================================================

type Notification struct {
	// PK
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`

	// Penerima: wali (users.id di sistem auth eksternal)
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index:ix_notifications_user" json:"notification_user_id"`

	// FK → invoices(invoice_id)
	NotificationInvoiceID uuid.UUID `gorm:"column:notification_invoice_id;type:uuid;not null;index" json:"notification_invoice_id"`

	NotificationTitle   string `gorm:"column:notification_title;type:varchar(120);not null" json:"notification_title"`
	NotificationMessage string `gorm:"column:notification_message;type:text;not null" json:"notification_message"`

	// Status baca dimutasi subsistem notifikasi, bukan engine billing.
	NotificationIsRead bool `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;not null;default:now();index:ix_notifications_created_at" json:"notification_created_at"`
}

func (Notification) TableName() string { return "notifications" }
