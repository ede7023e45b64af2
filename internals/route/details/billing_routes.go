// file: internals/route/details/billing_routes.go
package details

import (
	FeeScheduleRoute "sekolahku_backend/internals/features/billing/fees/route"
	InvoiceRoute "sekolahku_backend/internals/features/billing/invoices/route"
	NotificationRoute "sekolahku_backend/internals/features/billing/notifications/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BillingAdminRoutes(r fiber.Router, db *gorm.DB) {
	FeeScheduleRoute.FeeSchedulesAdminRoutes(r, db)
	InvoiceRoute.InvoicesAdminRoutes(r, db)
}

func BillingUserRoutes(r fiber.Router, db *gorm.DB) {
	NotificationRoute.NotificationsUserRoutes(r, db)
}
