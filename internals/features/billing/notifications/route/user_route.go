// file: internals/features/billing/notifications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifapi "sekolahku_backend/internals/features/billing/notifications/controller"
)

/*
User routes (wali melihat notifikasi tagihannya sendiri)
*/
func NotificationsUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &notifapi.NotificationHandler{DB: db}

	user.Get("/notifications", h.ListMine)
}
