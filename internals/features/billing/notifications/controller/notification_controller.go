// file: internals/features/billing/notifications/controller/notification_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifmodel "sekolahku_backend/internals/features/billing/notifications/model"
	helper "sekolahku_backend/internals/helpers"
	authmw "sekolahku_backend/internals/middlewares/auth"
)

type NotificationHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// ListMine (GET /notifications) — notifikasi milik wali yang login.
// Engine billing hanya MENULIS record; status baca dimutasi subsistem
// notifikasi, bukan di sini.
// -----------------------------------------
func (h *NotificationHandler) ListMine(c *fiber.Ctx) error {
	raw, _ := c.Locals(authmw.LocUserID).(string)
	userID, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid user id in token")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.WithContext(c.UserContext()).Model(&notifmodel.Notification{}).
		Where("notification_user_id = ?", userID)
	if v := c.Query("unread"); strings.EqualFold(v, "true") {
		q = q.Where("notification_is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []notifmodel.Notification
	if err := q.
		Order("notification_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list, helper.BuildMeta(total, p))
}
