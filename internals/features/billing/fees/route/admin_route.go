// file: internals/features/billing/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeapi "sekolahku_backend/internals/features/billing/fees/controller"
)

/*
Admin routes (CRUD fee schedule per periode)
*/
func FeeSchedulesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &feeapi.FeeScheduleHandler{DB: db}

	grp := admin.Group("/fee-schedules")
	{
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Get("/period", h.GetByPeriod)
		grp.Get("/", h.List)
	}
}
