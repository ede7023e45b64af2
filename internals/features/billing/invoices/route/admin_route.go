// file: internals/features/billing/invoices/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invapi "sekolahku_backend/internals/features/billing/invoices/controller"
	middlewares "sekolahku_backend/internals/middlewares"
)

/*
Admin routes (generate, status action, reporting)
Diproteksi AuthJWT + RequireRole di group /api/a (lihat route/index.go).
*/
func InvoicesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &invapi.InvoiceHandler{DB: db}

	grp := admin.Group("/invoices")
	{
		// =========================
		// Generate (billing run)
		// =========================
		grp.Post("/generate", middlewares.GenerateRateLimiter(), h.Generate)

		// =========================
		// Reporting (statis dulu, baru param :id)
		// =========================
		grp.Get("/export", h.Export)
		grp.Get("/yearly-summary", h.YearlySummary)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)

		// =========================
		// Status action
		// =========================
		grp.Post("/:id/mark-paid", h.MarkPaid)
	}
}
