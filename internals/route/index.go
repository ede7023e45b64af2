// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "sekolahku_backend/internals/constants"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Wali/ortu: cukup login, lihat notifikasi tagihan sendiri.
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	routeDetails.BillingUserRoutes(user, db)

	// ===================== ADMIN =====================
	// Admin/bendahara: generate tagihan, kelola tarif, roster, laporan.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.RequireRole(constants.BillingAdminRoles...),
	)
	routeDetails.BillingAdminRoutes(admin, db)
	routeDetails.SchoolAdminRoutes(admin, db)
}
