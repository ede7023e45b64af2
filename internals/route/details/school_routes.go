// file: internals/route/details/school_routes.go
package details

import (
	StudentRoute "sekolahku_backend/internals/features/school/students/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentsAdminRoutes(r, db)
}
