// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stuapi "sekolahku_backend/internals/features/school/students/controller"
)

/*
Admin routes (roster siswa + wali)
*/
func StudentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &stuapi.StudentHandler{DB: db}

	grp := admin.Group("/students")
	{
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
	}
}
