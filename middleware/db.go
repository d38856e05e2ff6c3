package middleware

import (
	"reflect"

	"scanstock-app/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InjectDBMiddleware(controller interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db, err := database.GetDB()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "error opening local store")
		}

		// Inject into the DB field of the controller
		val := reflect.ValueOf(controller)
		if val.Kind() != reflect.Ptr || val.IsNil() {
			return fiber.NewError(fiber.StatusInternalServerError, "controller must be a non-nil pointer")
		}

		elem := val.Elem()
		dbField := elem.FieldByName("DB")
		if !dbField.IsValid() || !dbField.CanSet() {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field not found or cannot be set in controller")
		}

		if dbField.Type() != reflect.TypeOf((*gorm.DB)(nil)) {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field has wrong type")
		}

		dbField.Set(reflect.ValueOf(db))

		return c.Next()
	}
}
