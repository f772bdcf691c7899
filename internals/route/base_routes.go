package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var arranque = time.Now()

// RegisterBaseRoutes expone los endpoints operativos que no pasan por el
// guard de escritura.
func RegisterBaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		estadoDB := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			estadoDB = "down"
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"db":      estadoDB,
			"uptime":  time.Since(arranque).Round(time.Second).String(),
			"version": "1.0.0",
		})
	})
}
