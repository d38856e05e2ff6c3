package routes

import (
	"scanstock-app/config"
	"scanstock-app/controllers"
	"scanstock-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupScanRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES + "/mobile")
	scanController := &controllers.ScanController{}
	api.Use(middleware.InjectDBMiddleware(scanController))

	api.Post("/scan", scanController.Scan)
}

func SetupProductRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES + "/mobile/products")
	productController := &controllers.ProductController{}
	api.Use(middleware.InjectDBMiddleware(productController))

	api.Get("/:code", productController.GetProductByCode)
	api.Post("/adjust", productController.AdjustStock)
	api.Post("/alert", productController.Alert)
}

func SetupHistoryRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES + "/mobile/history")
	historyController := &controllers.HistoryController{}
	api.Use(middleware.InjectDBMiddleware(historyController))

	api.Get("/", historyController.GetHistory)
	api.Get("/export", historyController.ExportExcel)
	api.Post("/dummy", historyController.CreateDummyScans)
}

func SetupSettingsRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES + "/mobile/settings")
	settingsController := &controllers.SettingsController{}
	api.Use(middleware.InjectDBMiddleware(settingsController))

	api.Get("/", settingsController.GetSettings)
	api.Post("/", settingsController.SaveSettings)
	api.Post("/test-connection", settingsController.TestConnection)
}
