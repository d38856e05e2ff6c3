package main

import (
	"fmt"
	"log"
	"os"

	"scanstock-app/config"
	"scanstock-app/controllers/idgen"
	"scanstock-app/database"
	"scanstock-app/migration"
	"scanstock-app/routes"
	"scanstock-app/scanner"
	"scanstock-app/services"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Open the device-local store
	db, err := database.OpenLocalDB(config.DBPath)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}

	// Auto migrate models
	err = migration.Migrate(db)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupScanRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupHistoryRoutes(app)
	routes.SetupSettingsRoutes(app)

	// Wedge scanner feed: a USB scanner in keyboard mode types into stdin,
	// one code per line, and runs the same pipeline as the mobile client.
	if config.ScannerInput == "stdin" {
		scanService := services.NewScanService(db)
		wedge := scanner.NewWedgeDecoder(os.Stdin)
		err := wedge.Start(func(code string) {
			result, err := scanService.ProcessScan(code)
			if err != nil {
				fmt.Println("Product not found:", code)
				return
			}
			fmt.Printf("Scanned %s (%s), stock %d [%s]\n",
				result.Product.Name, result.Product.SKU, result.Product.Stock, result.Status)
		}, func(err error) {
			log.Println("Wedge scanner stopped:", err)
		})
		if err != nil {
			log.Println("Failed to start wedge scanner:", err)
		}
		defer wedge.Stop()
		fmt.Println("📠 Wedge scanner listening on stdin")
	}

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
