package catalog

import "scanstock-app/models"

// Products is the fixed catalog preloaded into the app. In a real deployment
// this comes from the company's item master; the scanner only reads it.
var Products = []models.Product{
	{ID: 1, Name: "Wireless Mouse M185", SKU: "WM-185-BLK", Barcode: "4902778918856", Stock: 15, Location: "A-12-3", Threshold: 20},
	{ID: 2, Name: "USB-C Cable 2m", SKU: "UC-200-WHT", Barcode: "8901234567890", Stock: 78, Location: "B-05-1", Threshold: 30},
	{ID: 3, Name: "Laptop Stand Aluminum", SKU: "LS-ALU-001", Barcode: "5012345678900", Stock: 5, Location: "C-08-2", Threshold: 15},
	{ID: 4, Name: "Bluetooth Keyboard", SKU: "KB-BT-500", Barcode: "6923456789012", Stock: 42, Location: "A-15-4", Threshold: 25},
	{ID: 5, Name: "HDMI Cable 3m", SKU: "HD-300-BLK", Barcode: "7834567890123", Stock: 8, Location: "B-11-5", Threshold: 20},
	{ID: 6, Name: "Desk Lamp LED", SKU: "DL-LED-W", Barcode: "8745678901234", Stock: 65, Location: "D-03-1", Threshold: 15},
}

// FindProduct resolves a scanned code against both barcode and SKU.
// Exact, case-sensitive match only; first hit wins.
func FindProduct(code string) (models.Product, bool) {
	for _, p := range Products {
		if p.Barcode == code || p.SKU == code {
			return p, true
		}
	}
	return models.Product{}, false
}
