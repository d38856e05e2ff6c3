package models

type Product struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Barcode   string `json:"barcode"`
	Stock     int    `json:"stock"`
	Location  string `json:"location"`
	Threshold int    `json:"threshold"`
}

type StockStatus string

const (
	StatusHealthy StockStatus = "HEALTHY"
	StatusMonitor StockStatus = "MONITOR"
	StatusLow     StockStatus = "LOW"
)

// GetStockStatus maps a stock count to its display tier. The per-product
// reorder threshold is a separate signal and does not move these buckets.
func GetStockStatus(stock int) StockStatus {
	if stock > 50 {
		return StatusHealthy
	}
	if stock >= 20 {
		return StatusMonitor
	}
	return StatusLow
}
