package models

// ScanRecord is a denormalized snapshot taken at scan time. Product fields are
// copied, not joined, so history stays accurate if the catalog changes later.
type ScanRecord struct {
	ID          string `json:"id"`
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku"`
	Timestamp   string `json:"timestamp"`
	StockAtScan int    `json:"stockAtScan"`
}
