package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var appDB *gorm.DB

// OpenLocalDB opens (creating if needed) the device-local sqlite store.
func OpenLocalDB(path string) (*gorm.DB, error) {

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		fmt.Println("Error opening local store:", err)
		return nil, err
	}

	appDB = db
	return db, nil
}

// GetDB returns the handle opened at startup.
func GetDB() (*gorm.DB, error) {
	if appDB == nil {
		return nil, fmt.Errorf("local store is not open")
	}
	return appDB, nil
}
