package store

import "gorm.io/gorm"

// Scope restricts a query to a single store. Every tenant-owned table
// carries a store_id column, so this composes with any repo query.
func Scope(storeID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("store_id = ?", storeID)
	}
}
