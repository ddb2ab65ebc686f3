package repository

import "gorm.io/gorm"

// byPosition keeps child rows in their original list order.
func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
