package repository

import (
	"fmt"

	"golang-trading-dashboard/internal/dashboard/query"

	"gorm.io/gorm"
)

// findPage counts every row matched by tx and loads the rows of page into
// dest, ordered newest first by sortCol. A page past the end leaves dest untouched.
func findPage(tx *gorm.DB, sortCol string, page query.Page, dest interface{}) (int64, error) {
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	if int64(page.Offset()) >= total {
		return total, nil
	}

	if err := tx.Order(newestFirst(sortCol)).Offset(page.Offset()).Limit(page.Limit).Find(dest).Error; err != nil {
		return 0, fmt.Errorf("find page: %w", err)
	}
	return total, nil
}
