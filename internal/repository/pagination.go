package repository

import "gorm.io/gorm"

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePage 归一化分页参数
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	page, pageSize = NormalizePage(page, pageSize)
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}
