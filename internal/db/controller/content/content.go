// Package content provides persistence operations for the site content:
// the hero and about singletons and the six ordered collections
// (services, products, team, testimonials, portfolio, FAQ).
//
// Singleton tables hold at most one row, guaranteed by a unique slot
// column and upserted with INSERT ... ON CONFLICT. Collection rows carry
// a sort_order rank; listing sorts ascending with id as the tie break,
// and creation assigns max+1 inside a transaction when the caller does
// not provide a rank.
package content

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a content row with the requested id does not exist.
	ErrNotFound = errors.New("content item not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

const listOrderClause = "sort_order ASC, id ASC"

// nextSortOrder computes max(sort_order)+1 for the given model's table.
// Call inside the same transaction as the insert consuming the rank.
func nextSortOrder(tx *gorm.DB, model interface{}) (int, error) {
	var current int

	err := tx.Model(model).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&current).Error
	if err != nil {
		return 0, err
	}

	return current + 1, nil
}
