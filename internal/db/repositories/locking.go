package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockRow holds a row lock on model's id until the surrounding transaction ends.
// SQLite has no row locks and drops the clause; its single writer serializes instead.
func lockRow(tx *gorm.DB, model any, id uint, strength string) error {
	return tx.Clauses(clause.Locking{Strength: strength}).Select("id").First(model, id).Error
}
