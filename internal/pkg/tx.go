package pkg

import "gorm.io/gorm"

// WithTx runs fn inside a transaction on db, committing when fn
// returns nil. An error or a panic from fn rolls the transaction back;
// a panic is re-raised after the rollback. Mutations that touch more
// than one row, like the order status transitions, go through this.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
