package scaffold

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultSoftDeleteColumn = "is_deleted"

// Store is the storage abstraction behind generated repositories. Soft deletion
// (MarkDeleted) and physical deletion (Delete) are separate capabilities.
// Key lookups and update column sets come from the Table the model is bound to.
type Store[M any] struct {
	db               *gorm.DB
	table            Table
	softDeleteColumn string
}

func NewStore[M any](db *gorm.DB, table Table) *Store[M] {
	return &Store[M]{db: db, table: table, softDeleteColumn: DefaultSoftDeleteColumn}
}

// WithSoftDeleteColumn returns a copy of the store flagging column on MarkDeleted.
func (s *Store[M]) WithSoftDeleteColumn(column string) *Store[M] {
	return &Store[M]{db: s.db, table: s.table, softDeleteColumn: column}
}

// FindAll returns every row, soft-deleted ones included.
func (s *Store[M]) FindAll(ctx context.Context) ([]M, error) {
	rows := []M{}
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByPK returns nil without error when no row has the given primary key.
func (s *Store[M]) FindByPK(ctx context.Context, id any) (*M, error) {
	pk, ok := s.table.PrimaryKey()
	if !ok {
		return nil, fmt.Errorf("table %s has no primary key field", s.table.QualifiedName())
	}

	var row M
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: pk.Name}, Value: id}).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Store[M]) Create(ctx context.Context, row *M) error {
	return s.db.WithContext(ctx).Create(row).Error
}

// Update writes the given columns of changes to row, zero values and nulls
// included, and reloads it. The primary key and unknown columns are ignored.
func (s *Store[M]) Update(ctx context.Context, row *M, changes *M, columns []string) error {
	db := s.db.WithContext(ctx)
	if writable := s.table.Writable(columns); len(writable) > 0 {
		if err := db.Model(row).Select(writable).Updates(changes).Error; err != nil {
			return err
		}
	}
	return db.First(row).Error
}

// MarkDeleted sets the soft-delete flag of row; the row stays in the table.
func (s *Store[M]) MarkDeleted(ctx context.Context, row *M) error {
	if _, ok := s.table.Field(s.softDeleteColumn); !ok {
		return fmt.Errorf("table %s has no soft-delete column %q", s.table.QualifiedName(), s.softDeleteColumn)
	}
	return s.db.WithContext(ctx).Model(row).Update(s.softDeleteColumn, true).Error
}

// Delete removes row from the table.
func (s *Store[M]) Delete(ctx context.Context, row *M) error {
	return s.db.WithContext(ctx).Delete(row).Error
}
