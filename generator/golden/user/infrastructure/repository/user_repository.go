// Generated by crudgen from table users.

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ridoystarlord/crudgen/generator/golden/user/domain"
	"github.com/ridoystarlord/crudgen/generator/golden/user/infrastructure/model"
	scaffold "github.com/ridoystarlord/crudgen/scaffold"
)

// UserRepository stores User entities in the users table.
type UserRepository struct {
	store *scaffold.Store[model.UserModel]
}

var _ domain.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		store: scaffold.NewStore[model.UserModel](db, model.UserSchema).WithSoftDeleteColumn("is_deleted"),
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	entities := make([]domain.User, 0, len(rows))
	for i := range rows {
		entities = append(entities, *toUser(&rows[i]))
	}
	return entities, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row, err := r.store.FindByPK(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return toUser(row), nil
}

func (r *UserRepository) Create(ctx context.Context, entity *domain.User) (*domain.User, error) {
	row := fromUser(entity)
	if err := r.store.Create(ctx, row); err != nil {
		return nil, err
	}
	return toUser(row), nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, entity *domain.User, fields []string) (*domain.User, error) {
	row, err := r.store.FindByPK(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, scaffold.NotFound("User")
	}

	if err := r.store.Update(ctx, row, fromUser(entity), fields); err != nil {
		return nil, err
	}
	return toUser(row), nil
}

// Delete is a soft delete: it sets is_deleted and keeps the row.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	row, err := r.store.FindByPK(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return scaffold.NotFound("User")
	}
	return r.store.MarkDeleted(ctx, row)
}

func toUser(row *model.UserModel) *domain.User {
	return &domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Created:   row.Created,
		IsDeleted: row.IsDeleted,
	}
}

func fromUser(entity *domain.User) *model.UserModel {
	return &model.UserModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Created:   entity.Created,
		IsDeleted: entity.IsDeleted,
	}
}
