// Generated by crudgen from table users.

package domain

import "context"

// UserRepository is the storage capability the use-case depends on.
// Update writes the columns named in fields, nulls included. Update and Delete
// fail with a NotFound error when id does not exist.
type UserRepository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, entity *User) (*User, error)
	Update(ctx context.Context, id int64, entity *User, fields []string) (*User, error)
	Delete(ctx context.Context, id int64) error
}
