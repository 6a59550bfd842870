// Generated by crudgen from table users.

package domain

// User is the domain entity of the users table.
type User struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Created   *string `json:"created"`
	IsDeleted *bool   `json:"is_deleted"`
}
