// Generated by crudgen from table users.

package model

import (
	scaffold "github.com/ridoystarlord/crudgen/scaffold"
)

// UserModel is the persistence model of the users table.
type UserModel struct {
	ID        int64   `gorm:"column:id;primaryKey;not null"`
	Name      *string `gorm:"column:name"`
	Created   *string `gorm:"column:created"`
	IsDeleted *bool   `gorm:"column:is_deleted;not null;default:0"`
}

func (UserModel) TableName() string {
	return UserSchema.QualifiedName()
}

// UserSchema binds UserModel to its table. Automatic timestamps are disabled.
var UserSchema = scaffold.Table{
	Name:       "users",
	Schema:     "",
	Timestamps: false,
	Fields: []scaffold.Field{
		{Name: "id", Type: scaffold.Integer, AllowNull: false, PrimaryKey: true},
		{Name: "name", Type: scaffold.String, AllowNull: true},
		{Name: "created", Type: scaffold.Date, AllowNull: true},
		{Name: "is_deleted", Type: scaffold.Boolean, AllowNull: false, DefaultValue: scaffold.Default("0")},
	},
}
