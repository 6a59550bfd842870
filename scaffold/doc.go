// Package scaffold is the runtime library imported by modules that crudgen generates.
//
// It carries everything the generated layers share instead of duplicating it per module:
// the column schema vocabulary used by persistence models, the gorm-backed Store with its
// soft-delete capability, the NotFound error, and the uniform success/warning response
// envelope together with the gin adapters that render it.
package scaffold
