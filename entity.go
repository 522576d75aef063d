package pagekit

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleEntity is returned after an update matched no rows because the
// in-memory version no longer corresponds to the stored one (a lost update
// was prevented).
var ErrStaleEntity = errors.New("stale entity: version conflict")

// Identified is implemented by models embedding Entity.
type Identified interface {
	EntityID() uuid.UUID
}

// Entity is an embeddable base model for GORM entities. The identifier is a
// time-ordered (version 7) UUID assigned once at construction and never
// updated afterwards; Version backs optimistic concurrency control and is
// incremented on every persisted update.
//
// Usage:
//
//	type User struct {
//	    pagekit.Entity
//	    Name string
//	}
//
//	user := User{Entity: pagekit.NewEntity(), Name: "John"}
type Entity struct {
	// ID is the unique identifier. The column is create-only: GORM will not
	// include it in UPDATE statements.
	ID uuid.UUID `gorm:"type:uuid;primaryKey;<-:create" json:"id"`
	// Version is the optimistic lock counter.
	Version int64 `gorm:"not null" json:"version"`
}

// NewEntity returns an Entity with a freshly generated time-ordered UUID.
func NewEntity() Entity {
	return Entity{ID: uuid.Must(uuid.NewV7())}
}

// NewEntityWithID returns an Entity with an explicitly assigned identifier,
// useful when reconstructing entities from external sources. A nil UUID is
// rejected immediately.
func NewEntityWithID(id uuid.UUID) (Entity, error) {
	if id == uuid.Nil {
		return Entity{}, fmt.Errorf("entity id cannot be nil")
	}

	return Entity{ID: id}, nil
}

// EntityID - implements Identified.
func (e Entity) EntityID() uuid.UUID {
	return e.ID
}

// BeforeCreate backfills the identifier when the model was built as a zero
// value instead of through NewEntity.
func (e *Entity) BeforeCreate(*gorm.DB) error {
	if e.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("cannot generate entity id: %w", err)
	}
	e.ID = id

	return nil
}

// BeforeUpdate guards the UPDATE with the version the model was loaded at and
// bumps the stored counter. Combined with AfterUpdate this detects concurrent
// modifications without locking.
func (e *Entity) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.AddClause(clause.Where{Exprs: []clause.Expression{
		clause.Eq{Column: "version", Value: e.Version},
	}})
	tx.Statement.SetColumn("version", e.Version+1)

	return nil
}

// AfterUpdate reports ErrStaleEntity when the guarded UPDATE matched no rows.
func (e *Entity) AfterUpdate(tx *gorm.DB) error {
	if tx.RowsAffected == 0 {
		return fmt.Errorf("update of %s: %w", tx.Statement.Table, ErrStaleEntity)
	}

	return nil
}

// SameEntity reports whether a and b are the same logical entity: both carry
// the same non-nil identifier. The type parameter restricts comparison to one
// static model type, so two different aggregate kinds sharing an identifier
// can never be conflated.
func SameEntity[T Identified](a, b T) bool {
	return a.EntityID() != uuid.Nil && a.EntityID() == b.EntityID()
}

var _ Identified = Entity{}
