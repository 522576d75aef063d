package pagekit

import (
	"time"

	"github.com/google/uuid"
)

// AuditedEntity extends Entity with creation and modification timestamps.
// Both columns follow the GORM tracking conventions: CreatedAt is set once on
// insert, UpdatedAt on every save.
type AuditedEntity struct {
	Entity

	CreatedAt time.Time `gorm:"not null;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// NewAuditedEntity returns an AuditedEntity with a freshly generated
// time-ordered UUID.
func NewAuditedEntity() AuditedEntity {
	return AuditedEntity{Entity: NewEntity()}
}

// NewAuditedEntityWithID returns an AuditedEntity with an explicitly assigned
// identifier. A nil UUID is rejected immediately.
func NewAuditedEntityWithID(id uuid.UUID) (AuditedEntity, error) {
	entity, err := NewEntityWithID(id)
	if err != nil {
		return AuditedEntity{}, err
	}

	return AuditedEntity{Entity: entity}, nil
}
