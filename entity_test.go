package pagekit

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tLockUser struct {
	Entity
	Name string
}

func Test_NewEntity(t *testing.T) {
	a := NewEntity()
	b := NewEntity()

	require.NotEqual(t, uuid.Nil, a.ID)
	require.NotEqual(t, uuid.Nil, b.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, uuid.Version(7), a.ID.Version())
	require.Equal(t, int64(0), a.Version)
}

func Test_NewEntityWithID(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	e, err := NewEntityWithID(id)
	require.NoError(t, err)
	require.Equal(t, id, e.ID)

	_, err = NewEntityWithID(uuid.Nil)
	require.Error(t, err)
}

func Test_SameEntity(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	otherID := uuid.Must(uuid.NewV7())

	tests := []struct {
		name string
		a    tLockUser
		b    tLockUser
		want bool
	}{
		{
			"same id is same entity",
			tLockUser{Entity: Entity{ID: id}, Name: "Joe"},
			tLockUser{Entity: Entity{ID: id}, Name: "renamed"},
			true,
		},
		{
			"different ids differ",
			tLockUser{Entity: Entity{ID: id}},
			tLockUser{Entity: Entity{ID: otherID}},
			false,
		},
		{
			"nil ids never match",
			tLockUser{},
			tLockUser{},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameEntity(tt.a, tt.b); got != tt.want {
				t.Errorf("%s: got %v want %v", tt.name, got, tt.want)
			}
		})
	}
}

func Test_Entity_BeforeCreate_BackfillsID(t *testing.T) {
	e := &Entity{}
	require.NoError(t, e.BeforeCreate(nil))
	require.NotEqual(t, uuid.Nil, e.ID)
	require.Equal(t, uuid.Version(7), e.ID.Version())

	// An explicitly assigned identifier stays untouched.
	assigned := NewEntity()
	keep := assigned.ID
	require.NoError(t, assigned.BeforeCreate(nil))
	require.Equal(t, keep, assigned.ID)
}

func Test_Entity_Create_AssignsID(t *testing.T) {
	_, db, dbMock, err := newGORMMySQLMock()
	require.NoError(t, err)

	dbMock.ExpectBegin()
	dbMock.ExpectExec("^INSERT INTO [`'\"]t_lock_users[`'\"] .+$").
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	row := tLockUser{Name: "Joe"}
	require.NoError(t, db.Create(&row).Error)
	require.NotEqual(t, uuid.Nil, row.ID)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func Test_Entity_OptimisticLock(t *testing.T) {
	t.Run("update bumps version", func(t *testing.T) {
		_, db, dbMock, err := newGORMPostgresMock()
		require.NoError(t, err)

		dbMock.ExpectBegin()
		dbMock.ExpectExec("^UPDATE [`'\"]t_lock_users[`'\"] SET .+ WHERE .*version = (?:\\$\\d+|\\?).+$").
			WillReturnResult(sqlmock.NewResult(0, 1))
		dbMock.ExpectCommit()

		row := tLockUser{Entity: NewEntity(), Name: "Joe"}
		row.Version = 3

		require.NoError(t, db.Save(&row).Error)
		require.Equal(t, int64(4), row.Version)

		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("concurrent modification is detected", func(t *testing.T) {
		_, db, dbMock, err := newGORMPostgresMock()
		require.NoError(t, err)

		dbMock.ExpectBegin()
		dbMock.ExpectExec("^UPDATE [`'\"]t_lock_users[`'\"] SET .+ WHERE .*version = (?:\\$\\d+|\\?).+$").
			WillReturnResult(sqlmock.NewResult(0, 0))
		dbMock.ExpectRollback()

		row := tLockUser{Entity: NewEntity(), Name: "Joe"}
		row.Version = 3

		err = db.Save(&row).Error
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrStaleEntity))

		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
