package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE item_defs (id INTEGER PRIMARY KEY, name TEXT, sell_value INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "item_defs")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "PRI", columns[0].Key)

	t.Run("MissingTable", func(t *testing.T) {
		cols, err := GetTableColumns(db, "non_existent")
		assert.NoError(t, err)
		assert.Empty(t, cols)
	})

	t.Run("MissingColumns", func(t *testing.T) {
		missing, err := MissingColumns(db, "item_defs", []string{"id", "Name", "buy_value", "icon"})
		require.NoError(t, err)
		assert.Equal(t, []string{"buy_value", "icon"}, missing)
	})
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "INT(10) UNSIGNED", "NO", "PRI", nil, "").
		AddRow("Name", "VARCHAR(255)", "NO", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `aura_defs`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "aura_defs")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "int(10) unsigned", columns[0].Type)
	assert.Equal(t, "name", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
