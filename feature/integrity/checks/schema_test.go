package checks

import (
	"errors"
	"regexp"
	"testing"

	"asset-editor/core/database"
	"asset-editor/feature/export/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestCheckSchema_NilDB(t *testing.T) {
	_, err := CheckSchema(nil)
	assert.Error(t, err)
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	t.Run("Tables Absent", func(t *testing.T) {
		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Len(t, report.Tables["aura_defs"].MissingColumns, len(models.AuraColumns))
	})

	t.Run("Type Mismatch", func(t *testing.T) {
		require.NoError(t, db.Exec("CREATE TABLE aura_defs (id INTEGER PRIMARY KEY, name INTEGER, icon VARCHAR(255), duration REAL, aura_type VARCHAR(32), rules_text VARCHAR(1024))").Error)
		report, err := CheckSchema(db)
		require.NoError(t, err)

		aura := report.Tables["aura_defs"]
		assert.Equal(t, "error", aura.Status)
		assert.Empty(t, aura.MissingColumns)
		assert.Equal(t, []string{"name: expected varchar(255), got integer"}, aura.TypeMismatches)
		require.NoError(t, db.Migrator().DropTable("aura_defs"))
	})

	t.Run("Migrated", func(t *testing.T) {
		require.NoError(t, db.AutoMigrate(&models.ItemRow{}, &models.AuraRow{}))
		report, err := CheckSchema(db)
		require.NoError(t, err)
		assert.True(t, report.Matched, report)
		assert.Equal(t, "ok", report.Tables["item_defs"].Status)
	})
}

func TestCheckSchema_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `item_defs`")).WillReturnError(errors.New("table missing"))
	cols := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("id", "int unsigned", "NO", "PRI", nil, "").
		AddRow("name", "varchar(255)", "NO", "", nil, "").
		AddRow("icon", "varchar(255)", "NO", "", nil, "").
		AddRow("duration", "float", "NO", "", nil, "").
		AddRow("aura_type", "varchar(32)", "NO", "", nil, "").
		AddRow("rules_text", "longtext", "NO", "", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `aura_defs`")).WillReturnRows(cols)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "item_defs")
	assert.Equal(t, "ok", report.Tables["aura_defs"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
