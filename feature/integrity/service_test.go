package integrity

import (
	"context"
	"testing"

	"asset-editor/core/registry"
	"asset-editor/core/storage"
	"asset-editor/core/storage/mocks"
	auramodels "asset-editor/feature/aura/models"
	"asset-editor/feature/catalog"
	itemmodels "asset-editor/feature/item/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", DefsPrefix: "definitions/", IconPrefix: "static/"}

var testDocuments = []string{"definitions/item.yaml", "definitions/aura.yaml"}

var notFound = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func testCatalog(t *testing.T) *catalog.Service {
	t.Helper()
	items, err := registry.New("item", 2, []itemmodels.ItemDef{
		{ID: 1, Name: "Red Potion", Icon: "icons/red_potion.png"},
	})
	require.NoError(t, err)
	auras, err := registry.New("aura", 1, []auramodels.AuraDef{
		{ID: 0, Name: "Burning", Icon: "icons/burn.png"},
	})
	require.NoError(t, err)
	return catalog.NewService(items, auras)
}

func emptyList() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, testDocuments, nil, testCatalog(t), zap.NewNop())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyList())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"definitions/", "static/"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"static/"})
		assert.NoError(t, err)
		mockClient.AssertCalled(t, "PutObject", mock.Anything, "test-bucket", "static/", mock.Anything, int64(0), mock.Anything)
	})
}

func TestService_Documents(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, testDocuments, nil, testCatalog(t), zap.NewNop())

	mockClient.On("StatObject", mock.Anything, "test-bucket", "definitions/item.yaml", mock.Anything).Return(minio.ObjectInfo{}, nil)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "definitions/aura.yaml", mock.Anything).Return(minio.ObjectInfo{}, notFound)

	missing, err := svc.CheckDocuments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"definitions/aura.yaml"}, missing)
}

func TestService_Icons(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, testDocuments, nil, testCatalog(t), zap.NewNop())

	mockClient.On("StatObject", mock.Anything, "test-bucket", "static/icons/burn.png", mock.Anything).Return(minio.ObjectInfo{}, notFound)
	mockClient.On("StatObject", mock.Anything, "test-bucket", "static/icons/red_potion.png", mock.Anything).Return(minio.ObjectInfo{}, nil)

	report, err := svc.CheckIcons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "Burning", report.Missing[0].Name)
	assert.Equal(t, catalog.AssetAura, report.Missing[0].AssetType)
}

func TestService_Schema(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		svc := NewService(new(mocks.Client), testStorage, testDocuments, nil, testCatalog(t), zap.NewNop())
		_, err := svc.CheckSchema()
		assert.Error(t, err)
	})

	t.Run("MissingTables", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc := NewService(new(mocks.Client), testStorage, testDocuments, db, testCatalog(t), zap.NewNop())

		empty := []string{"Field", "Type", "Null", "Key", "Default", "Extra"}
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `item_defs`").WillReturnRows(sqlmock.NewRows(empty))
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `aura_defs`").WillReturnRows(sqlmock.NewRows(empty))

		report, err := svc.CheckSchema()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Contains(t, report.Tables["item_defs"].MissingColumns, "sell_value")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
