package checks

import (
	"context"
	"errors"
	"testing"

	"asset-editor/core/storage"
	"asset-editor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func closedChan() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestRequiredFolders(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
		want []string
	}{
		{"DefsOnly", storage.Config{DefsPrefix: "definitions/"}, []string{"definitions/"}},
		{"WithIcons", storage.Config{DefsPrefix: "definitions", IconPrefix: "icons/"}, []string{"definitions/", "icons/"}},
		{"SamePrefix", storage.Config{DefsPrefix: "data/", IconPrefix: "data/"}, []string{"data/"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredFolders(tt.cfg))
		})
	}
}

func TestCheckStructure(t *testing.T) {
	folders := []string{"definitions/", "icons/"}

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "assets", folders)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, errors.New("refused"))

		_, err := CheckStructure(context.Background(), mockClient, "assets", folders)
		assert.ErrorContains(t, err, "refused")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).Return(closedChan())

		missing, err := CheckStructure(context.Background(), mockClient, "assets", folders)
		assert.NoError(t, err)
		assert.Equal(t, folders, missing)
	})

	t.Run("Some Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)

		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "definitions/item.yaml"}
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "definitions/"
		})).Return((<-chan minio.ObjectInfo)(ch))
		mockClient.On("ListObjects", mock.Anything, "assets", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "icons/"
		})).Return(closedChan())

		missing, err := CheckStructure(context.Background(), mockClient, "assets", folders)
		assert.NoError(t, err)
		assert.Equal(t, []string{"icons/"}, missing)
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Creates Markers", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "assets", "icons/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := FixStructure(context.Background(), mockClient, "assets", logger, []string{"icons"})
		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})

	t.Run("Put Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("PutObject", mock.Anything, "assets", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, errors.New("denied"))

		err := FixStructure(context.Background(), mockClient, "assets", logger, []string{"icons/", "definitions/"})
		assert.Error(t, err)
		mockClient.AssertNumberOfCalls(t, "PutObject", 1)
	})
}
