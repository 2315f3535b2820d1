// Package storage wraps the MinIO client for the object storage bucket that
// can hold definition documents and icons.
//
// The Client interface is the subset of minio operations the editor needs,
// which keeps it mockable (see core/storage/mocks). registry.Object reads and
// writes definition documents through it; the pull and push commands copy
// documents between the bucket and local files; the integrity feature checks
// icon keys with ObjectExists.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket)
//	ok, err := storage.ObjectExists(ctx, client, cfg.Storage.Bucket, cfg.Storage.IconKey(def.Icon))
package storage
