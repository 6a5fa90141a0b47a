package db

import (
	"bytes"
	"context"
	"io"

	"bookshelf/models"
	"github.com/minio/minio-go/v7"
)

// MinioStorage keeps the collection as one object in an S3 compatible bucket.
// PutObject replaces the object as a whole, readers never see a partial write.
type MinioStorage struct {
	Bucket string
	Object string
	Client *minio.Client
}

func CreateMinioStorage(bucket, object string, client *minio.Client) *MinioStorage {
	return &MinioStorage{bucket, object, client}
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func (storage *MinioStorage) Load(ctx context.Context) (*models.Collection, error) {
	op := "load minio " + storage.Bucket + "/" + storage.Object
	obj, err := storage.Client.GetObject(ctx, storage.Bucket, storage.Object, minio.GetObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return &models.Collection{Books: []models.Book{}}, nil
		}
		return nil, unavailable(op, err)
	}
	defer obj.Close()

	// GetObject is lazy, a missing object only shows up on first read
	d, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return &models.Collection{Books: []models.Book{}}, nil
		}
		return nil, unavailable(op, err)
	}
	return decode(op, d)
}

func (storage *MinioStorage) Save(ctx context.Context, collection *models.Collection) error {
	op := "save minio " + storage.Bucket + "/" + storage.Object
	d, err := encode(op, collection)
	if err != nil {
		return err
	}
	opts := minio.PutObjectOptions{ContentType: "application/json"}
	_, err = storage.Client.PutObject(ctx, storage.Bucket, storage.Object, bytes.NewReader(d), int64(len(d)), opts)
	if err != nil {
		return unavailable(op, err)
	}
	return nil
}
