package db

import (
	"context"

	"bookshelf/models"
	"github.com/olivere/elastic/v7"
)

const DOCUMENT_ID = "collection"

// ElasticStorage keeps the whole collection as one Elasticsearch document.
type ElasticStorage struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func CreateElasticStorage(indexName string, client *elastic.Client) *ElasticStorage {
	return &ElasticStorage{indexName, client}
}

func (storage *ElasticStorage) Load(ctx context.Context) (*models.Collection, error) {
	op := "load elastic " + storage.IndexName
	doc, err := storage.ElasticClient.
		Get().
		Index(storage.IndexName).
		Id(DOCUMENT_ID).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return &models.Collection{Books: []models.Book{}}, nil
	}
	if err != nil {
		return nil, unavailable(op, err)
	}
	if !doc.Found {
		return &models.Collection{Books: []models.Book{}}, nil
	}

	return decode(op, doc.Source)
}

func (storage *ElasticStorage) Save(ctx context.Context, collection *models.Collection) error {
	op := "save elastic " + storage.IndexName
	d, err := encode(op, collection)
	if err != nil {
		return err
	}

	_, err = storage.ElasticClient.
		Index().
		Index(storage.IndexName).
		Id(DOCUMENT_ID).
		BodyString(string(d)).
		Refresh("true").
		Do(ctx)

	if err != nil {
		return unavailable(op, err)
	}
	return nil
}
