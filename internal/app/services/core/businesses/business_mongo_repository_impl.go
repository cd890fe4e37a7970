package businesses

import (
	"context"
	"openhours-service/internal/app/contracts"
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/constvars"
	"openhours-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BusinessMongoRepository struct {
	Collection *mongo.Collection
}

func NewBusinessMongoRepository(db *mongo.Client, dbName string) contracts.BusinessSource {
	return &BusinessMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBusinesses),
	}
}

func (repo *BusinessMongoRepository) Name() string {
	return constvars.IndexSourceMongo
}

// FindAll returns businesses that are not soft deleted, in insertion order.
func (repo *BusinessMongoRepository) FindAll(ctx context.Context) ([]models.Business, error) {
	var result []models.Business
	cursor, err := repo.Collection.Find(ctx, activeBusinessesFilter(), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &result)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

// matches a missing deletedAt as well as an explicit null
func activeBusinessesFilter() bson.M {
	return bson.M{"deletedAt": nil}
}
