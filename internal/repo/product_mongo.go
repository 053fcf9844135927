package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tarunbommali/ekart/internal/models"
)

// MongoProductRepository stores products in a MongoDB collection. The
// _id is a uuid string assigned here, so ids stay opaque strings no
// matter which store backend is configured.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a repository over the "products"
// collection of the given database.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection("products")}
}

func (r *MongoProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	var p models.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, p models.Product) (models.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":     p.Name,
		"price":    p.Price,
		"quantity": p.Quantity,
	}}
	res, err := r.coll.UpdateByID(ctx, p.ID, update)
	if err != nil {
		return models.Product{}, err
	}
	if res.MatchedCount == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
