package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
)

// Collection names for the curated catalog segments.
const (
	CollectionNewArrivals = "newArrivals"
	CollectionTopSelling  = "topSelling"
)

// CatalogRepository serves one segment collection; the same implementation
// is constructed once per segment instead of duplicating CRUD per
// collection.
type CatalogRepository interface {
	Create(ctx context.Context, item domain.CatalogItem) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.CatalogItem, error)
	SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
}

type catalogRepo struct {
	coll *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database, collection string) CatalogRepository {
	return &catalogRepo{coll: db.Collection(collection)}
}

func (r *catalogRepo) Create(ctx context.Context, item domain.CatalogItem) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *catalogRepo) List(ctx context.Context) ([]domain.CatalogItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []domain.CatalogItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepo) Get(ctx context.Context, id primitive.ObjectID) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepo) SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *catalogRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

var _ CatalogRepository = (*catalogRepo)(nil)
