package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Product, error)
	ListByPrice(ctx context.Context, descending bool) ([]domain.Product, error)
	SearchByName(ctx context.Context, key string) ([]domain.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.InsertResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, p domain.Product) (*domain.UpdateResult, error)
	SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
}

type productRepo struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepo{coll: db.Collection("products")}
}

func (r *productRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *productRepo) ListByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	return r.find(ctx, bson.M{"email": email}, nil)
}

func (r *productRepo) ListByPrice(ctx context.Context, descending bool) ([]domain.Product, error) {
	order := 1
	if descending {
		order = -1
	}
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "price", Value: order}}))
}

// SearchByName matches the key as a literal, case-sensitive substring of the
// product name.
func (r *productRepo) SearchByName(ctx context.Context, key string) ([]domain.Product, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(key)}}
	return r.find(ctx, filter, nil)
}

func (r *productRepo) Get(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var p domain.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, p domain.Product) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *productRepo) Replace(ctx context.Context, id primitive.ObjectID, p domain.Product) (*domain.UpdateResult, error) {
	p.ID = primitive.NilObjectID
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *productRepo) SetQuantity(ctx context.Context, id primitive.ObjectID, quantity int) (*domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *productRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *productRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Product, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.coll.Find(ctx, filter, opts)
	} else {
		cur, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func updateResult(res *mongo.UpdateResult) *domain.UpdateResult {
	return &domain.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

var _ ProductRepository = (*productRepo)(nil)
