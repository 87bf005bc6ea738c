package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
)

type UserRepository interface {
	// Upsert keys on email: the first write creates the document, later
	// writes with the same email mutate it in place.
	Upsert(ctx context.Context, u domain.User) (*domain.UpdateResult, error)
	Create(ctx context.Context, u domain.User) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
}

type userRepo struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepo{coll: db.Collection("users")}
}

func (r *userRepo) Upsert(ctx context.Context, u domain.User) (*domain.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"name": u.Name, "email": u.Email}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": u.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *userRepo) Create(ctx context.Context, u domain.User) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

var _ UserRepository = (*userRepo)(nil)
