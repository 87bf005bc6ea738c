package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p domain.Payment) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Payment, error)
}

type paymentRepo struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepo{coll: db.Collection("payments")}
}

func (r *paymentRepo) Create(ctx context.Context, p domain.Payment) (*domain.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *paymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *paymentRepo) ListByOwner(ctx context.Context, email string) ([]domain.Payment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *paymentRepo) find(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var payments []domain.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

var _ PaymentRepository = (*paymentRepo)(nil)
