package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b domain.Booking) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Booking, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error)
	// MarkPaid sets paid and stores the transaction id. A missing booking is
	// not an error; the caller sees matchedCount 0.
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*domain.UpdateResult, error)
}

type bookingRepo struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepo{coll: db.Collection("bookings")}
}

func (r *bookingRepo) Create(ctx context.Context, b domain.Booking) (*domain.InsertResult, error) {
	b.Paid = false
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: res.InsertedID}, nil
}

func (r *bookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *bookingRepo) ListByOwner(ctx context.Context, email string) ([]domain.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *bookingRepo) Get(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	var b domain.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *bookingRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*domain.UpdateResult, error) {
	update := bson.M{"$set": bson.M{"paid": true, "transactionId": transactionID}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *bookingRepo) find(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var bookings []domain.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ BookingRepository = (*bookingRepo)(nil)
