package payment

import (
	"context"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
	"github.com/mintusarker/shopping-site-server-code/internal/repository"
)

// Service owns the one cross-entity operation in the system: recording a
// payment and flipping the referenced booking to paid.
type Service struct {
	payments repository.PaymentRepository
	bookings repository.BookingRepository
}

func NewService(payments repository.PaymentRepository, bookings repository.BookingRepository) *Service {
	return &Service{payments: payments, bookings: bookings}
}

// Record inserts the payment, then marks the referenced booking paid. The
// two writes are not transactional: a booking that does not exist leaves a
// recorded payment and an update with matchedCount 0, and a failed update
// after a successful insert surfaces the error with the payment already
// stored.
func (s *Service) Record(ctx context.Context, p domain.Payment) (*domain.InsertResult, *domain.UpdateResult, error) {
	bookingID, err := domain.ParseID(p.BookingID)
	if err != nil {
		return nil, nil, err
	}

	insert, err := s.payments.Create(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	update, err := s.bookings.MarkPaid(ctx, bookingID, p.TransactionID)
	if err != nil {
		return insert, nil, err
	}
	return insert, update, nil
}
