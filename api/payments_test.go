package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
)

func TestPayments_Create_MarksBookingPaid(t *testing.T) {
	env := newTestEnv()
	bookingID := primitive.NewObjectID()
	env.payments.On("Create", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(&domain.InsertResult{InsertedID: primitive.NewObjectID()}, nil).Once()
	env.bookings.On("MarkPaid", mock.Anything, bookingID, "txn_123").
		Return(&domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	body := fmt.Sprintf(`{"bookingId":%q,"transactionId":"txn_123","email":"buyer@example.com","price":20}`, bookingID.Hex())
	w := env.do("POST", "/payments", body, env.bearer(t, "buyer@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"matchedCount":1`)
	env.payments.AssertExpectations(t)
	env.bookings.AssertExpectations(t)
}

func TestPayments_Create_MissingBooking(t *testing.T) {
	env := newTestEnv()
	bookingID := primitive.NewObjectID()
	env.payments.On("Create", mock.Anything, mock.AnythingOfType("domain.Payment")).
		Return(&domain.InsertResult{InsertedID: primitive.NewObjectID()}, nil).Once()
	env.bookings.On("MarkPaid", mock.Anything, bookingID, "txn_456").
		Return(&domain.UpdateResult{MatchedCount: 0}, nil).Once()

	body := fmt.Sprintf(`{"bookingId":%q,"transactionId":"txn_456","email":"buyer@example.com"}`, bookingID.Hex())
	w := env.do("POST", "/payments", body, env.bearer(t, "buyer@example.com"))

	// Payment recorded, booking update a no-op.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"matchedCount":0`)
	env.payments.AssertExpectations(t)
}

func TestPayments_Create_InvalidBookingID(t *testing.T) {
	env := newTestEnv()

	w := env.do("POST", "/payments", `{"bookingId":"bogus"}`, env.bearer(t, "buyer@example.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.payments.AssertNotCalled(t, "Create")
	env.bookings.AssertNotCalled(t, "MarkPaid")
}

func TestPayments_Create_Unauthorized(t *testing.T) {
	env := newTestEnv()

	w := env.do("POST", "/payments", `{"bookingId":"whatever"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.payments.AssertNotCalled(t, "Create")
}

func TestPayments_List(t *testing.T) {
	env := newTestEnv()
	env.payments.On("List", mock.Anything).Return([]domain.Payment{{TransactionID: "txn_1"}}, nil).Once()

	w := env.do("GET", "/payment", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txn_1")
	env.payments.AssertExpectations(t)
}

func TestPayments_ListByOwner(t *testing.T) {
	env := newTestEnv()
	env.payments.On("ListByOwner", mock.Anything, "buyer@example.com").
		Return([]domain.Payment{}, nil).Twice()

	byQuery := env.do("GET", "/paymentDone?email=buyer@example.com", "", nil)
	byPath := env.do("GET", "/payment-by-user/buyer@example.com", "", nil)

	assert.Equal(t, http.StatusOK, byQuery.Code)
	assert.Equal(t, http.StatusOK, byPath.Code)
	env.payments.AssertExpectations(t)
}

func TestPayments_ListByOwner_MissingEmail(t *testing.T) {
	env := newTestEnv()

	w := env.do("GET", "/paymentDone", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.payments.AssertNotCalled(t, "ListByOwner")
}

func TestPaymentIntent_MinorUnits(t *testing.T) {
	env := newTestEnv()
	env.intents.On("CreateIntent", mock.Anything, int64(2000)).Return("pi_secret_abc", nil).Once()

	w := env.do("POST", "/create-payment-intent", `{"price":20}`, env.bearer(t, "buyer@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_secret_abc")
	env.intents.AssertExpectations(t)
}

func TestPaymentIntent_RoundsFractionalCents(t *testing.T) {
	env := newTestEnv()
	env.intents.On("CreateIntent", mock.Anything, int64(1999)).Return("pi_secret_def", nil).Once()

	w := env.do("POST", "/create-payment-intent", `{"price":19.99}`, env.bearer(t, "buyer@example.com"))

	assert.Equal(t, http.StatusOK, w.Code)
	env.intents.AssertExpectations(t)
}

func TestPaymentIntent_InvalidPrice(t *testing.T) {
	env := newTestEnv()

	w := env.do("POST", "/create-payment-intent", `{"price":0}`, env.bearer(t, "buyer@example.com"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.intents.AssertNotCalled(t, "CreateIntent")
}

func TestPaymentIntent_Unauthorized(t *testing.T) {
	env := newTestEnv()

	w := env.do("POST", "/create-payment-intent", `{"price":20}`, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.intents.AssertNotCalled(t, "CreateIntent")
}
