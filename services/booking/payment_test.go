package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundihub/models"
)

func acceptedBooking(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.CreateBooking(context.Background(), createRequest())
	require.NoError(t, err)
	agent := models.Actor{ID: "agent-1", Role: models.RoleAgent}
	b, err = svc.Transition(context.Background(), b.ID, agent, models.StatusAccepted, "")
	require.NoError(t, err)
	return b
}

func TestRecordPaymentNotReadyWhilePending(t *testing.T) {
	svc, _ := newTestService()
	worker := models.Actor{ID: "worker-1", Role: models.RoleWorker}

	b, err := svc.CreateBooking(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), b.ID, worker, models.PaymentMethodCash, 500)
	assertCode(t, err, CodeBookingNotReady)
}

func TestRecordPayment(t *testing.T) {
	svc, repo := newTestService()
	worker := models.Actor{ID: "worker-1", Role: models.RoleWorker}

	b := acceptedBooking(t, svc)

	b, err := svc.RecordPayment(context.Background(), b.ID, worker, models.PaymentMethodMobile, 450)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, b.Payment.Status)
	assert.Equal(t, models.PaymentMethodMobile, b.Payment.Method)
	assert.Equal(t, float64(450), b.Payment.Amount, "recorded amount may differ from the quoted rate")
	assert.NotNil(t, b.Payment.PaidAt)

	stored, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, stored.Payment.Status)
}

func TestRecordPaymentIdempotent(t *testing.T) {
	svc, _ := newTestService()
	worker := models.Actor{ID: "worker-1", Role: models.RoleWorker}

	b := acceptedBooking(t, svc)

	first, err := svc.RecordPayment(context.Background(), b.ID, worker, models.PaymentMethodCash, 500)
	require.NoError(t, err)

	// A re-confirm with a different method does not rewrite the record.
	second, err := svc.RecordPayment(context.Background(), b.ID, worker, models.PaymentMethodCard, 999)
	require.NoError(t, err)
	assert.Equal(t, first.Payment.Method, second.Payment.Method)
	assert.Equal(t, first.Payment.Amount, second.Payment.Amount)
}

func TestRecordPaymentValidation(t *testing.T) {
	svc, _ := newTestService()
	worker := models.Actor{ID: "worker-1", Role: models.RoleWorker}

	b := acceptedBooking(t, svc)

	_, err := svc.RecordPayment(context.Background(), b.ID, worker, models.PaymentMethod("BARTER"), 500)
	assertCode(t, err, CodeValidation)

	_, err = svc.RecordPayment(context.Background(), b.ID, worker, models.PaymentMethodCash, 0)
	assertCode(t, err, CodeValidation)
}

func TestRecordPaymentForeignWorkerForbidden(t *testing.T) {
	svc, _ := newTestService()
	b := acceptedBooking(t, svc)

	other := models.Actor{ID: "worker-2", Role: models.RoleWorker}
	_, err := svc.RecordPayment(context.Background(), b.ID, other, models.PaymentMethodCash, 500)
	assertCode(t, err, CodeForbidden)
}
