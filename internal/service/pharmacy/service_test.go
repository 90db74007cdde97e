package pharmacy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/store"
	apperrors "github.com/medidesk/frontdesk-api/pkg/errors"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(context.Background(), store.NewMemoryPersister(), nil)
	require.NoError(t, err)
	return NewService(s, nil), s
}

func TestCatalog(t *testing.T) {
	svc, _ := newTestService(t)

	medicines := svc.Catalog(context.Background())
	require.Len(t, medicines, 2)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	assert.Equal(t, "Amoxicillin", medicines[1].Name)
}

func TestCartTotalAgainstCatalog(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Zero(t, svc.CartTotal(ctx, nil))

	total := svc.CartTotal(ctx, []model.OrderItem{
		{MedicineID: "med1", Quantity: 2},
		{MedicineID: "med-unknown", Quantity: 7},
	})
	assert.InDelta(t, 11.98, total, 1e-9)
}

func TestPlaceOrder(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()

	placed, err := svc.PlaceOrder(ctx, model.CreateOrderRequest{
		PatientID: "SELF-SERVICE",
		Items:     []model.OrderItem{{MedicineID: "med1", Quantity: 2}},
		Status:    model.OrderStatusPending,
		Total:     11.98,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), placed.OrderNumber)
	assert.NotEmpty(t, placed.Order.ID)
	assert.False(t, placed.Order.CreatedAt.IsZero())
	assert.Equal(t, 11.98, placed.Order.Total)

	require.Len(t, s.Orders(), 1)
}

func TestPlaceOrderTicketNumbersNeverRepeat(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var prev int64 = 1000
	for i := 0; i < 10; i++ {
		placed, err := svc.PlaceOrder(ctx, model.CreateOrderRequest{
			Items:  []model.OrderItem{{MedicineID: "med2", Quantity: 1}},
			Status: model.OrderStatusPending,
			Total:  12.99,
		})
		require.NoError(t, err)
		assert.Equal(t, prev+1, placed.OrderNumber)
		prev = placed.OrderNumber
	}
}

func TestPlaceOrderDefaultsToSelfService(t *testing.T) {
	svc, _ := newTestService(t)

	placed, err := svc.PlaceOrder(context.Background(), model.CreateOrderRequest{
		Items: []model.OrderItem{{MedicineID: "med1", Quantity: 1}},
		Total: 5.99,
	})
	require.NoError(t, err)
	assert.Equal(t, SelfServicePatient, placed.Order.PatientID)
	assert.Equal(t, model.OrderStatusPending, placed.Order.Status)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	svc, s := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), model.CreateOrderRequest{
		Status: model.OrderStatusPending,
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)

	assert.Empty(t, s.Orders())
	// a rejected order must not burn a ticket number
	assert.Equal(t, int64(1000), s.OrderCounter())
}
