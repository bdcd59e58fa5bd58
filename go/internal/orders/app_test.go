package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

func TestCreateOrderDefaults(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	created, err := app.CreateOrder(context.Background(), models.Order{
		UserID:       "u1",
		TournamentID: "t1",
		Quantity:     2,
		TotalAmount:  99.98,
		PaymentID:    "txn-1-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.OrderStatusCompleted, created.Status)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	app := NewApp(NewMemoryRepository())

	_, err := app.CreateOrder(context.Background(), models.Order{
		UserID:       "u1",
		TournamentID: "t1",
		Quantity:     0,
	})
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestListOrdersByUserFiltersOthers(t *testing.T) {
	app := NewApp(NewMemoryRepository())
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2", "u1"} {
		_, err := app.CreateOrder(ctx, models.Order{
			UserID:       userID,
			TournamentID: "t1",
			Quantity:     1,
		})
		require.NoError(t, err)
	}

	orders, err := app.ListOrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		require.Equal(t, "u1", order.UserID)
	}
}

func TestCreateOrderDuplicateIDRejected(t *testing.T) {
	app := NewApp(NewMemoryRepository())
	order := models.Order{
		ID:           "o1",
		UserID:       "u1",
		TournamentID: "t1",
		Quantity:     1,
	}

	_, err := app.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	_, err = app.CreateOrder(context.Background(), order)
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
}
