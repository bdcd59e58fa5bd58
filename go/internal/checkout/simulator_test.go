package checkout

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

func validRequest() PaymentRequest {
	return PaymentRequest{
		Details: PaymentDetails{
			CardNumber:     "4111111111111111",
			Expiry:         "12/28",
			CVV:            "123",
			CardholderName: "Jane Doe",
			PaymentMethod:  "credit_card",
		},
		Amount: 149.99,
	}
}

func TestProcessPaymentRejectsInvalidDetails(t *testing.T) {
	s := &Simulator{
		clock: clockwork.NewFakeClockAt(time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)),
		rng:   rand.New(rand.NewSource(1)),
		delay: processingDelay,
	}

	req := validRequest()
	req.Details.CVV = "x"

	result, err := s.ProcessPayment(context.Background(), req)
	require.Nil(t, result)
	require.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestProcessPaymentSettlesOnlyAfterDelay(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))
	s := &Simulator{
		clock: fc,
		rng:   rand.New(rand.NewSource(1)),
		delay: processingDelay,
	}

	ctx := context.Background()
	done := make(chan struct{})
	var result *PaymentResult
	var err error
	go func() {
		result, err = s.ProcessPayment(ctx, validRequest())
		close(done)
	}()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	select {
	case <-done:
		t.Fatal("payment settled before the processing delay elapsed")
	default:
	}

	fc.Advance(processingDelay)
	<-done

	if err != nil {
		require.True(t, apierror.IsKind(err, apierror.KindPaymentDeclined))
		return
	}
	require.Equal(t, models.OrderStatusCompleted, result.Status)
	require.Equal(t, 149.99, result.Amount)
	require.Regexp(t, `^txn-\d+-\d+$`, result.TransactionID)
}

func TestProcessPaymentHonorsContextCancellation(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))
	s := &Simulator{
		clock: fc,
		rng:   rand.New(rand.NewSource(1)),
		delay: processingDelay,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var err error
	go func() {
		_, err = s.ProcessPayment(ctx, validRequest())
		close(done)
	}()

	require.NoError(t, fc.BlockUntilContext(ctx, 1))
	cancel()
	<-done
	require.ErrorIs(t, err, context.Canceled)
}

func TestProcessPaymentSuccessRate(t *testing.T) {
	s := &Simulator{
		clock: clockwork.NewRealClock(),
		rng:   rand.New(rand.NewSource(7)),
		delay: 0,
	}

	const runs = 2000
	var succeeded int
	for i := 0; i < runs; i++ {
		result, err := s.ProcessPayment(context.Background(), validRequest())
		if err != nil {
			require.True(t, apierror.IsKind(err, apierror.KindPaymentDeclined))
			continue
		}
		require.NotEmpty(t, result.TransactionID)
		succeeded++
	}

	require.InDelta(t, successRate, float64(succeeded)/runs, 0.05)
}
