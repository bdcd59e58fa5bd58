package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/arenadesk/arenadesk/go/internal/apierror"
	"github.com/arenadesk/arenadesk/go/internal/models"
)

const (
	// processingDelay models gateway latency; every outcome, success or
	// decline, is reported only after the full delay has elapsed.
	processingDelay = 1500 * time.Millisecond

	// successRate is the probability a simulated payment settles.
	successRate = 0.9
)

// PaymentRequest is what the purchase screen submits after validation.
type PaymentRequest struct {
	Details PaymentDetails `json:"details"`
	Amount  float64        `json:"amount"`
}

// PaymentResult is the simulated gateway receipt.
type PaymentResult struct {
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	PaymentMethod string    `json:"payment_method,omitempty"`
}

// Simulator fakes a payment gateway: fixed delay, 90% success, no
// idempotency key. Two calls for the same logical purchase are two
// independent draws.
type Simulator struct {
	clock clockwork.Clock
	rng   *rand.Rand
	delay time.Duration
}

func NewSimulator() *Simulator {
	return &Simulator{
		clock: clockwork.NewRealClock(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		delay: processingDelay,
	}
}

// ProcessPayment re-validates the details, waits the simulated processing
// delay, then settles or declines. Transaction ids are time-plus-random;
// uniqueness is probabilistic, not guaranteed.
func (s *Simulator) ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	if result := ValidatePaymentDetails(req.Details, s.clock.Now()); !result.IsValid {
		return nil, apierror.New(apierror.KindValidation, "invalid payment details")
	}

	select {
	case <-s.clock.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if s.rng.Float64() >= successRate {
		log.Warn().Float64("amount", req.Amount).Msg("simulated payment declined")
		return nil, apierror.New(apierror.KindPaymentDeclined, "payment processing failed, please try again")
	}

	now := s.clock.Now()
	result := &PaymentResult{
		TransactionID: fmt.Sprintf("txn-%d-%d", now.UnixMilli(), s.rng.Intn(1000)),
		Amount:        req.Amount,
		Status:        models.OrderStatusCompleted,
		Timestamp:     now,
		PaymentMethod: req.Details.PaymentMethod,
	}
	log.Info().Str("transaction_id", result.TransactionID).Float64("amount", result.Amount).Msg("simulated payment completed")
	return result, nil
}
