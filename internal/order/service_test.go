package order

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	seed := []Order{
		{ID: "a", OrderNumber: "SSAAAA1111", CustomerEmail: "amara@email.com", Status: StatusShipped, RefundStatus: RefundNone, Date: "2026-02-01", Items: 1},
		{ID: "b", OrderNumber: "SSBBBB2222", CustomerEmail: "amara@email.com", Status: StatusDelivered, RefundStatus: RefundRequested, RefundReason: "late", Date: "2026-01-20", Items: 2},
		{ID: "c", OrderNumber: "SSCCCC3333", CustomerEmail: "someone@else.com", Status: StatusProcessing, RefundStatus: RefundNone, Date: "2026-01-10", Items: 1},
	}
	return NewService(NewInMemoryRepository(seed))
}

func TestPlace_PrependsProcessingOrder(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	placed, err := s.Place(ctx, Order{OrderNumber: "SSNEW00001", CustomerEmail: "amara@email.com", Total: decimal.NewFromInt(250), Items: 3, RefundStatus: RefundApproved})
	require.NoError(t, err)
	assert.NotEmpty(t, placed.ID)
	assert.Equal(t, StatusProcessing, placed.Status)
	assert.Equal(t, RefundNone, placed.RefundStatus)
	assert.Len(t, placed.Date, len(DateLayout))

	orders, err := s.ListForCustomer(ctx, "amara@email.com", "all")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, placed.ID, orders[0].ID)
}

func TestListForCustomer_Tabs(t *testing.T) {
	s := newTestService()
	orders, err := s.ListForCustomer(context.Background(), "amara@email.com", "delivered")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "b", orders[0].ID)
}

func TestRequestRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("empty reason", func(t *testing.T) {
		_, err := newTestService().RequestRefund(ctx, "amara@email.com", "a", "   ")
		assert.ErrorIs(t, err, ErrEmptyReason)
	})

	t.Run("requested once", func(t *testing.T) {
		s := newTestService()
		o, err := s.RequestRefund(ctx, "amara@email.com", "a", "  wrong size ")
		require.NoError(t, err)
		assert.Equal(t, RefundRequested, o.RefundStatus)
		assert.Equal(t, "wrong size", o.RefundReason)

		_, err = s.RequestRefund(ctx, "amara@email.com", "a", "again")
		assert.ErrorIs(t, err, ErrRefundNotAllowed)
	})

	t.Run("not from None", func(t *testing.T) {
		_, err := newTestService().RequestRefund(ctx, "amara@email.com", "b", "reason")
		assert.ErrorIs(t, err, ErrRefundNotAllowed)
	})

	t.Run("other customer", func(t *testing.T) {
		_, err := newTestService().RequestRefund(ctx, "amara@email.com", "c", "reason")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRefundRequests_AndResolve(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	pending, err := s.RefundRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].ID)

	o, err := s.ResolveRefund(ctx, "b", false)
	require.NoError(t, err)
	assert.Equal(t, RefundDenied, o.RefundStatus)

	_, err = s.ResolveRefund(ctx, "b", true)
	assert.ErrorIs(t, err, ErrNoRefundRequest)

	pending, err = s.RefundRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	_, err := s.SetStatus(ctx, "c", Status("Lost"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	o, err := s.SetStatus(ctx, "c", StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, StatusShipped, o.Status)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = s.SetStatus(ctx, "missing", StatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequestRefund_ConcurrentSessionsAcceptOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	var accepted, rejected atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RequestRefund(ctx, "amara@email.com", "a", "wrong size")
			switch {
			case err == nil:
				accepted.Add(1)
			case assert.ErrorIs(t, err, ErrRefundNotAllowed):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), accepted.Load())
	assert.Equal(t, int32(7), rejected.Load())
}
