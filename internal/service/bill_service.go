package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"cart-service/internal/entity"
	"cart-service/internal/events"
	"cart-service/internal/repository"
)

var ErrNoIdentity = errors.New("no verified user identity")

const defaultPublishTimeout = 2 * time.Second

// OrderStore runs the order writes of one commit inside a single transaction.
type OrderStore interface {
	WithTx(ctx context.Context, userID string, fn func(w repository.OrderWriter) error) error
}

type Publisher interface {
	PublishBillCommitted(ctx context.Context, event events.BillCommitted) error
}

// BillService commits bill submissions as one order and its order details.
type BillService struct {
	orderRepo        OrderStore
	publisher        Publisher
	publishTimeout   time.Duration
	rejectEmptyBills bool
}

// NewBillService creates a new instance of BillService. publisher may be nil.
func NewBillService(orderRepo OrderStore, publisher Publisher, rejectEmptyBills bool) *BillService {
	return &BillService{
		orderRepo:        orderRepo,
		publisher:        publisher,
		publishTimeout:   defaultPublishTimeout,
		rejectEmptyBills: rejectEmptyBills,
	}
}

// WithPublishTimeout bounds how long a commit waits on the bill event.
func (s *BillService) WithPublishTimeout(d time.Duration) *BillService {
	if d > 0 {
		s.publishTimeout = d
	}
	return s
}

// CommitBill writes the order row, then one order detail row per service item,
// in one transaction, and returns the stored detail rows. It is not idempotent:
// every call creates a new order.
func (s *BillService) CommitBill(ctx context.Context, identity entity.UserIdentity, bill entity.BillSubmission) ([]entity.OrderDetail, error) {
	if identity.UserID == "" {
		return nil, ErrNoIdentity
	}
	if bill.ServiceInfo == nil {
		return nil, fmt.Errorf("%w: serviceInfo is required", ErrInvalidBill)
	}
	if len(bill.ServiceInfo) == 0 && s.rejectEmptyBills {
		return nil, ErrEmptyBill
	}

	var order entity.Order
	var inserted []entity.OrderDetail

	err := s.orderRepo.WithTx(ctx, identity.UserID, func(w repository.OrderWriter) error {
		orders, err := w.InsertOrders(ctx, []entity.Order{{UserID: identity.UserID}})
		if err != nil {
			return &CommitError{Step: ErrOrderInsertFailed, Err: err}
		}
		if len(orders) == 0 {
			return &CommitError{Step: ErrOrderInsertEmpty}
		}
		order = orders[0]

		inserted, err = w.InsertOrderDetails(ctx, BuildOrderDetails(order.OrderID, bill))
		if err != nil {
			return &CommitError{Step: ErrOrderDetailInsertFailed, Err: err}
		}
		return nil
	})
	if err != nil {
		ev := logger.Error().Err(err).Str("user_id", identity.UserID)
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) {
			ev = ev.Uint16("mysql_errno", mysqlErr.Number)
		}
		ev.Msg("Error committing bill")
		return nil, err
	}

	logger.Info().
		Int64("order_id", order.OrderID).
		Str("user_id", identity.UserID).
		Int("order_details", len(inserted)).
		Msg("Bill committed")

	s.publishCommitted(ctx, order, bill)

	return inserted, nil
}

// BuildOrderDetails derives one order detail row per service item. Order level
// fields are copied onto every row.
func BuildOrderDetails(orderID int64, bill entity.BillSubmission) []entity.OrderDetail {
	details := make([]entity.OrderDetail, 0, len(bill.ServiceInfo))
	for _, item := range bill.ServiceInfo {
		details = append(details, entity.OrderDetail{
			OrderID:          orderID,
			ServiceID:        bill.ServiceID,
			ServiceLists:     item.Name,
			QuantityPerOrder: item.Quantity,
			OrderDate:        bill.Date,
			Time:             bill.Times,
			AdDetail:         bill.Detail,
			AdSubdistrict:    bill.Subdistrict,
			AdDistrict:       bill.District,
			AdProvince:       bill.Province,
			AdMoreDetail:     bill.MoreDetail,
			TotalAmount:      bill.NetPrice,
		})
	}
	return details
}

// publishCommitted emits the bill event within publishTimeout. The order is
// already committed, so a failed or slow publish is only logged.
func (s *BillService) publishCommitted(ctx context.Context, order entity.Order, bill entity.BillSubmission) {
	if s.publisher == nil {
		return
	}

	event := events.BillCommitted{
		EventID:     uuid.New().String(),
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		ServiceID:   bill.ServiceID,
		TotalAmount: bill.NetPrice,
		Items:       bill.ServiceInfo,
		Timestamp:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.publisher.PublishBillCommitted(ctx, event); err != nil {
		logger.Error().Err(err).Int64("order_id", order.OrderID).Msg("Error publishing bill event")
	}
}
