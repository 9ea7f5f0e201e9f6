package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/repository"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrUnknownPaymentStatus = errors.New("unknown payment status")
)

// OrderEvent is pushed to the staff dashboard feed on every ledger
// mutation.
type OrderEvent struct {
	Type  string       `json:"type"` // created | status | payment
	Order entity.Order `json:"order"`
}

// OrderFeed receives ledger events. Publish must not block.
type OrderFeed interface {
	Publish(ev OrderEvent)
}

// OrderService is the ledger: the ordered history of every order this
// shop has seen, most recent first. Orders are appended at creation and
// mutated only through status and payment transitions, never removed.
type OrderService struct {
	mu     sync.Mutex
	store  Blobs
	orders []entity.Order
	lastID int64
	feed   OrderFeed
}

func NewOrderService(store Blobs) (*OrderService, error) {
	s := &OrderService{store: store}
	err := store.Load(repository.BlobOrderHistory, &s.orders)
	if err != nil && !errors.Is(err, repository.ErrBlobNotFound) {
		return nil, err
	}
	if len(s.orders) > 0 {
		s.lastID = s.orders[0].CreatedAt
	}
	return s, nil
}

func (s *OrderService) SetFeed(feed OrderFeed) {
	s.feed = feed
}

// Checkout freezes the cart snapshot into a new order at the head of
// the ledger. The total is computed once here and never again; the
// caller clears the originating cart after a successful return.
func (s *OrderService) Checkout(items []entity.CartItem, method entity.PaymentMethod, source entity.OrderSource) (entity.Order, error) {
	if len(items) == 0 {
		return entity.Order{}, ErrEmptyCart
	}
	if method != entity.PaymentCash && method != entity.PaymentOnline {
		return entity.Order{}, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	ms := now.UnixMilli()
	// Two checkouts on the same millisecond would collide on the
	// timestamp-derived id; bump past the last one handed out.
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms

	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	payStatus := entity.PaymentUnpaid
	if method == entity.PaymentOnline {
		payStatus = entity.PaymentPaid
	}

	order := entity.Order{
		ID:            fmt.Sprintf("ORD-%d", ms),
		Date:          now.Format("15:04:05"),
		CreatedAt:     ms,
		Items:         cloneItems(items),
		Total:         total,
		Status:        entity.StatusPending,
		PaymentMethod: method,
		PaymentStatus: payStatus,
		Source:        source,
	}

	s.orders = append([]entity.Order{order}, s.orders...)
	if err := s.persist(); err != nil {
		s.orders = s.orders[1:]
		return entity.Order{}, err
	}
	s.publish(OrderEvent{Type: "created", Order: order})
	return order, nil
}

// List returns the ledger, most recent first.
func (s *OrderService) List() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	for i := range out {
		out[i].Items = cloneItems(out[i].Items)
	}
	return out
}

func (s *OrderService) Get(id string) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			o.Items = cloneItems(o.Items)
			return o, true
		}
	}
	return entity.Order{}, false
}

// UpdateStatus moves an order through the fulfillment machine. Unknown
// ids and terminal orders report applied=false without error; only a
// status value outside the enum is a hard failure.
func (s *OrderService) UpdateStatus(id string, to entity.OrderStatus) (bool, error) {
	if !ValidStatus(to) {
		return false, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !CanTransition(s.orders[i].Status, to) {
			return false, nil
		}
		prev := s.orders[i].Status
		s.orders[i].Status = to
		if err := s.persist(); err != nil {
			s.orders[i].Status = prev
			return false, err
		}
		s.publish(OrderEvent{Type: "status", Order: s.orders[i]})
		return true, nil
	}
	return false, nil
}

// UpdatePaymentStatus overwrites the payment flag with no check against
// the payment method: cash orders get marked paid at the register, and
// the override stays generic on purpose.
func (s *OrderService) UpdatePaymentStatus(id string, to entity.PaymentStatus) (bool, error) {
	if to != entity.PaymentPaid && to != entity.PaymentUnpaid {
		return false, ErrUnknownPaymentStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		prev := s.orders[i].PaymentStatus
		s.orders[i].PaymentStatus = to
		if err := s.persist(); err != nil {
			s.orders[i].PaymentStatus = prev
			return false, err
		}
		s.publish(OrderEvent{Type: "payment", Order: s.orders[i]})
		return true, nil
	}
	return false, nil
}

// Partition splits the ledger into in-flight and settled orders.
// Ledger order is preserved within each side, and every order lands in
// exactly one of them.
func (s *OrderService) Partition() (active, history []entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active = make([]entity.Order, 0, len(s.orders))
	history = make([]entity.Order, 0)
	for _, o := range s.orders {
		o.Items = cloneItems(o.Items)
		if IsTerminal(o.Status) {
			history = append(history, o)
		} else {
			active = append(active, o)
		}
	}
	return active, history
}

func (s *OrderService) persist() error {
	return s.store.Save(repository.BlobOrderHistory, s.orders)
}

func (s *OrderService) publish(ev OrderEvent) {
	if s.feed != nil {
		s.feed.Publish(ev)
	}
}
