package entity

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "paid"
	PaymentUnpaid PaymentStatus = "unpaid"
)

// OrderSource marks where an order originated: a customer checkout on
// this instance, or the simulated cloud injector.
type OrderSource string

const (
	SourceLocal OrderSource = "local"
	SourceCloud OrderSource = "cloud"
)

type Order struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"`
	CreatedAt     int64         `json:"createdAt"` // unix millis
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Source        OrderSource   `json:"source,omitempty"`
}
