package services

import (
	"strings"
	"testing"

	"github.com/rokan2059/coffee/entity"
)

func newLedger(t *testing.T, store Blobs) *OrderService {
	t.Helper()
	s, err := NewOrderService(store)
	if err != nil {
		t.Fatalf("NewOrderService: %v", err)
	}
	return s
}

func sampleItems() []entity.CartItem {
	return []entity.CartItem{
		{MenuItem: entity.MenuItem{ID: "a", Name: "Caramel Macchiato", Price: 5.50, Category: entity.CategoryHotCoffee}, Quantity: 2},
		{MenuItem: entity.MenuItem{ID: "b", Name: "Earl Grey Tea", Price: 3.50, Category: entity.CategoryTea}, Quantity: 1},
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	if _, err := ledger.Checkout(nil, entity.PaymentCash, entity.SourceLocal); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(ledger.List()) != 0 {
		t.Fatal("ledger must stay unchanged after a rejected checkout")
	}
}

func TestCheckoutInvalidPaymentMethodRejected(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	if _, err := ledger.Checkout(sampleItems(), "card", entity.SourceLocal); err != ErrInvalidPaymentMethod {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestCheckoutSnapshotDefaults(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	order, err := ledger.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.Total != 14.50 {
		t.Fatalf("expected total 14.50, got %v", order.Total)
	}
	if order.Status != entity.StatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.PaymentStatus != entity.PaymentUnpaid {
		t.Fatalf("cash order must start unpaid, got %s", order.PaymentStatus)
	}
	if order.Source != entity.SourceLocal {
		t.Fatalf("expected local source, got %s", order.Source)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Fatalf("unexpected id format: %s", order.ID)
	}
	if order.Date == "" || order.CreatedAt == 0 {
		t.Fatalf("expected timestamps on order: %+v", order)
	}
}

func TestOnlineCheckoutIsPrepaid(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	order, err := ledger.Checkout(sampleItems(), entity.PaymentOnline, entity.SourceLocal)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.PaymentStatus != entity.PaymentPaid {
		t.Fatalf("online order must start paid, got %s", order.PaymentStatus)
	}
}

func TestCheckoutPrependsToLedger(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	first, _ := ledger.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)
	before := len(ledger.List())
	second, err := ledger.Checkout(sampleItems(), entity.PaymentOnline, entity.SourceLocal)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	orders := ledger.List()
	if len(orders) != before+1 {
		t.Fatalf("expected ledger to grow by one, got %d -> %d", before, len(orders))
	}
	if orders[0].ID != second.ID {
		t.Fatalf("newest order must be first, got %s", orders[0].ID)
	}
	if orders[1].ID != first.ID {
		t.Fatalf("prior head must shift down, got %s", orders[1].ID)
	}
}

func TestCheckoutIDsUniqueWithinSameMillisecond(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		o, err := ledger.Checkout(sampleItems(), entity.PaymentOnline, entity.SourceLocal)
		if err != nil {
			t.Fatalf("checkout %d: %v", i, err)
		}
		if seen[o.ID] {
			t.Fatalf("duplicate order id %s", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestOrderSnapshotImmuneToCatalogMutation(t *testing.T) {
	store := newMemBlobs()
	catalog := seedCatalog(t, store)
	carts := NewCartService(catalog)
	ledger := newLedger(t, store)
	fillCart(t, carts, "tok", map[string]int{"a": 2, "b": 1})

	order, err := ledger.Checkout(carts.Get("tok"), entity.PaymentCash, entity.SourceLocal)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if _, err := catalog.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	price := 99.0
	if _, _, err := catalog.Update("b", &MenuItemUpdate{Price: &price}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, ok := ledger.Get(order.ID)
	if !ok {
		t.Fatal("order vanished from ledger")
	}
	if got.Total != 14.50 {
		t.Fatalf("order total changed after catalog mutation: %v", got.Total)
	}
	for _, it := range got.Items {
		if it.ID == "a" && it.Price != 5.50 {
			t.Fatalf("snapshot of deleted item changed: %+v", it)
		}
		if it.ID == "b" && it.Price != 3.50 {
			t.Fatalf("snapshot of repriced item changed: %+v", it)
		}
	}
}

func TestPartitionCoversLedgerExactlyOnce(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	var ids []string
	for i := 0; i < 6; i++ {
		o, _ := ledger.Checkout(sampleItems(), entity.PaymentOnline, entity.SourceLocal)
		ids = append(ids, o.ID)
	}
	ledger.UpdateStatus(ids[0], entity.StatusCompleted)
	ledger.UpdateStatus(ids[2], entity.StatusCancelled)
	ledger.UpdateStatus(ids[4], entity.StatusPreparing)

	active, history := ledger.Partition()
	if len(active)+len(history) != 6 {
		t.Fatalf("partition lost orders: %d active + %d history", len(active), len(history))
	}

	seen := make(map[string]int)
	for _, o := range active {
		if IsTerminal(o.Status) {
			t.Fatalf("terminal order %s in active view", o.ID)
		}
		seen[o.ID]++
	}
	for _, o := range history {
		if !IsTerminal(o.Status) {
			t.Fatalf("live order %s in history view", o.ID)
		}
		seen[o.ID]++
	}
	for _, id := range ids {
		if seen[id] != 1 {
			t.Fatalf("order %s appears %d times across the partition", id, seen[id])
		}
	}

	// Ledger order (most recent first) must survive within each view.
	for i := 1; i < len(active); i++ {
		if active[i-1].CreatedAt < active[i].CreatedAt {
			t.Fatal("active view lost ledger ordering")
		}
	}
	for i := 1; i < len(history); i++ {
		if history[i-1].CreatedAt < history[i].CreatedAt {
			t.Fatal("history view lost ledger ordering")
		}
	}
}

func TestStatusSkipIsPermitted(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())
	order, _ := ledger.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)

	applied, err := ledger.UpdateStatus(order.ID, entity.StatusReady)
	if err != nil || !applied {
		t.Fatalf("pending -> ready (skipping preparing) must apply, got applied=%v err=%v", applied, err)
	}
	got, _ := ledger.Get(order.ID)
	if got.Status != entity.StatusReady {
		t.Fatalf("expected ready, got %s", got.Status)
	}
}

func TestTerminalOrdersAreFrozen(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	for _, terminal := range []entity.OrderStatus{entity.StatusCompleted, entity.StatusCancelled} {
		order, _ := ledger.Checkout(sampleItems(), entity.PaymentOnline, entity.SourceLocal)
		if applied, err := ledger.UpdateStatus(order.ID, terminal); err != nil || !applied {
			t.Fatalf("reaching %s: applied=%v err=%v", terminal, applied, err)
		}

		for _, next := range []entity.OrderStatus{entity.StatusPending, entity.StatusPreparing, entity.StatusReady, entity.StatusCompleted, entity.StatusCancelled} {
			applied, err := ledger.UpdateStatus(order.ID, next)
			if err != nil {
				t.Fatalf("terminal update errored: %v", err)
			}
			if applied {
				t.Fatalf("%s order accepted transition to %s", terminal, next)
			}
		}
		got, _ := ledger.Get(order.ID)
		if got.Status != terminal {
			t.Fatalf("terminal status drifted: %s", got.Status)
		}
	}
}

func TestUpdateStatusUnknownOrderIsSilentMiss(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	applied, err := ledger.UpdateStatus("ORD-0", entity.StatusReady)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("update on unknown id must not apply")
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())
	order, _ := ledger.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)

	if _, err := ledger.UpdateStatus(order.ID, "shipped"); err != ErrUnknownStatus {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestUpdatePaymentStatusOverwritesUnconditionally(t *testing.T) {
	ledger := newLedger(t, newMemBlobs())

	cash, _ := ledger.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)
	applied, err := ledger.UpdatePaymentStatus(cash.ID, entity.PaymentPaid)
	if err != nil || !applied {
		t.Fatalf("settling a cash order: applied=%v err=%v", applied, err)
	}
	got, _ := ledger.Get(cash.ID)
	if got.PaymentStatus != entity.PaymentPaid {
		t.Fatalf("expected paid, got %s", got.PaymentStatus)
	}

	// The override is generic: no validation against the method.
	online, _ := ledger.Checkout(sampleItems(), entity.PaymentOnline, entity.SourceLocal)
	if applied, _ := ledger.UpdatePaymentStatus(online.ID, entity.PaymentUnpaid); !applied {
		t.Fatal("reverting an online order must be permitted")
	}

	if applied, _ := ledger.UpdatePaymentStatus("ORD-0", entity.PaymentPaid); applied {
		t.Fatal("unknown id must be a silent miss")
	}
	if _, err := ledger.UpdatePaymentStatus(cash.ID, "refunded"); err != ErrUnknownPaymentStatus {
		t.Fatalf("expected ErrUnknownPaymentStatus, got %v", err)
	}
}

func TestLedgerReloadsFromStore(t *testing.T) {
	store := newMemBlobs()
	ledger := newLedger(t, store)

	first, _ := ledger.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)
	ledger.UpdateStatus(first.ID, entity.StatusPreparing)

	reloaded := newLedger(t, store)
	orders := reloaded.List()
	if len(orders) != 1 {
		t.Fatalf("expected 1 order after reload, got %d", len(orders))
	}
	if orders[0].ID != first.ID || orders[0].Status != entity.StatusPreparing {
		t.Fatalf("reloaded order drifted: %+v", orders[0])
	}

	// New ids must keep moving forward past the reloaded head.
	next, err := reloaded.Checkout(sampleItems(), entity.PaymentCash, entity.SourceLocal)
	if err != nil {
		t.Fatalf("checkout after reload: %v", err)
	}
	if next.ID == first.ID {
		t.Fatal("id collision after reload")
	}
}
