package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/pkg/resp"
	"github.com/rokan2059/coffee/services"
)

type OrderController struct {
	Orders *services.OrderService
	Carts  *services.CartService
}

func NewOrderController(orders *services.OrderService, carts *services.CartService) *OrderController {
	return &OrderController{Orders: orders, Carts: carts}
}

type checkoutReq struct {
	PaymentMethod entity.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash online"`
}

// POST /orders
func (oc *OrderController) Checkout(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		resp.BadRequest(c, "missing X-Cart-Token header")
		return
	}

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Checkout(oc.Carts.Get(token), req.PaymentMethod, entity.SourceLocal)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrInvalidPaymentMethod) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	// The ledger does not own the cart; clear it here once the order
	// is safely recorded.
	oc.Carts.Clear(token)
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	resp.OK(c, gin.H{"items": oc.Orders.List()})
}

// GET /orders/partition
func (oc *OrderController) Partition(c *gin.Context) {
	active, history := oc.Orders.Partition()
	resp.OK(c, gin.H{"active": active, "history": history})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, ok := oc.Orders.Get(c.Param("id"))
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{
		"order": order,
		"stage": services.StageIndex(order.Status),
	})
}
