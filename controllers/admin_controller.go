package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/pkg/resp"
	"github.com/rokan2059/coffee/services"
)

type AdminController struct {
	Catalog  *services.CatalogService
	Orders   *services.OrderService
	Describe *services.DescriptionService
}

func NewAdminController(catalog *services.CatalogService, orders *services.OrderService, describe *services.DescriptionService) *AdminController {
	return &AdminController{Catalog: catalog, Orders: orders, Describe: describe}
}

// ===== Menu management =====

// POST /admin/menu
func (ac *AdminController) CreateMenuItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ac.Catalog.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) ||
			errors.Is(err, services.ErrNegativePrice) ||
			errors.Is(err, services.ErrNameRequired) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (ac *AdminController) UpdateMenuItem(c *gin.Context) {
	var req services.MenuItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, applied, err := ac.Catalog.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) || errors.Is(err, services.ErrNegativePrice) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !applied {
		resp.OK(c, gin.H{"applied": false})
		return
	}
	resp.OK(c, gin.H{"applied": true, "item": item})
}

// DELETE /admin/menu/:id
// Retiring an item never touches past orders; they keep their own
// snapshots.
func (ac *AdminController) DeleteMenuItem(c *gin.Context) {
	applied, err := ac.Catalog.Delete(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"applied": applied})
}

// POST /admin/menu/describe
func (ac *AdminController) DescribeMenuItem(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Category == "" {
		req.Category = "Coffee"
	}
	resp.OK(c, gin.H{"description": ac.Describe.Generate(req.Name, req.Category)})
}

// ===== Order queue =====

type queueOrder struct {
	entity.Order
	Stage int `json:"stage"`
}

// GET /admin/orders
func (ac *AdminController) OrderQueue(c *gin.Context) {
	active, history := ac.Orders.Partition()

	activeRows := make([]queueOrder, 0, len(active))
	for _, o := range active {
		activeRows = append(activeRows, queueOrder{Order: o, Stage: services.StageIndex(o.Status)})
	}
	historyRows := make([]queueOrder, 0, len(history))
	for _, o := range history {
		historyRows = append(historyRows, queueOrder{Order: o, Stage: services.StageIndex(o.Status)})
	}

	resp.OK(c, gin.H{
		"active":      activeRows,
		"history":     historyRows,
		"activeCount": len(activeRows),
	})
}

// PATCH /admin/orders/:id/status
func (ac *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	applied, err := ac.Orders.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrUnknownStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !applied {
		resp.OK(c, gin.H{"applied": false})
		return
	}
	order, _ := ac.Orders.Get(c.Param("id"))
	resp.OK(c, gin.H{"applied": true, "order": order})
}

// PATCH /admin/orders/:id/payment
func (ac *AdminController) UpdatePaymentStatus(c *gin.Context) {
	var req struct {
		PaymentStatus entity.PaymentStatus `json:"paymentStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	applied, err := ac.Orders.UpdatePaymentStatus(c.Param("id"), req.PaymentStatus)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPaymentStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !applied {
		resp.OK(c, gin.H{"applied": false})
		return
	}
	order, _ := ac.Orders.Get(c.Param("id"))
	resp.OK(c, gin.H{"applied": true, "order": order})
}
