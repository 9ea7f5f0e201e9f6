package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/pkg/resp"
	"github.com/rokan2059/coffee/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func cartToken(c *gin.Context) string {
	return c.GetHeader("X-Cart-Token")
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		resp.BadRequest(c, "missing X-Cart-Token header")
		return
	}
	resp.OK(c, gin.H{
		"items": h.Svc.Get(token),
		"total": h.Svc.Total(token),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		resp.BadRequest(c, "missing X-Cart-Token header")
		return
	}

	var req struct {
		MenuID string `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(token, req.MenuID)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, line)
}

// PATCH /cart/items/:id/quantity
func (h *CartController) AdjustQuantity(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		resp.BadRequest(c, "missing X-Cart-Token header")
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// Unknown ids are a silent no-op; the response just reflects the
	// cart as it stands.
	h.Svc.AdjustQuantity(token, c.Param("id"), req.Delta)
	resp.OK(c, gin.H{
		"items": h.Svc.Get(token),
		"total": h.Svc.Total(token),
	})
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		resp.BadRequest(c, "missing X-Cart-Token header")
		return
	}
	h.Svc.Remove(token, c.Param("id"))
	resp.OK(c, gin.H{
		"items": h.Svc.Get(token),
		"total": h.Svc.Total(token),
	})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	token := cartToken(c)
	if token == "" {
		resp.BadRequest(c, "missing X-Cart-Token header")
		return
	}
	h.Svc.Clear(token)
	resp.OK(c, gin.H{"items": []any{}, "total": 0})
}
