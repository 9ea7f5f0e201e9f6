package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/pkg/resp"
	"github.com/rokan2059/coffee/services"
)

type MenuController struct{ Catalog *services.CatalogService }

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GET /menu?category=
func (mc *MenuController) List(c *gin.Context) {
	category := entity.Category(c.Query("category"))
	if category != "" && !category.Valid() {
		resp.BadRequest(c, "invalid category")
		return
	}
	resp.OK(c, gin.H{
		"items":      mc.Catalog.List(category),
		"categories": entity.Categories,
	})
}

// GET /menu/:id
func (mc *MenuController) Detail(c *gin.Context) {
	item, ok := mc.Catalog.Get(c.Param("id"))
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}
