package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/entity"
	"github.com/rokan2059/coffee/pkg/resp"
	"github.com/rokan2059/coffee/services"
)

type CloudController struct{ Svc *services.CloudService }

func NewCloudController(s *services.CloudService) *CloudController { return &CloudController{Svc: s} }

// GET /admin/cloud
func (cc *CloudController) GetConfig(c *gin.Context) {
	resp.OK(c, cc.Svc.Config())
}

// PUT /admin/cloud
func (cc *CloudController) PutConfig(c *gin.Context) {
	var req entity.CloudConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cfg, err := cc.Svc.SetConfig(req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}
