package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/configs"
	"github.com/rokan2059/coffee/pkg/resp"
	"github.com/rokan2059/coffee/utils"
)

type AuthController struct{ Cfg *configs.Config }

func NewAuthController(cfg *configs.Config) *AuthController { return &AuthController{Cfg: cfg} }

type staffLoginReq struct {
	AccessKey string `json:"accessKey" binding:"required"`
}

// POST /auth/staff
// The gate is a single shared access key, checked by plain equality.
// It is a convenience latch for the staff dashboard, not a security
// boundary.
func (ac *AuthController) StaffLogin(c *gin.Context) {
	var req staffLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.AccessKey != ac.Cfg.StaffAccessKey {
		resp.Unauthorized(c, "invalid access key")
		return
	}

	token, err := utils.GenerateToken("staff", ac.Cfg.JWTSecret, ac.Cfg.SessionTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"token":     token,
		"expiresIn": int(ac.Cfg.SessionTTL.Seconds()),
	})
}
