package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ateliershop/storefront/internal/wishlist/app"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/wishlist", h.list)
	r.POST("/wishlist", h.add)
}

func (h *Handler) list(c *gin.Context) {
	ids := h.svc.List(c.Request.Context())
	if ids == nil {
		ids = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"product_ids": ids})
}

type addInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

func (h *Handler) add(c *gin.Context) {
	var input addInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.svc.Add(c.Request.Context(), input.ProductID); err != nil {
		if errors.Is(err, app.ErrAlreadyListed) {
			c.JSON(http.StatusOK, gin.H{"message": "Already in your wishlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to wishlist"})
}
