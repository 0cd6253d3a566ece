package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ateliershop/storefront/internal/cart/app"
	"github.com/ateliershop/storefront/internal/cart/domain"
	"github.com/ateliershop/storefront/internal/pricing"
)

// Handler exposes the cart store's mutation entry points and read
// accessors to the rendering surface.
type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/cart", h.view)
	r.GET("/cart/count", h.count)
	r.POST("/cart/items", h.addItem)
	r.PUT("/cart/items/:id", h.setQuantity)
	r.DELETE("/cart/items/:id", h.removeItem)
}

type lineView struct {
	ProductID    int    `json:"product_id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Price        string `json:"price"`
	DisplayPrice string `json:"display_price"`
	Quantity     int    `json:"quantity"`
	LineTotal    string `json:"line_total"`
}

type summaryView struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

func toSummaryView(s pricing.Summary) summaryView {
	shipping := "£" + s.Shipping.StringFixed(2)
	if s.FreeShipping() {
		shipping = "FREE"
	}
	return summaryView{
		Subtotal: "£" + s.Subtotal.StringFixed(2),
		Shipping: shipping,
		Tax:      "£" + s.Tax.StringFixed(2),
		Total:    "£" + s.Total.StringFixed(2),
	}
}

func toLineViews(lines []domain.Line) []lineView {
	out := make([]lineView, 0, len(lines))
	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		out = append(out, lineView{
			ProductID:    l.ProductID,
			Name:         l.Name,
			Image:        l.Image,
			Price:        l.Price.StringFixed(2),
			DisplayPrice: "£" + l.Price.StringFixed(2),
			Quantity:     l.Quantity,
			LineTotal:    "£" + l.Price.Mul(qty).StringFixed(2),
		})
	}
	return out
}

func (h *Handler) view(c *gin.Context) {
	ctx := c.Request.Context()
	lines := h.svc.Lines(ctx)

	c.JSON(http.StatusOK, gin.H{
		"items":   toLineViews(lines),
		"count":   h.svc.ItemCount(ctx),
		"summary": toSummaryView(pricing.Compute(lines)),
	})
}

func (h *Handler) count(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.svc.ItemCount(c.Request.Context())})
}

type addItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) addItem(c *gin.Context) {
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	summary, err := h.svc.AddItem(c.Request.Context(), input.ProductID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
		case errors.Is(err, app.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"summary": toSummaryView(summary)})
}

type setQuantityInput struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input setQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := h.svc.SetQuantity(c.Request.Context(), id, input.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": toSummaryView(h.svc.Summary(c.Request.Context()))})
}

func (h *Handler) removeItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.svc.RemoveItem(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.Status(http.StatusNoContent)
}
