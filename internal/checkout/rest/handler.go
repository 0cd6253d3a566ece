package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ateliershop/storefront/internal/checkout/app"
	"github.com/ateliershop/storefront/internal/checkout/domain"
)

// Handler drives the checkout state machine from the rendering
// surface: begin, then a non-blocking method choice.
type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/checkout", h.state)
	r.POST("/checkout", h.begin)
	r.POST("/checkout/method", h.choose)
}

func (h *Handler) state(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.svc.State()})
}

func (h *Handler) begin(c *gin.Context) {
	summary, err := h.svc.Begin(c.Request.Context())
	if err != nil {
		if errors.Is(err, app.ErrEmptyCart) {
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "state": h.svc.State()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    h.svc.State(),
		"subtotal": summary.Subtotal.StringFixed(2),
		"shipping": summary.Shipping.StringFixed(2),
		"tax":      summary.Tax.StringFixed(2),
		"total":    summary.Total.StringFixed(2),
		"methods":  []domain.Method{domain.MethodStripe, domain.MethodContact},
	})
}

type chooseInput struct {
	Method string `json:"method" binding:"required"`
}

func (h *Handler) choose(c *gin.Context) {
	var input chooseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	res, err := h.svc.Choose(c.Request.Context(), domain.Method(input.Method))
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": res.State})
		case errors.Is(err, app.ErrPaymentFailed):
			// Machine is back at the choice state; the client may retry.
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment failed, please try again",
				"state": res.State,
				"retry": true,
			})
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "Checkout cancelled", "state": res.State})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		}
		return
	}

	body := gin.H{
		"state":        res.State,
		"method":       res.Method,
		"cart_cleared": res.CartCleared,
	}
	if res.IntentID != "" {
		body["intent_id"] = res.IntentID
	}
	if res.Method == domain.MethodContact {
		body["next"] = "/contact"
	}
	c.JSON(http.StatusOK, body)
}
