package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ateliershop/storefront/internal/contact/app"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/contact", h.submit)
}

type submitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) submit(c *gin.Context) {
	var input submitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), app.Inquiry{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			// Field-level error so the form can highlight inline and
			// keep the entered values.
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason, "field": verr.Field})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit your message"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"id":      id,
		"message": "Thank you! We've received your message. We'll get back to you shortly.",
	})
}
