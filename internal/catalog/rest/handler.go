package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ateliershop/storefront/internal/catalog/app"
	"github.com/ateliershop/storefront/internal/catalog/domain"
)

// Handler exposes catalog read accessors to the rendering surface.
type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/products", h.list)
	r.GET("/products/featured", h.featured)
	r.GET("/products/:id", h.get)
	r.GET("/products/:id/related", h.related)
}

type productView struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Price            string `json:"price"`
	DisplayPrice     string `json:"display_price"`
	Image            string `json:"image"`
	Featured         bool   `json:"featured"`
	Description      string `json:"description,omitempty"`
	Details          string `json:"details,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
}

func toView(p domain.Product) productView {
	return productView{
		ID:               p.ID,
		Name:             p.Name,
		Category:         string(p.Category),
		Price:            p.Price.StringFixed(2),
		DisplayPrice:     "£" + p.Price.StringFixed(2),
		Image:            p.Image,
		Featured:         p.Featured,
		Description:      p.Description,
		Details:          p.Details,
		ShortDescription: p.ShortDescription,
	}
}

func toViews(products []domain.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, toView(p))
	}
	return out
}

func (h *Handler) list(c *gin.Context) {
	filter := app.Filter{
		Category: domain.Category(c.Query("category")),
		Sort:     app.Sort(c.Query("sort")),
	}

	products, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toViews(products)})
}

func (h *Handler) featured(c *gin.Context) {
	limit := intQuery(c, "limit", 3)

	products, err := h.svc.GetFeatured(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list featured products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toViews(products)})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, toView(p))
}

func (h *Handler) related(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	p, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}

	related, err := h.svc.GetRelated(c.Request.Context(), p, intQuery(c, "limit", 3))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list related products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toViews(related)})
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
