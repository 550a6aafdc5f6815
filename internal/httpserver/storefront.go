package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wahibashop/internal/catalog"
	"wahibashop/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.Store.Products(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Store.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) listHeroImages(c *gin.Context) {
	images, err := h.deps.Store.HeroImages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *handlers) listClientResults(c *gin.Context) {
	results, err := h.deps.Store.ClientResults(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *handlers) listTestimonials(c *gin.Context) {
	testimonials, err := h.deps.Store.Testimonials(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

type messageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (h *handlers) addMessage(c *gin.Context) {
	var in messageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg := domain.ContactMessage{
		ID:      catalog.NormalizeID(""),
		Date:    time.Now().UTC(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := h.deps.Store.AddMessage(c.Request.Context(), msg); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
