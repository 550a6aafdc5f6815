package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wahibashop/internal/catalog"
	"wahibashop/internal/domain"
)

var (
	errVariationID  = errors.New("variation id required")
	errVariationDup = errors.New("variation ids must be unique within a product")
)

func (h *handlers) saveProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if id := c.Param("id"); id != "" {
		p.ID = id
	}
	p.ID = catalog.NormalizeID(p.ID)
	if err := validateProduct(p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.deps.Store.SaveProduct(c.Request.Context(), p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func validateProduct(p domain.Product) error {
	seen := make(map[string]bool, len(p.Variations))
	for _, v := range p.Variations {
		if v.ID == "" {
			return errVariationID
		}
		if seen[v.ID] {
			return errVariationDup
		}
		seen[v.ID] = true
	}
	return nil
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.Store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.Store.Orders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type statusInput struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var in statusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.deps.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listMessages(c *gin.Context) {
	messages, err := h.deps.Store.Messages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *handlers) addHeroImage(c *gin.Context) {
	var img domain.HeroImage
	if err := c.ShouldBindJSON(&img); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img.ID = catalog.NormalizeID(img.ID)
	if err := h.deps.Store.AddHeroImage(c.Request.Context(), img); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (h *handlers) removeHeroImage(c *gin.Context) {
	if err := h.deps.Store.RemoveHeroImage(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) addClientResult(c *gin.Context) {
	var result domain.ClientResult
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result.ID = catalog.NormalizeID(result.ID)
	if err := h.deps.Store.AddClientResult(c.Request.Context(), result); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *handlers) removeClientResult(c *gin.Context) {
	if err := h.deps.Store.RemoveClientResult(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) addTestimonial(c *gin.Context) {
	var t domain.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.ID = catalog.NormalizeID(t.ID)
	if err := h.deps.Store.AddTestimonial(c.Request.Context(), t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *handlers) removeTestimonial(c *gin.Context) {
	if err := h.deps.Store.RemoveTestimonial(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resetConfirmPhrase must be supplied verbatim before the store is
// wiped. The reset is irreversible, so ambiguity is not acceptable.
const resetConfirmPhrase = "RESET-STORE"

type resetInput struct {
	Confirm string `json:"confirm"`
}

func (h *handlers) resetAll(c *gin.Context) {
	var in resetInput
	_ = c.ShouldBindJSON(&in)
	if strings.TrimSpace(in.Confirm) != resetConfirmPhrase {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error": "confirmation required: send {\"confirm\":\"" + resetConfirmPhrase + "\"}",
		})
		return
	}
	if err := h.deps.Store.ResetAll(c.Request.Context(), h.deps.Seeds); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
