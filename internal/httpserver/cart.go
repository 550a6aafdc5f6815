package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wahibashop/internal/cart"
	"wahibashop/internal/domain"
	"wahibashop/internal/pricing"
)

type cartView struct {
	Lines      []domain.CartLine `json:"lines"`
	TotalCents int64             `json:"totalCents"`
	Count      int               `json:"count"`
}

func viewOf(lines []domain.CartLine) cartView {
	return cartView{
		Lines:      lines,
		TotalCents: cart.Total(lines),
		Count:      cart.Count(lines),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	lines, err := h.deps.Carts.Load(c.Request.Context(), sid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(lines))
}

type addLineInput struct {
	ProductID   string  `json:"productId" binding:"required"`
	VariationID *string `json:"variationId"`
	Quantity    int     `json:"quantity"`
}

// addCartLine captures the product's current price into the line. A
// later price change does not touch lines already in a cart, and a
// repeat add keeps the first add's captured price.
func (h *handlers) addCartLine(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var in addLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	product, err := h.deps.Store.Product(ctx, in.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}

	line := domain.CartLine{
		ProductID:        product.ID,
		VariationID:      in.VariationID,
		Quantity:         in.Quantity,
		PriceAtTimeCents: pricing.ResolveUnitPrice(*product, in.VariationID),
		ProductName:      product.Name,
		VariationName:    pricing.ResolveVariationName(*product, in.VariationID),
		Image:            product.CoverImage(),
	}

	lines, err := h.deps.Carts.Load(ctx, sid)
	if err != nil {
		writeError(c, err)
		return
	}
	lines = cart.AddLine(lines, line)
	if err := h.deps.Carts.Save(ctx, sid, lines); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(lines))
}

type lineKeyInput struct {
	ProductID   string  `json:"productId" binding:"required"`
	VariationID *string `json:"variationId"`
	Quantity    int     `json:"quantity"`
}

type mutateFunc func(lines []domain.CartLine, in lineKeyInput) []domain.CartLine

func (h *handlers) mutateCart(c *gin.Context, mutate mutateFunc) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var in lineKeyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	lines, err := h.deps.Carts.Load(ctx, sid)
	if err != nil {
		writeError(c, err)
		return
	}
	lines = mutate(lines, in)
	if err := h.deps.Carts.Save(ctx, sid, lines); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(lines))
}

func (h *handlers) setCartQuantity(c *gin.Context) {
	h.mutateCart(c, func(lines []domain.CartLine, in lineKeyInput) []domain.CartLine {
		return cart.SetQuantity(lines, in.ProductID, in.VariationID, in.Quantity)
	})
}

func (h *handlers) incrementCartLine(c *gin.Context) {
	h.mutateCart(c, func(lines []domain.CartLine, in lineKeyInput) []domain.CartLine {
		return cart.Increment(lines, in.ProductID, in.VariationID)
	})
}

func (h *handlers) decrementCartLine(c *gin.Context) {
	h.mutateCart(c, func(lines []domain.CartLine, in lineKeyInput) []domain.CartLine {
		return cart.Decrement(lines, in.ProductID, in.VariationID)
	})
}

func (h *handlers) removeCartLine(c *gin.Context) {
	h.mutateCart(c, func(lines []domain.CartLine, in lineKeyInput) []domain.CartLine {
		return cart.RemoveLine(lines, in.ProductID, in.VariationID)
	})
}

func (h *handlers) clearCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.deps.Carts.Clear(c.Request.Context(), sid); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf([]domain.CartLine{}))
}

func (h *handlers) checkout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	placed, err := h.deps.Orders.Place(c.Request.Context(), sid, customer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placed)
}
