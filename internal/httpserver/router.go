package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"wahibashop/internal/cartstore"
	"wahibashop/internal/catalog"
	"wahibashop/internal/order"
)

// Deps carries the services the handlers need.
type Deps struct {
	Store   *catalog.Store
	Carts   *cartstore.Store
	Orders  *order.Service
	Seeds   catalog.Seeds
	Origins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.Origins) == 1 && deps.Origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.Origins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Session-ID", "X-Confirm-Reset")
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/hero-images", h.listHeroImages)
		api.GET("/client-results", h.listClientResults)
		api.GET("/testimonials", h.listTestimonials)
		api.POST("/messages", h.addMessage)

		api.GET("/cart", h.getCart)
		api.POST("/cart/lines", h.addCartLine)
		api.PUT("/cart/lines", h.setCartQuantity)
		api.POST("/cart/lines/increment", h.incrementCartLine)
		api.POST("/cart/lines/decrement", h.decrementCartLine)
		api.DELETE("/cart/lines", h.removeCartLine)
		api.DELETE("/cart", h.clearCart)

		api.POST("/checkout", h.checkout)

		api.GET("/watch/:collection", h.watchCollection)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/products", h.saveProduct)
		admin.PUT("/products/:id", h.saveProduct)
		admin.DELETE("/products/:id", h.deleteProduct)

		admin.GET("/orders", h.listOrders)
		admin.PATCH("/orders/:id/status", h.updateOrderStatus)

		admin.GET("/messages", h.listMessages)

		admin.POST("/hero-images", h.addHeroImage)
		admin.DELETE("/hero-images/:id", h.removeHeroImage)
		admin.POST("/client-results", h.addClientResult)
		admin.DELETE("/client-results/:id", h.removeClientResult)
		admin.POST("/testimonials", h.addTestimonial)
		admin.DELETE("/testimonials/:id", h.removeTestimonial)

		admin.POST("/reset", h.resetAll)
	}

	return router
}
