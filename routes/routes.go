package routes

import (
	"dealaxe/cart"
	"dealaxe/catalog"
	"dealaxe/checkout"
	"dealaxe/compare"
	"dealaxe/middleware"
	"dealaxe/prefs"
	"dealaxe/ratelim"
	"dealaxe/sellers"
	"dealaxe/uploads"

	"github.com/julienschmidt/httprouter"
)

func AddProductRoutes(router *httprouter.Router, h *catalog.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/products/search", rl.Limit(h.SearchProducts))
	router.GET("/api/products/category/:category", rl.Limit(h.ProductsByCategory))
	router.GET("/api/products/product/:id", rl.Limit(h.ProductDetails))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.GET("/api/cart", middleware.WithSession(h.GetCart))
	router.POST("/api/cart", middleware.WithSession(h.AddToCart))
	router.DELETE("/api/cart", middleware.WithSession(h.ClearCart))
	router.PUT("/api/cart/item/:productId", middleware.WithSession(h.UpdateQuantity))
	router.DELETE("/api/cart/item/:productId", middleware.WithSession(h.RemoveFromCart))
}

func AddCompareRoutes(router *httprouter.Router, h *compare.Handler) {
	router.GET("/api/compare", middleware.WithSession(h.GetCompare))
	router.POST("/api/compare", middleware.WithSession(h.AddToCompare))
	router.DELETE("/api/compare", middleware.WithSession(h.ClearCompare))
	router.DELETE("/api/compare/:productId", middleware.WithSession(h.RemoveFromCompare))
	router.POST("/api/compare/open", middleware.WithSession(h.OpenCompare))
	router.POST("/api/compare/close", middleware.WithSession(h.CloseCompare))
	router.GET("/api/compare/view/scores", middleware.WithSession(h.GetScores))
	router.GET("/api/compare/view/recommendation", middleware.WithSession(h.GetRecommendation))
}

func AddPreferenceRoutes(router *httprouter.Router, h *prefs.Handler) {
	router.GET("/api/preferences", middleware.WithSession(h.GetPreferences))
	router.PUT("/api/preferences", middleware.WithSession(h.SavePreferences))
	router.DELETE("/api/preferences", middleware.WithSession(h.ResetPreferences))
	router.GET("/api/preferences/compare", middleware.WithSession(h.GetComparePreferences))
	router.PUT("/api/preferences/compare", middleware.WithSession(h.SaveComparePreferences))
}

func AddSellerRoutes(router *httprouter.Router, h *sellers.Handler) {
	router.GET("/api/sellers/products", h.ListProducts)
	router.POST("/api/sellers/products", h.CreateProduct)
}

func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handler) {
	router.POST("/api/checkout/initiate", middleware.WithSession(h.InitiateCheckout))
	router.POST("/api/checkout/session", middleware.WithSession(h.CreateCheckoutSession))
	router.POST("/api/orders", middleware.WithSession(h.PlaceOrder))
	router.GET("/api/orders/:orderId/receipt", h.OrderReceipt)
}

func AddUploadRoutes(router *httprouter.Router) {
	router.POST("/api/upload", uploads.UploadImage)
	uploads.ServeUploads(router)
}
