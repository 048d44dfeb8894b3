package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gudang-gateway/internal/domain"
	"gudang-gateway/internal/pos"
	"gudang-gateway/internal/service/stats"
)

type authService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Profile(ctx context.Context) (domain.Profile, error)
}

type statsService interface {
	Summarize(ctx context.Context) (stats.Summary, error)
}

type catalogService interface {
	List(ctx context.Context, search string) ([]domain.StockItem, error)
	Create(ctx context.Context, item domain.StockItem) (domain.StockItem, error)
	Update(ctx context.Context, id int64, item domain.StockItem) (domain.StockItem, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (domain.Category, error)
	Update(ctx context.Context, id int64, name string) (domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type supplierService interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	Create(ctx context.Context, s domain.Supplier) (domain.Supplier, error)
	Update(ctx context.Context, id int64, s domain.Supplier) (domain.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

type posSessions interface {
	Do(ctx context.Context, token string, fn func(*pos.Engine) error) error
	Release(token string)
}

// Deps carries the services the router exposes.
type Deps struct {
	Pinger   Pinger
	Auth     authService
	Stats    statsService
	Catalog  catalogService
	Category categoryService
	Supplier supplierService
	POS      posSessions
}

// buildRouter wires routes for the gateway.
func buildRouter(log *logrus.Entry, deps Deps, allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), requestLogger(log), gin.Recovery())
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Pinger))

	api := router.Group("/api")
	api.POST("/auth/login", loginHandler(deps.Auth))

	authed := api.Group("", tokenRequired())
	authed.GET("/profile", profileHandler(deps.Auth))
	authed.GET("/dashboard", dashboardHandler(deps.Stats))

	authed.GET("/items", listItemsHandler(deps.Catalog))
	authed.POST("/items", createItemHandler(deps.Catalog))
	authed.PUT("/items/:id", updateItemHandler(deps.Catalog))
	authed.DELETE("/items/:id", deleteItemHandler(deps.Catalog))

	authed.GET("/categories", listCategoriesHandler(deps.Category))
	authed.POST("/categories", createCategoryHandler(deps.Category))
	authed.PUT("/categories/:id", updateCategoryHandler(deps.Category))
	authed.DELETE("/categories/:id", deleteCategoryHandler(deps.Category))

	authed.GET("/suppliers", listSuppliersHandler(deps.Supplier))
	authed.POST("/suppliers", createSupplierHandler(deps.Supplier))
	authed.PUT("/suppliers/:id", updateSupplierHandler(deps.Supplier))
	authed.DELETE("/suppliers/:id", deleteSupplierHandler(deps.Supplier))

	authed.GET("/pos/cart", getCartHandler(deps.POS))
	authed.POST("/pos/cart/items", addItemHandler(deps.POS))
	authed.PATCH("/pos/cart/items/:id", adjustItemHandler(deps.POS))
	authed.DELETE("/pos/cart/items/:id", removeItemHandler(deps.POS))
	authed.POST("/pos/checkout", beginCheckoutHandler(deps.POS))
	authed.POST("/pos/checkout/confirm", confirmCheckoutHandler(deps.POS))
	authed.POST("/pos/checkout/cancel", cancelCheckoutHandler(deps.POS))
	authed.DELETE("/pos/session", releaseSessionHandler(deps.POS))

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return cfg
}
