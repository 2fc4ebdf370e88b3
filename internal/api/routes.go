package api

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"enhancives/internal/api/handlers"
	jwtMiddleware "enhancives/internal/api/middleware"
	"enhancives/internal/config"
	"enhancives/internal/repository"
)

func SetupRoutes(e *echo.Echo, store repository.Store, rdb *goredis.Client, cfg *config.Config) {
	e.GET("/health", healthCheck)

	wsHandler := handlers.NewWebSocketHandler(cfg)
	e.GET("/api/ws", wsHandler.HandleConnection)

	e.Validator = NewValidator()

	authHandler := handlers.NewAuthHandler(store, cfg.JWTKey)
	authGroup := e.Group("/api/auth")
	authGroup.POST("/signup", authHandler.SignUp)
	authGroup.POST("/signin", authHandler.SignIn)

	// Browsing the marketplace and reading the slot schema need no account.
	marketplaceHandler := handlers.NewMarketplaceHandler(store)
	e.GET("/api/marketplace", marketplaceHandler.Browse)

	equipmentHandler := handlers.NewEquipmentHandler(store, rdb)
	e.GET("/api/equipment/slots", equipmentHandler.GetSlotSchema)

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTKey),
		ContextKey: "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(echojwt.WithConfig(jwtConfig))
	apiGroup.Use(jwtMiddleware.ExtractUsernameFromJWT())

	itemHandler := handlers.NewItemHandler(store, rdb)
	apiGroup.GET("/items", itemHandler.GetItems)
	apiGroup.POST("/items", itemHandler.CreateItem)
	apiGroup.PUT("/items/:id", itemHandler.UpdateItem)
	apiGroup.DELETE("/items/:id", itemHandler.DeleteItem)

	apiGroup.GET("/equipment", equipmentHandler.GetEquipment)
	apiGroup.POST("/equipment/equip", equipmentHandler.Equip)
	apiGroup.POST("/equipment/unequip", equipmentHandler.Unequip)

	totalsHandler := handlers.NewTotalsHandler(store, rdb)
	apiGroup.GET("/totals", totalsHandler.GetTotals)
	apiGroup.GET("/totals/analysis", totalsHandler.GetAnalysis)

	loadoutHandler := handlers.NewLoadoutHandler(store, rdb)
	apiGroup.GET("/loadouts", loadoutHandler.GetLoadouts)
	apiGroup.POST("/loadouts", loadoutHandler.SaveLoadout)
	apiGroup.POST("/loadouts/:id/apply", loadoutHandler.ApplyLoadout)
	apiGroup.DELETE("/loadouts/:id", loadoutHandler.DeleteLoadout)

	apiGroup.GET("/marketplace/mine", marketplaceHandler.MyListings)
	apiGroup.POST("/marketplace/sync", marketplaceHandler.Sync)

	backupHandler := handlers.NewBackupHandler(store, rdb)
	apiGroup.GET("/backup/export", backupHandler.Export)
	apiGroup.POST("/backup/import", backupHandler.Import)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
