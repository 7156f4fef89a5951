package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-restaurant-ws/internal/events"
	"go-restaurant-ws/internal/handler"
	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"
	"go-restaurant-ws/internal/service"
	"go-restaurant-ws/internal/ws"
	"go-restaurant-ws/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Pick the store backend: Postgres when configured, in-memory otherwise
	var (
		productRepo  repository.ProductRepository
		movementRepo repository.StockMovementRepository
		orderRepo    repository.OrderRepository
		tableRepo    repository.TableRepository
	)
	if database.Configured() {
		db := database.ConnectDB()
		db.AutoMigrate(&model.Product{}, &model.StockMovement{}, &model.Order{}, &model.OrderItem{}, &model.Table{})
		productRepo = repository.NewProductRepo(db)
		movementRepo = repository.NewMovementRepo(db)
		orderRepo = repository.NewOrderRepo(db)
		tableRepo = repository.NewTableRepo(db)
	} else {
		log.Println("No database configured, using in-memory store")
		store := repository.NewMemoryStore()
		productRepo = repository.NewMemoryProducts(store)
		movementRepo = repository.NewMemoryMovements(store)
		orderRepo = repository.NewMemoryOrders(store)
		tableRepo = repository.NewMemoryTables(store)
	}

	// 3. Seed demo data on an empty store
	seedDemoData(productRepo, orderRepo, tableRepo)

	// 4. WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Optional NATS event publisher
	var publisher events.Publisher = events.NoopPublisher{}
	if url := os.Getenv("NATS_URL"); url != "" {
		p, err := events.NewNATSPublisher(url)
		if err != nil {
			log.Printf("Warning: NATS unavailable, events disabled: %v", err)
		} else {
			publisher = p
			defer p.Close()
		}
	}

	// 6. Dependency Injection (Wiring Layers)
	invService := service.NewInventoryService(productRepo, movementRepo, wsHub)
	cartService := service.NewCartService(productRepo, orderRepo, wsHub, publisher)
	orderService := service.NewOrderService(orderRepo, wsHub, publisher)
	tableService := service.NewTableService(tableRepo, wsHub, publisher)
	reportService := service.NewReportService(orderRepo, tableRepo)

	invHandler := handler.NewInventoryHandler(invService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	tableHandler := handler.NewTableHandler(tableService)
	reportHandler := handler.NewReportHandler(reportService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Restaurant Dashboard v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 8. Routes
	api := app.Group("/api/v1")

	// Inventory Ledger
	api.Get("/products", invHandler.GetProducts)
	api.Post("/products", invHandler.CreateProduct)
	api.Put("/products/:id", invHandler.UpdateProduct)
	api.Delete("/products/:id", invHandler.DeleteProduct)
	api.Get("/stock-movements", invHandler.GetStockMovements)

	// POS Cart
	api.Get("/catalog", cartHandler.SearchCatalog)
	api.Post("/carts", cartHandler.OpenCart)
	api.Get("/carts/:id", cartHandler.GetCart)
	api.Post("/carts/:id/items", cartHandler.AddItem)
	api.Patch("/carts/:id/items/:productId", cartHandler.ChangeQuantity)
	api.Post("/carts/:id/checkout", cartHandler.Checkout)

	// Table Board
	api.Get("/tables", tableHandler.GetTables)
	api.Put("/tables/:id/status", tableHandler.SetStatus)
	api.Patch("/tables/:id/occupancy", tableHandler.UpdateOccupancy)

	// Order Queue
	api.Get("/orders", orderHandler.GetOrders)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Post("/orders/:id/complete", orderHandler.CompleteOrder)
	api.Post("/orders/:id/cancel", orderHandler.CancelOrder)

	// Reporting
	api.Get("/reports/sales", reportHandler.GetSalesReport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDemoData fills an empty store with the demo catalog, one open
// order and the fixed 20-table board. Re-running against a populated
// store is a no-op.
func seedDemoData(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, tableRepo repository.TableRepository) {
	if n, err := productRepo.Count(); err == nil && n == 0 {
		products := []model.Product{
			{ID: "1", Name: "Pizza Margherita", Price: 45.90, Stock: 30, MinStock: 10, Unit: "un", Category: "Pizzas", LastUpdated: "2024-03-11"},
			{ID: "2", Name: "Pizza Calabresa", Price: 42.90, Stock: 25, MinStock: 10, Unit: "un", Category: "Pizzas", LastUpdated: "2024-03-11"},
			{ID: "3", Name: "Refrigerante 2L", Price: 12.00, Stock: 45, MinStock: 30, Unit: "un", Category: "Bebidas", LastUpdated: "2024-03-11"},
			{ID: "4", Name: "Cerveja 600ml", Price: 8.90, Stock: 60, MinStock: 24, Unit: "un", Category: "Bebidas", LastUpdated: "2024-03-10"},
			{ID: "5", Name: "Mussarela", Price: 38.00, Stock: 15, MinStock: 20, Unit: "kg", Category: "Queijos", LastUpdated: "2024-03-10"},
			{ID: "6", Name: "Molho de Tomate", Price: 9.50, Stock: 8, MinStock: 10, Unit: "L", Category: "Molhos", LastUpdated: "2024-03-09"},
		}
		for i := range products {
			if err := productRepo.Create(&products[i]); err != nil {
				log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
			}
		}
	}

	if n, err := orderRepo.Count(); err == nil && n == 0 {
		order := model.Order{
			ID:          "1",
			TableNumber: 5,
			Status:      model.OrderPending,
			Items: []model.OrderItem{
				{Name: "Pizza Margherita", Quantity: 2, Price: 45.90},
				{Name: "Refrigerante 2L", Quantity: 1, Price: 12.00},
			},
			Total:     120.50,
			CreatedAt: "2024-03-15 19:30",
		}
		if err := orderRepo.Create(&order); err != nil {
			log.Printf("Warning: failed to seed order: %v", err)
		}
	}

	if n, err := tableRepo.Count(); err == nil && n == 0 {
		occupied := map[int]bool{2: true, 5: true, 9: true, 14: true}
		reserved := map[int]bool{3: true, 11: true, 17: true}
		for id := 1; id <= model.TableCount; id++ {
			table := model.Table{ID: id, Status: model.TableAvailable}
			switch {
			case occupied[id]:
				customers := 2 + id%4
				startTime := "19:30"
				orderTotal := float64(50 + id*10)
				table.Status = model.TableOccupied
				table.Customers = &customers
				table.StartTime = &startTime
				table.OrderTotal = &orderTotal
			case reserved[id]:
				table.Status = model.TableReserved
			}
			if err := tableRepo.Create(&table); err != nil {
				log.Printf("Warning: failed to seed table %d: %v", id, err)
			}
		}
	}
}
