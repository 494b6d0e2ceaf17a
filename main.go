package main

import (
	"context"
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"foodfest/internal/config"
	"foodfest/internal/database"
	"foodfest/internal/handlers"
	"foodfest/internal/middleware"
	"foodfest/internal/notify"
)

func main() {
	seed := flag.Bool("seed", false, "reset and seed the foods collection, then exit")
	flag.Parse()

	config.Load()
	cfg := config.AppEnv

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(cfg.DBName)
	log.Println("MongoDB connected to:", db.Name())

	if *seed {
		if err := database.SeedFoods(context.Background(), db); err != nil {
			log.Fatal(err)
		}
		log.Println("database seeding completed")
		return
	}

	if err := database.EnsureFoodIndexes(db); err != nil {
		log.Printf("food index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	hub := notify.NewHub()
	var sink notify.Sink = hub
	if cfg.RabbitURL != "" {
		amqpSink, err := notify.NewAMQPSink(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq sink disabled: %v", err)
		} else {
			defer amqpSink.Close()
			sink = notify.Multi{hub, notify.Async{Sink: amqpSink}}
		}
	}

	r := gin.Default()

	r.GET("/foods", handlers.GetFoods(db))
	r.POST("/orders", handlers.CreateOrder(db, cfg, sink))
	r.GET("/orders/:id", handlers.GetOrder(db))
	r.POST("/orders/:id/submit-utr", handlers.SubmitUTR(db, sink))

	r.POST("/admin/login", handlers.AdminLogin(cfg))

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))
	{
		admin.GET("/orders", handlers.GetAdminOrders(db))
		admin.PATCH("/orders/:id/verify-payment", handlers.VerifyPayment(db, sink))
		admin.PATCH("/orders/:id/reject-payment", handlers.RejectPayment(db, sink))
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(db, cfg, sink))

		admin.PATCH("/foods/:id/toggle", handlers.ToggleFoodAvailability(db))
		admin.PATCH("/foods/:id/stock", handlers.SetFoodStock(db))

		admin.GET("/stats", handlers.GetAdminStats(db))
		admin.GET("/events", handlers.AdminEvents(hub))
	}

	r.Run(":" + cfg.Port)
}
