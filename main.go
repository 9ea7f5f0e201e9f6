package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/rokan2059/coffee/configs"
	"github.com/rokan2059/coffee/repository"
	"github.com/rokan2059/coffee/routes"
	"github.com/rokan2059/coffee/services"
	"github.com/rokan2059/coffee/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	repo := repository.NewBlobRepository(configs.DB())
	if err := configs.SeedMenu(repo); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Stores
	catalog, err := services.NewCatalogService(repo)
	if err != nil {
		log.Fatalf("load menu failed: %v", err)
	}
	carts := services.NewCartService(catalog)
	orders, err := services.NewOrderService(repo)
	if err != nil {
		log.Fatalf("load order history failed: %v", err)
	}

	// Live feed for the staff dashboard
	feed := ws.NewOrderFeed()
	go feed.Run()
	orders.SetFeed(feed)

	// Simulated cloud orders
	cloud, err := services.NewCloudService(repo, catalog, orders, cfg.CloudSyncInterval)
	if err != nil {
		log.Fatalf("load cloud config failed: %v", err)
	}
	go cloud.Run(context.Background())

	describe := services.NewDescriptionService(cfg.GenAPIURL, cfg.GenAPIKey)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Cfg:      cfg,
		Catalog:  catalog,
		Carts:    carts,
		Orders:   orders,
		Cloud:    cloud,
		Describe: describe,
		Feed:     feed,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
