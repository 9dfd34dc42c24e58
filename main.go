package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	database "github.com/AhnafMasud1234/Cafeteria-Web-App/config"
	controllers "github.com/AhnafMasud1234/Cafeteria-Web-App/controllers"
	middleware "github.com/AhnafMasud1234/Cafeteria-Web-App/middlewares"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/routes"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/storage"
)

func main() {
	database.LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	client := database.DBinstance()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Mongo disconnect failed: %v", err)
		}
	}()

	items := storage.NewMongoItemStore(database.OpenCollection(client, "items"))
	orders := storage.NewMongoOrderStore(database.OpenCollection(client, "orders"), items)
	favorites := storage.NewMongoFavoriteStore(database.OpenCollection(client, "favorites"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := items.EnsureSeed(ctx); err != nil {
		log.Fatalf("Seeding catalog failed: %v", err)
	}

	repo := repository.New(items, orders, favorites)
	feed := controllers.NewOrderFeed()

	router := mux.NewRouter()
	router.Use(middleware.RequestLogging)
	router.Use(middleware.Metrics)

	api := router.PathPrefix("/api").Subrouter()
	routes.ItemRoutes(api, repo)
	routes.OrderRoutes(api, repo, feed)
	routes.FavoriteRoutes(api, repo)
	routes.AnalyticsRoutes(api, repo)

	router.HandleFunc("/ws/orders", feed.Handler()).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	log.Printf("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
