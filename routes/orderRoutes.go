package routes

import (
	"net/http"

	controllers "github.com/AhnafMasud1234/Cafeteria-Web-App/controllers"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, repo *repository.Repository, feed *controllers.OrderFeed) {
	router.HandleFunc("/orders", controllers.CreateOrder(repo, feed)).Methods(http.MethodPost)
	router.HandleFunc("/orders", controllers.GetOrders(repo)).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", controllers.GetOrder(repo)).Methods(http.MethodGet)

	// Admin surface: full ledger plus status transitions.
	router.HandleFunc("/admin/orders", controllers.GetAllOrders(repo)).Methods(http.MethodGet)
	router.HandleFunc("/admin/orders/{order_id}/status", controllers.UpdateOrderStatus(repo, feed)).Methods(http.MethodPut)
}
