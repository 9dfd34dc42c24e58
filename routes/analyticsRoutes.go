package routes

import (
	"net/http"

	controllers "github.com/AhnafMasud1234/Cafeteria-Web-App/controllers"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
	"github.com/gorilla/mux"
)

func AnalyticsRoutes(router *mux.Router, repo *repository.Repository) {
	router.HandleFunc("/analytics/top-selling", controllers.GetTopSelling(repo)).Methods(http.MethodGet)
	router.HandleFunc("/analytics/top-rated", controllers.GetTopRated(repo)).Methods(http.MethodGet)
	router.HandleFunc("/admin/analytics/top-selling", controllers.GetTopSelling(repo)).Methods(http.MethodGet)
}
