package routes

import (
	"net/http"

	controllers "github.com/AhnafMasud1234/Cafeteria-Web-App/controllers"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
	"github.com/gorilla/mux"
)

func ItemRoutes(router *mux.Router, repo *repository.Repository) {
	router.HandleFunc("/items", controllers.GetItems(repo)).Methods(http.MethodGet)
	router.HandleFunc("/items", controllers.CreateItem(repo)).Methods(http.MethodPost)
	router.HandleFunc("/items/{item_id}", controllers.GetItem(repo)).Methods(http.MethodGet)
	router.HandleFunc("/items/{item_id}", controllers.UpdateItem(repo)).Methods(http.MethodPut)
	router.HandleFunc("/items/{item_id}", controllers.DeleteItem(repo)).Methods(http.MethodDelete)
	router.HandleFunc("/items/{item_id}/rating", controllers.RateItem(repo)).Methods(http.MethodPost)
	router.HandleFunc("/daily-specials", controllers.GetDailySpecials(repo)).Methods(http.MethodGet)
	router.HandleFunc("/categories", controllers.GetCategories(repo)).Methods(http.MethodGet)
	router.HandleFunc("/search", controllers.SearchItems(repo)).Methods(http.MethodGet)
}
