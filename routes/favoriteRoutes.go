package routes

import (
	"net/http"

	controllers "github.com/AhnafMasud1234/Cafeteria-Web-App/controllers"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
	"github.com/gorilla/mux"
)

func FavoriteRoutes(router *mux.Router, repo *repository.Repository) {
	router.HandleFunc("/favorites", controllers.GetFavorites(repo)).Methods(http.MethodGet)
	router.HandleFunc("/favorites/{item_id}", controllers.AddFavorite(repo)).Methods(http.MethodPost)
	router.HandleFunc("/favorites/{item_id}", controllers.RemoveFavorite(repo)).Methods(http.MethodDelete)
}
