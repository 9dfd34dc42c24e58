package controller

import (
	"net/http"
	"strconv"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
)

func limitQuery(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 5
	}
	return limit
}

// Get the top-selling items by units sold
func GetTopSelling(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := repo.TopSelling(r.Context(), limitQuery(r))
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Top-selling items retrieved successfully", entries)
	}
}

// Get the top-rated items
func GetTopRated(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.TopRated(r.Context(), limitQuery(r))
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Top-rated items retrieved successfully", items)
	}
}
