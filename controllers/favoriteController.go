package controller

import (
	"net/http"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
)

func customerQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	customerID := r.URL.Query().Get("customer_id")
	if customerID == "" {
		writeError(w, http.StatusBadRequest, "customer_id is required")
		return "", false
	}
	return customerID, true
}

// Add an item to a customer's favorites
func AddFavorite(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerQuery(w, r)
		if !ok {
			return
		}
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}

		added, err := repo.AddFavorite(r.Context(), customerID, id)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if !added {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Added to favorites", map[string]int{"item_id": id})
	}
}

// Remove an item from a customer's favorites
func RemoveFavorite(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerQuery(w, r)
		if !ok {
			return
		}
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}

		removed, err := repo.RemoveFavorite(r.Context(), customerID, id)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if !removed {
			writeError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Removed from favorites", map[string]int{"item_id": id})
	}
}

// Get a customer's favorite items, resolved against the catalog
func GetFavorites(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerQuery(w, r)
		if !ok {
			return
		}
		items, err := repo.FavoriteItems(r.Context(), customerID)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Favorites retrieved successfully", items)
	}
}
