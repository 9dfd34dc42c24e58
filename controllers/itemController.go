package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
)

var validate = validator.New()

func itemID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["item_id"])
	return id, err == nil
}

// boolQuery parses an optional boolean query parameter, nil when absent or
// malformed.
func boolQuery(r *http.Request, key string) *bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// Get all items with optional equality filters
func GetItems(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.ItemFilter{
			Available:    boolQuery(r, "available"),
			Vegetarian:   boolQuery(r, "vegetarian"),
			Vegan:        boolQuery(r, "vegan"),
			GlutenFree:   boolQuery(r, "gluten_free"),
			DailySpecial: boolQuery(r, "daily_special"),
		}
		if category := r.URL.Query().Get("category"); category != "" {
			filter.Category = &category
		}

		items, err := repo.ListItems(r.Context(), filter)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Items retrieved successfully", items)
	}
}

// Get a single item
func GetItem(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}
		item, err := repo.GetItem(r.Context(), id)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if item == nil {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Item retrieved successfully", item)
	}
}

// Create an item
func CreateItem(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ItemInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if validationErr := validate.Struct(input); validationErr != nil {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}

		item, err := repo.CreateItem(r.Context(), input)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Item created successfully", item)
	}
}

// Update an item with partial fields
func UpdateItem(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}
		var patch models.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := repo.UpdateItem(r.Context(), id, patch)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if item == nil {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Item updated successfully", item)
	}
}

// Delete an item
func DeleteItem(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}
		deleted, err := repo.DeleteItem(r.Context(), id)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Item deleted successfully", nil)
	}
}

// Rate an item (1..5)
func RateItem(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := itemID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid item ID")
			return
		}
		var body struct {
			Rating int `json:"rating"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := repo.RateItem(r.Context(), id, body.Rating)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if item == nil {
			writeError(w, http.StatusNotFound, "Item not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Rating recorded successfully", item)
	}
}

// Get the daily specials
func GetDailySpecials(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := repo.DailySpecials(r.Context())
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Daily specials retrieved successfully", items)
	}
}

// Get the distinct category names
func GetCategories(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := repo.Categories(r.Context())
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Categories retrieved successfully", categories)
	}
}

// Search items by name or description
func SearchItems(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			writeError(w, http.StatusBadRequest, "Search query is required")
			return
		}
		var category *string
		if c := r.URL.Query().Get("category"); c != "" {
			category = &c
		}

		items, err := repo.SearchItems(r.Context(), query, category)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Search results retrieved successfully", items)
	}
}
