package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
	"github.com/AhnafMasud1234/Cafeteria-Web-App/repository"
)

// OrderCreateRequest accepts both the cart shape (items[]) and the legacy
// flat shape (item_id + quantity).
type OrderCreateRequest struct {
	CustomerID string               `json:"customer_id"`
	ItemID     *int                 `json:"item_id"`
	Quantity   *int                 `json:"quantity"`
	Items      []models.LineRequest `json:"items"`
	Notes      string               `json:"notes"`
}

func orderID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["order_id"])
	return id, err == nil
}

// Create an order from a cart (or a legacy single-item request)
func CreateOrder(repo *repository.Repository, feed *OrderFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OrderCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		lines := req.Items
		if len(lines) == 0 {
			if req.ItemID == nil || req.Quantity == nil {
				writeError(w, http.StatusBadRequest, "Provide either items[] or item_id + quantity")
				return
			}
			lines = []models.LineRequest{{ItemID: *req.ItemID, Quantity: *req.Quantity}}
		}

		order, err := repo.PlaceOrder(r.Context(), req.CustomerID, lines, req.Notes)
		if err != nil {
			writeRepoError(w, err)
			return
		}

		feed.Broadcast(order)
		writeSuccess(w, http.StatusCreated, "Order created successfully", order)
	}
}

// Get a single order
func GetOrder(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid order ID")
			return
		}
		order, err := repo.GetOrder(r.Context(), id)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if order == nil {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeSuccess(w, http.StatusOK, "Order retrieved successfully", order)
	}
}

// Get a customer's orders, most recent first
func GetOrders(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customerID := r.URL.Query().Get("customer_id")
		if customerID == "" {
			customerID = models.GuestCustomerID
		}
		orders, err := repo.ListOrders(r.Context(), &customerID)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Orders retrieved successfully", orders)
	}
}

// Get every order (admin view)
func GetAllOrders(repo *repository.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := repo.ListOrders(r.Context(), nil)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Orders retrieved successfully", orders)
	}
}

// Update an order's status (admin)
func UpdateOrderStatus(repo *repository.Repository, feed *OrderFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := orderID(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid order ID")
			return
		}
		var body struct {
			Status models.OrderStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		order, err := repo.UpdateOrderStatus(r.Context(), id, body.Status)
		if err != nil {
			writeRepoError(w, err)
			return
		}
		if order == nil {
			writeError(w, http.StatusNotFound, "Order not found or invalid status")
			return
		}

		feed.Broadcast(order)
		writeSuccess(w, http.StatusOK, "Order status updated successfully", order)
	}
}
