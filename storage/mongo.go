package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AhnafMasud1234/Cafeteria-Web-App/models"
)

// MongoItemStore backs the catalog with a MongoDB collection keyed on the
// numeric "id" field.
type MongoItemStore struct {
	col *mongo.Collection
}

func NewMongoItemStore(col *mongo.Collection) *MongoItemStore {
	return &MongoItemStore{col: col}
}

func (s *MongoItemStore) Get(ctx context.Context, id int) (*models.Item, error) {
	var item models.Item
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MongoItemStore) GetMany(ctx context.Context, ids []int) (map[int]models.Item, error) {
	cursor, err := s.col.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Item
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	out := make(map[int]models.Item, len(items))
	for _, it := range items {
		out[it.ID] = it
	}
	return out, nil
}

func (s *MongoItemStore) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	query := bson.M{}
	if filter.Available != nil {
		query["available"] = *filter.Available
	}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.Vegetarian != nil {
		query["is_vegetarian"] = *filter.Vegetarian
	}
	if filter.Vegan != nil {
		query["is_vegan"] = *filter.Vegan
	}
	if filter.GlutenFree != nil {
		query["is_gluten_free"] = *filter.GlutenFree
	}
	if filter.DailySpecial != nil {
		query["is_daily_special"] = *filter.DailySpecial
	}

	cursor, err := s.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoItemStore) Insert(ctx context.Context, item models.Item) error {
	_, err := s.col.InsertOne(ctx, item)
	return err
}

func (s *MongoItemStore) Update(ctx context.Context, id int, patch models.ItemPatch) (*models.Item, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Available != nil {
		set["available"] = *patch.Available
	}
	if patch.ImageURL != nil {
		set["image_url"] = *patch.ImageURL
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.IsVegetarian != nil {
		set["is_vegetarian"] = *patch.IsVegetarian
	}
	if patch.IsVegan != nil {
		set["is_vegan"] = *patch.IsVegan
	}
	if patch.IsGlutenFree != nil {
		set["is_gluten_free"] = *patch.IsGlutenFree
	}
	if patch.Allergens != nil {
		set["allergens"] = *patch.Allergens
	}
	if patch.IsDailySpecial != nil {
		set["is_daily_special"] = *patch.IsDailySpecial
	}
	if patch.DiscountPercentage != nil {
		set["discount_percentage"] = *patch.DiscountPercentage
	}
	if patch.Calories != nil {
		set["calories"] = *patch.Calories
	}
	if patch.PreparationTime != nil {
		set["preparation_time"] = *patch.PreparationTime
	}
	if len(set) == 0 {
		return s.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Item
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MongoItemStore) Delete(ctx context.Context, id int) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (s *MongoItemStore) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, s.col)
}

func (s *MongoItemStore) AdjustStock(ctx context.Context, id int, delta int) error {
	// Pipeline update: quantity change and availability recompute land in one
	// atomic single-document write.
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "quantity", Value: bson.D{{Key: "$add", Value: bson.A{"$quantity", delta}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "available", Value: bson.D{{Key: "$gt", Value: bson.A{"$quantity", 0}}}},
		}}},
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"id": id}, update)
	return err
}

func (s *MongoItemStore) SetRating(ctx context.Context, id int, avg float64, count int) (*models.Item, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"rating_avg": avg, "rating_count": count}}

	var updated models.Item
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// EnsureSeed inserts the starter catalog when the collection is empty.
func (s *MongoItemStore) EnsureSeed(ctx context.Context) error {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}
	seed := []interface{}{
		models.Item{ID: 1, Name: "Chicken Biryani", Category: "main", Price: 4.50, Quantity: 20, Available: true},
		models.Item{ID: 2, Name: "Veg Sandwich", Category: "snack", Price: 2.00, Quantity: 15, Available: true},
		models.Item{ID: 3, Name: "Coffee", Category: "drink", Price: 1.50, Quantity: 20, Available: true},
	}
	_, err = s.col.InsertMany(ctx, seed)
	return err
}

// MongoOrderStore backs the order ledger. It also holds the items collection
// so legacy flat orders can resolve names and prices during normalization.
type MongoOrderStore struct {
	col   *mongo.Collection
	items *MongoItemStore
}

func NewMongoOrderStore(col *mongo.Collection, items *MongoItemStore) *MongoOrderStore {
	return &MongoOrderStore{col: col, items: items}
}

func (s *MongoOrderStore) lookupItem(ctx context.Context) func(id int) *models.Item {
	return func(id int) *models.Item {
		it, err := s.items.Get(ctx, id)
		if err != nil {
			return nil
		}
		return it
	}
}

func (s *MongoOrderStore) Get(ctx context.Context, id int) (*models.Order, error) {
	var doc orderDoc
	err := s.col.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order := normalizeOrder(doc, s.lookupItem(ctx))
	return &order, nil
}

func (s *MongoOrderStore) List(ctx context.Context, customerID *string) ([]models.Order, error) {
	query := bson.M{}
	if customerID != nil {
		if *customerID == models.GuestCustomerID {
			// Legacy orders predate customer tracking; they belong to the guest.
			query = bson.M{"$or": []bson.M{
				{"customer_id": models.GuestCustomerID},
				{"customer_id": bson.M{"$exists": false}},
			}}
		} else {
			query = bson.M{"customer_id": *customerID}
		}
	}

	cursor, err := s.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	lookup := s.lookupItem(ctx)
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, normalizeOrder(doc, lookup))
	}
	return orders, nil
}

func (s *MongoOrderStore) Insert(ctx context.Context, order models.Order) error {
	_, err := s.col.InsertOne(ctx, order)
	return err
}

func (s *MongoOrderStore) NextID(ctx context.Context) (int, error) {
	return nextID(ctx, s.col)
}

func (s *MongoOrderStore) AppendStatus(ctx context.Context, id int, entry models.StatusEntry, completedAt *time.Time) (*models.Order, error) {
	set := bson.M{"status": entry.Status}
	if completedAt != nil {
		set["completed_at"] = *completedAt
	}
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"status_history": entry},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc orderDoc
	err := s.col.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	order := normalizeOrder(doc, s.lookupItem(ctx))
	return &order, nil
}

// MongoFavoriteStore backs favorite pairs with one document per
// (customer, item) association.
type MongoFavoriteStore struct {
	col *mongo.Collection
}

func NewMongoFavoriteStore(col *mongo.Collection) *MongoFavoriteStore {
	return &MongoFavoriteStore{col: col}
}

func (s *MongoFavoriteStore) Add(ctx context.Context, fav models.Favorite) error {
	filter := bson.M{"customer_id": fav.CustomerID, "item_id": fav.ItemID}
	update := bson.M{"$setOnInsert": fav}
	_, err := s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *MongoFavoriteStore) Remove(ctx context.Context, customerID string, itemID int) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"customer_id": customerID, "item_id": itemID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (s *MongoFavoriteStore) List(ctx context.Context, customerID string) ([]int, error) {
	cursor, err := s.col.Find(ctx, bson.M{"customer_id": customerID},
		options.Find().SetSort(bson.D{{Key: "item_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favs []models.Favorite
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ItemID)
	}
	return ids, nil
}

// nextID derives the next integer id as max existing + 1, or 1 when the
// collection is empty.
func nextID(ctx context.Context, col *mongo.Collection) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}}).
		SetProjection(bson.M{"id": 1})

	var last struct {
		ID int `bson:"id"`
	}
	err := col.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}
