package services

import (
	"context"
	"errors"
	"time"

	"github.com/nishantj/orderdesk/internal/config"
	"github.com/nishantj/orderdesk/internal/db"
	"github.com/nishantj/orderdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderPage is the result of a paginated listing.
type OrderPage struct {
	Data       []models.Order `json:"data"`
	Page       int64          `json:"page"`
	Limit      int64          `json:"limit"`
	Total      int64          `json:"total"`
	TotalPages int64          `json:"totalPages"`
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// CreateOrder persists a new order. createdBy always comes from the
// authenticated principal, never from the request body.
func CreateOrder(order models.Order, creatorEmail string) (models.Order, error) {
	collection := db.GetCollection(config.DBName(), "orders")

	now := time.Now()
	order.ID = primitive.NewObjectID()
	order.CreatedBy = creatorEmail
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := collection.InsertOne(context.TODO(), order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ListAllOrders returns one page of orders sorted by orderDate descending,
// plus the total count. The find and the count run concurrently.
func ListAllOrders(page, limit int64) (OrderPage, error) {
	collection := db.GetCollection(config.DBName(), "orders")
	skip := (page - 1) * limit

	ordersChan := make(chan struct {
		orders []models.Order
		err    error
	}, 1)
	countChan := make(chan struct {
		total int64
		err   error
	}, 1)

	go func() {
		opts := options.Find().
			SetSort(bson.D{{Key: "orderDate", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)

		cursor, err := collection.Find(context.TODO(), bson.M{}, opts)
		if err != nil {
			ordersChan <- struct {
				orders []models.Order
				err    error
			}{nil, err}
			return
		}
		defer cursor.Close(context.TODO())

		orders := []models.Order{}
		err = cursor.All(context.TODO(), &orders)
		ordersChan <- struct {
			orders []models.Order
			err    error
		}{orders, err}
	}()

	go func() {
		total, err := collection.CountDocuments(context.TODO(), bson.M{})
		countChan <- struct {
			total int64
			err   error
		}{total, err}
	}()

	ordersResult := <-ordersChan
	countResult := <-countChan

	if ordersResult.err != nil {
		return OrderPage{}, ordersResult.err
	}
	if countResult.err != nil {
		return OrderPage{}, countResult.err
	}

	return OrderPage{
		Data:       ordersResult.orders,
		Page:       page,
		Limit:      limit,
		Total:      countResult.total,
		TotalPages: TotalPages(countResult.total, limit),
	}, nil
}

// ListCustomerOrders returns every order created by the given email.
func ListCustomerOrders(creatorEmail string) ([]models.Order, error) {
	collection := db.GetCollection(config.DBName(), "orders")

	cursor, err := collection.Find(context.TODO(), bson.M{"createdBy": creatorEmail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	orders := []models.Order{}
	if err := cursor.All(context.TODO(), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder removes an order by id. The role check runs before the
// existence check, so non-admins get Forbidden even for unknown ids.
func DeleteOrder(orderID, requesterRole string) error {
	if requesterRole != models.RoleAdmin {
		return ErrAdminOnly
	}

	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return ErrInvalidOrderID
	}

	collection := db.GetCollection(config.DBName(), "orders")
	var deleted models.Order
	err = collection.FindOneAndDelete(context.TODO(), bson.M{"_id": objID}).Decode(&deleted)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
