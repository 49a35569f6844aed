package services

import (
	"context"
	"time"

	"github.com/nishantj/orderdesk/internal/config"
	"github.com/nishantj/orderdesk/internal/db"
	"github.com/nishantj/orderdesk/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RevenueStats struct {
	TotalRevenue     float64 `json:"totalRevenue"`
	PercentageChange float64 `json:"percentageChange"`
}

type OrderCountStats struct {
	OrderCount       int64   `json:"orderCount"`
	PercentageChange float64 `json:"percentageChange"`
}

type UniqueCustomerStats struct {
	UniqueCustomers  int64   `json:"uniqueCustomers"`
	PercentageChange float64 `json:"percentageChange"`
}

// CategoryCount mirrors the aggregation output: the grouping key is the
// stored productCategory value itself.
type CategoryCount struct {
	Category []string `bson:"_id" json:"category"`
	Count    int64    `bson:"count" json:"count"`
}

// MonthlyRevenue buckets revenue by calendar month (1-12). There is no year
// dimension: Januaries of different years land in the same bucket.
type MonthlyRevenue struct {
	Month   int32   `bson:"_id" json:"month"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

func revenuePipeline(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

func uniqueCustomersPipeline(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$customerName"}}}},
		bson.D{{Key: "$count", Value: "uniqueCustomers"}},
	}
}

func categoryPipeline(start, end time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"orderDate": bson.M{"$gte": start, "$lte": end},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$productCategory"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}

func trendPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$month", Value: "$orderDate"}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

func sumRevenue(filter bson.M) (float64, error) {
	collection := db.GetCollection(config.DBName(), "orders")

	cursor, err := collection.Aggregate(context.TODO(), revenuePipeline(filter))
	if err != nil {
		return 0, err
	}
	defer cursor.Close(context.TODO())

	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(context.TODO(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}

func countUniqueCustomers(filter bson.M) (int64, error) {
	collection := db.GetCollection(config.DBName(), "orders")

	cursor, err := collection.Aggregate(context.TODO(), uniqueCustomersPipeline(filter))
	if err != nil {
		return 0, err
	}
	defer cursor.Close(context.TODO())

	var rows []struct {
		UniqueCustomers int64 `bson:"uniqueCustomers"`
	}
	if err := cursor.All(context.TODO(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].UniqueCustomers, nil
}

// TotalRevenue sums order prices in the requested window and reports the
// change against the comparison window. Both windows are queried in
// parallel.
func TotalRevenue(timeframe string) (RevenueStats, error) {
	now := time.Now()
	currentFilter := timeframeFilter(now, timeframe)
	previousFilter := timeframeFilter(now, comparisonTimeframe(timeframe))

	results, errs := utils.RunParallelTasks([]utils.ParallelTask{
		func() (interface{}, error) { return sumRevenue(currentFilter) },
		func() (interface{}, error) { return sumRevenue(previousFilter) },
	})
	if err := utils.FirstError(errs); err != nil {
		return RevenueStats{}, err
	}

	current := results[0].(float64)
	previous := results[1].(float64)
	return RevenueStats{
		TotalRevenue:     current,
		PercentageChange: percentageChange(current, previous),
	}, nil
}

// OrderCount counts orders in the requested window plus the change against
// the comparison window.
func OrderCount(timeframe string) (OrderCountStats, error) {
	collection := db.GetCollection(config.DBName(), "orders")
	now := time.Now()
	currentFilter := timeframeFilter(now, timeframe)
	previousFilter := timeframeFilter(now, comparisonTimeframe(timeframe))

	results, errs := utils.RunParallelTasks([]utils.ParallelTask{
		func() (interface{}, error) { return collection.CountDocuments(context.TODO(), currentFilter) },
		func() (interface{}, error) { return collection.CountDocuments(context.TODO(), previousFilter) },
	})
	if err := utils.FirstError(errs); err != nil {
		return OrderCountStats{}, err
	}

	current := results[0].(int64)
	previous := results[1].(int64)
	return OrderCountStats{
		OrderCount:       current,
		PercentageChange: percentageChange(float64(current), float64(previous)),
	}, nil
}

// UniqueCustomers counts distinct customerName values in the requested
// window plus the change against the comparison window.
func UniqueCustomers(timeframe string) (UniqueCustomerStats, error) {
	now := time.Now()
	currentFilter := timeframeFilter(now, timeframe)
	previousFilter := timeframeFilter(now, comparisonTimeframe(timeframe))

	results, errs := utils.RunParallelTasks([]utils.ParallelTask{
		func() (interface{}, error) { return countUniqueCustomers(currentFilter) },
		func() (interface{}, error) { return countUniqueCustomers(previousFilter) },
	})
	if err := utils.FirstError(errs); err != nil {
		return UniqueCustomerStats{}, err
	}

	current := results[0].(int64)
	previous := results[1].(int64)
	return UniqueCustomerStats{
		UniqueCustomers:  current,
		PercentageChange: percentageChange(float64(current), float64(previous)),
	}, nil
}

// OrdersByCategory groups in-range orders by productCategory, most frequent
// first. Unlike the other analytics, the timeframe is required: an
// unrecognized value is a bad request, not "all orders".
func OrdersByCategory(timeframe string) ([]CategoryCount, error) {
	start, end, ok := timeframeRange(time.Now(), timeframe)
	if !ok {
		return nil, ErrInvalidTimeframe
	}

	collection := db.GetCollection(config.DBName(), "orders")
	cursor, err := collection.Aggregate(context.TODO(), categoryPipeline(start, end))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	rows := []CategoryCount{}
	if err := cursor.All(context.TODO(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RevenueTrend sums revenue per calendar month across all orders, sorted by
// month ascending.
func RevenueTrend() ([]MonthlyRevenue, error) {
	collection := db.GetCollection(config.DBName(), "orders")

	cursor, err := collection.Aggregate(context.TODO(), trendPipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	rows := []MonthlyRevenue{}
	if err := cursor.All(context.TODO(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
