package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestRevenuePipeline(t *testing.T) {
	filter := bson.M{"orderDate": bson.M{"$gte": time.Time{}, "$lte": time.Time{}}}

	want := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	assert.Equal(t, want, revenuePipeline(filter))
}

func TestUniqueCustomersPipelineGroupsByName(t *testing.T) {
	pipeline := uniqueCustomersPipeline(bson.M{})
	require.Len(t, pipeline, 3)

	group := pipeline[1]
	assert.Equal(t, bson.D{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$customerName"}}}}, group)
	assert.Equal(t, bson.D{{Key: "$count", Value: "uniqueCustomers"}}, pipeline[2])
}

func TestCategoryPipeline(t *testing.T) {
	start := date(2024, time.March, 1, 0, 0, 0, 0)
	end := date(2024, time.March, 31, 23, 59, 59, 999)

	pipeline := categoryPipeline(start, end)
	require.Len(t, pipeline, 3)

	assert.Equal(t, bson.D{{Key: "$match", Value: bson.M{
		"orderDate": bson.M{"$gte": start, "$lte": end},
	}}}, pipeline[0])
	assert.Equal(t, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$productCategory"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}, pipeline[1])
	// most frequent category first
	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}}, pipeline[2])
}

// The trend groups on month-of-year only. Orders from January 2023 and
// January 2024 land in the same bucket; that collapse is the documented
// contract, so the pipeline must not grow a year key.
func TestTrendPipelineGroupsByMonthOnly(t *testing.T) {
	pipeline := trendPipeline()
	require.Len(t, pipeline, 2)

	assert.Equal(t, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{{Key: "$month", Value: "$orderDate"}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
	}}}, pipeline[0])
	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}}, pipeline[1])
}

func TestOrdersByCategoryRequiresKnownTimeframe(t *testing.T) {
	// Unlike the other analytics there is no "no filter" fallback here.
	for _, timeframe := range []string{"", "allTime", "thismonth"} {
		_, err := OrdersByCategory(timeframe)
		assert.ErrorIs(t, err, ErrInvalidTimeframe, "timeframe %q", timeframe)
	}
}
