package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountClassesInWindow counts scheduled classes with date in [start, end).
func (m *MongoDB) CountClassesInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(scheduleCollection)

	filter := bson.D{
		{Key: "date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lt", Value: end}}},
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, m.findError(err)
	}

	return count, nil
}

// SumPaidFeesInWindow unwinds every student's embedded fee lines, keeps the
// paid ones whose payment date falls in [start, end), and sums their amounts
// in minor units. The explicit unwind-match-group pipeline makes the
// one-row-per-line-item semantics visible rather than hidden in the store.
// No matching lines yields a legitimate zero, not an error.
func (m *MongoDB) SumPaidFeesInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(studentsCollection)

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$fees"}},
		{{Key: "$match", Value: bson.D{
			{Key: "fees.status", Value: "Paid"},
			{Key: "fees.payment_date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lt", Value: end}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$fees.amount"}}},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("mongodb aggregate fees: %w", err)
	}
	defer cursor.Close(ctx)

	var totals []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &totals); err != nil {
		return 0, fmt.Errorf("mongodb decode fee total: %w", err)
	}
	if len(totals) == 0 {
		return 0, nil
	}

	return totals[0].Total, nil
}
