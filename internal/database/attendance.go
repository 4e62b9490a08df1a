package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ClassLedger/entity"
)

// InsertAttendance writes one day record. The unique index on
// (student_id, date) makes the check-and-insert a single atomic operation:
// of two racing writers exactly one insert succeeds and the other surfaces
// ErrDuplicateKey.
func (m *MongoDB) InsertAttendance(ctx context.Context, rec *entity.Attendance) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(attendanceCollection)

	_, err = collection.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateKey
		}
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb insert attendance: %w", err)
	}
	return nil
}

// GetAttendance looks up the record for one student on one day.
// date must already be normalized to midnight.
func (m *MongoDB) GetAttendance(ctx context.Context, studentID string, date time.Time) (*entity.Attendance, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(attendanceCollection)

	filter := bson.D{{Key: "student_id", Value: studentID}, {Key: "date", Value: date}}

	var rec entity.Attendance
	err = collection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		return nil, m.findError(err)
	}

	return &rec, nil
}

// ListAttendanceInRange returns records with date in [start, end), newest
// last. studentID narrows the scan to one student when non-empty.
func (m *MongoDB) ListAttendanceInRange(ctx context.Context, studentID string, start, end time.Time) ([]entity.Attendance, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(attendanceCollection)

	filter := bson.D{
		{Key: "date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lt", Value: end}}},
	}
	if studentID != "" {
		filter = append(filter, bson.E{Key: "student_id", Value: studentID})
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, m.findError(err)
	}
	defer cursor.Close(ctx)

	var records []entity.Attendance
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("mongodb decode attendance: %w", err)
	}

	return records, nil
}

// UpdateAttendanceStatus is the explicit correction path for an existing day
// record. It never creates a record; a miss surfaces ErrNotFound.
func (m *MongoDB) UpdateAttendanceStatus(ctx context.Context, studentID string, date time.Time, status entity.AttendanceStatus, notes string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(attendanceCollection)

	filter := bson.D{{Key: "student_id", Value: studentID}, {Key: "date", Value: date}}
	set := bson.D{{Key: "status", Value: status}}
	if notes != "" {
		set = append(set, bson.E{Key: "notes", Value: notes})
	}
	update := bson.D{{Key: "$set", Value: set}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb update attendance: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
