package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ClassLedger/entity"
)

// NextSequence atomically increments and returns the per-cohort enrollment
// counter. Two concurrent enrollments in the same cohort always draw
// distinct sequence numbers.
func (m *MongoDB) NextSequence(ctx context.Context, cohort string) (int, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(countersCollection)

	filter := bson.D{{Key: "_id", Value: "enroll:" + cohort}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: 1}}}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	err = collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return 0, mapped
		}
		return 0, fmt.Errorf("mongodb next sequence: %w", err)
	}

	return counter.Seq, nil
}

// InsertStudent persists a freshly enrolled student. The generated _id is
// the uniqueness anchor; a duplicate enrollment surfaces ErrDuplicateKey.
func (m *MongoDB) InsertStudent(ctx context.Context, student *entity.Student) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(studentsCollection)

	_, err = collection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return entity.ErrDuplicateKey
		}
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb insert student: %w", err)
	}
	return nil
}

// GetStudent retrieves a student by identifier.
func (m *MongoDB) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(studentsCollection)

	filter := bson.D{{Key: "_id", Value: id}}

	var student entity.Student
	err = collection.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		return nil, m.findError(err)
	}

	return &student, nil
}

// CountActiveStudents returns the number of active students.
func (m *MongoDB) CountActiveStudents(ctx context.Context) (int64, error) {
	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(studentsCollection)

	filter := bson.D{{Key: "active", Value: true}}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, m.findError(err)
	}

	return count, nil
}

// AddFeeItem appends one fee line to a student's embedded fee list.
func (m *MongoDB) AddFeeItem(ctx context.Context, studentID string, fee entity.FeeItem) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(studentsCollection)

	filter := bson.D{{Key: "_id", Value: studentID}}
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "fees", Value: fee}}}}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb add fee item: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
