package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"ClassLedger/entity"
)

func referentialCollection(kind entity.ReferentialKind) (string, error) {
	switch kind {
	case entity.KindSchedule:
		return scheduleCollection, nil
	case entity.KindExam:
		return examsCollection, nil
	case entity.KindEvent:
		return eventsCollection, nil
	}
	return "", fmt.Errorf("%w: %q", entity.ErrInvalidKind, kind)
}

// DeleteReferential permanently removes one schedule item, exam or event.
// The delete is atomic per record; a zero affected count surfaces
// ErrNotFound so the gateway can tell "already gone" from success.
func (m *MongoDB) DeleteReferential(ctx context.Context, kind entity.ReferentialKind, id string) error {
	name, err := referentialCollection(kind)
	if err != nil {
		return err
	}

	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(name)

	result, err := collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb delete %s: %w", kind, err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// GetReferential resolves a referential record by id into its raw document.
func (m *MongoDB) GetReferential(ctx context.Context, kind entity.ReferentialKind, id string) (bson.M, error) {
	name, err := referentialCollection(kind)
	if err != nil {
		return nil, err
	}

	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(name)

	var doc bson.M
	err = collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err != nil {
		return nil, m.findError(err)
	}

	return doc, nil
}

// InsertScheduledClass persists one timetable occurrence.
func (m *MongoDB) InsertScheduledClass(ctx context.Context, class *entity.ScheduledClass) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(scheduleCollection)

	if _, err = collection.InsertOne(ctx, class); err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb insert scheduled class: %w", err)
	}
	return nil
}

// InsertExam persists one exam record.
func (m *MongoDB) InsertExam(ctx context.Context, exam *entity.Exam) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(examsCollection)

	if _, err = collection.InsertOne(ctx, exam); err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb insert exam: %w", err)
	}
	return nil
}

// InsertEvent persists one event record.
func (m *MongoDB) InsertEvent(ctx context.Context, event *entity.Event) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(eventsCollection)

	if _, err = collection.InsertOne(ctx, event); err != nil {
		if mapped := m.storageError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("mongodb insert event: %w", err)
	}
	return nil
}
