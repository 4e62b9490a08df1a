package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"ClassLedger/entity"
	"ClassLedger/internal/config"
	"ClassLedger/internal/lib/sl"
)

const (
	studentsCollection   = "students"
	attendanceCollection = "attendance"
	scheduleCollection   = "schedule"
	examsCollection      = "exams"
	eventsCollection     = "events"
	countersCollection   = "counters"
	apiUsersCollection   = "api-users"
)

type MongoDB struct {
	ctx           context.Context
	clientOptions *options.ClientOptions
	database      string
	log           *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:           context.Background(),
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
		log:           logger.With(sl.Module("mongodb")),
	}
	if err := client.EnsureIndexes(); err != nil {
		return nil, err
	}
	return client, nil
}

func (m *MongoDB) connect() (*mongo.Client, error) {
	connection, err := mongo.Connect(m.ctx, m.clientOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return connection, nil
}

func (m *MongoDB) disconnect(connection *mongo.Client) {
	_ = connection.Disconnect(m.ctx)
}

// storageError classifies driver failures the caller can act on: an expired
// caller deadline becomes ErrTimeout, an unreachable store (server selection
// or network failure) becomes the retryable ErrStorageUnavailable. Anything
// else returns nil for the call site to wrap.
func (m *MongoDB) storageError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return entity.ErrTimeout
	}
	var selErr topology.ServerSelectionError
	if errors.As(err, &selErr) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}
	return nil
}

// findError maps the driver's no-documents marker onto the shared NotFound
// sentinel so services never see driver internals.
func (m *MongoDB) findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity.ErrNotFound
	}
	if mapped := m.storageError(err); mapped != nil {
		return mapped
	}
	return fmt.Errorf("mongodb find error: %w", err)
}

// EnsureIndexes creates the indexes the engine's correctness depends on.
// The compound unique index on (student_id, date) is the storage-layer
// guarantee that at most one attendance record exists per student per day,
// regardless of how many writers race on the key.
func (m *MongoDB) EnsureIndexes() error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	attendance := connection.Database(m.database).Collection(attendanceCollection)
	unique := mongo.IndexModel{
		Keys: bson.D{
			{Key: "student_id", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_student_day"),
	}
	if _, err = attendance.Indexes().CreateOne(m.ctx, unique); err != nil {
		return fmt.Errorf("mongodb create attendance index: %w", err)
	}

	schedule := connection.Database(m.database).Collection(scheduleCollection)
	byDate := mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	}
	if _, err = schedule.Indexes().CreateOne(m.ctx, byDate); err != nil {
		return fmt.Errorf("mongodb create schedule index: %w", err)
	}

	return nil
}
