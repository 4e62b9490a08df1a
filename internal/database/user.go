package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"ClassLedger/entity"
)

// GetUserByToken resolves an API token to the caller identity behind it.
func (m *MongoDB) GetUserByToken(ctx context.Context, token string) (*entity.UserAuth, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(apiUsersCollection)

	filter := bson.D{{Key: "token", Value: token}}

	var user entity.UserAuth
	err = collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		return nil, m.findError(err)
	}

	return &user, nil
}
