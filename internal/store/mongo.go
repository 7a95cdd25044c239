package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Calvin-222/COMP-4117-back-end/internal/metrics"
	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
)

const (
	messagesCollection = "chatHistory"
	usersCollection    = "user"
)

// MongoStore handles MongoDB operations. The driver's client pools
// connections, so one store serves all requests for the process
// lifetime and is released once on shutdown.
type MongoStore struct {
	client   *mongo.Client
	messages *mongo.Collection
	users    *mongo.Collection
}

// NewMongoStore connects to MongoDB and selects the named database.
func NewMongoStore(ctx context.Context, mongoURL, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		messages: db.Collection(messagesCollection),
		users:    db.Collection(usersCollection),
	}, nil
}

// Close releases the client and its connection pool.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping checks the database connection.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// observe records operation latency on the Mongo histogram.
func observe(start time.Time) {
	metrics.MongoLatency.Observe(time.Since(start).Seconds())
}

// ListMessages retrieves the full chat history.
func (s *MongoStore) ListMessages(ctx context.Context) ([]models.ChatMessage, error) {
	defer observe(time.Now())

	cur, err := s.messages.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var msgs []models.ChatMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// MessagesForRoom retrieves a room's messages ordered by timestamp
// ascending. The phone number is matched numerically, the same way the
// webhook importer writes it.
func (s *MongoStore) MessagesForRoom(ctx context.Context, phoneNo int64) ([]models.ChatMessage, error) {
	defer observe(time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "MESSAGE_DATETIME", Value: 1}})
	cur, err := s.messages.Find(ctx, bson.D{{Key: "PHONE_NO", Value: phoneNo}}, opts)
	if err != nil {
		return nil, err
	}

	var msgs []models.ChatMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// InsertMessage appends a message record and returns the store-assigned ID.
func (s *MongoStore) InsertMessage(ctx context.Context, msg *models.ChatMessage) (primitive.ObjectID, error) {
	defer observe(time.Now())

	res, err := s.messages.InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store: unexpected inserted ID type")
	}
	return id, nil
}

// DeleteRoomMessages removes every message matching the phone number and
// returns the count removed. Zero matches is not an error.
func (s *MongoStore) DeleteRoomMessages(ctx context.Context, phoneNo int64) (int64, error) {
	defer observe(time.Now())

	res, err := s.messages.DeleteMany(ctx, bson.D{{Key: "PHONE_NO", Value: phoneNo}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListUsers retrieves the full user directory.
func (s *MongoStore) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	defer observe(time.Now())

	cur, err := s.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var users []models.UserProfile
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindUserByPhone looks up a profile by phone number, first as a string
// and then numerically (imported rows store the number either way).
// Returns nil without error when no profile matches.
func (s *MongoStore) FindUserByPhone(ctx context.Context, phoneNo string) (*models.UserProfile, error) {
	defer observe(time.Now())

	user, err := s.findUser(ctx, bson.D{{Key: "Phone Number", Value: phoneNo}})
	if err != nil || user != nil {
		return user, err
	}

	if n, convErr := strconv.ParseInt(phoneNo, 10, 64); convErr == nil {
		return s.findUser(ctx, bson.D{{Key: "Phone Number", Value: n}})
	}
	return nil, nil
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.D) (*models.UserProfile, error) {
	var user models.UserProfile
	err := s.users.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// InsertUser creates a profile document and returns the store-assigned ID.
func (s *MongoStore) InsertUser(ctx context.Context, doc bson.D) (primitive.ObjectID, error) {
	defer observe(time.Now())

	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store: unexpected inserted ID type")
	}
	return id, nil
}

// UpdateUserByPhone applies a partial update to the profile with the
// given phone number (string or numeric form) and returns the matched
// count. Zero means no such profile exists.
func (s *MongoStore) UpdateUserByPhone(ctx context.Context, phoneNo string, fields bson.D) (int64, error) {
	defer observe(time.Now())

	or := bson.A{bson.D{{Key: "Phone Number", Value: phoneNo}}}
	if n, err := strconv.ParseInt(phoneNo, 10, 64); err == nil {
		or = append(or, bson.D{{Key: "Phone Number", Value: n}})
	}

	res, err := s.users.UpdateOne(ctx,
		bson.D{{Key: "$or", Value: or}},
		bson.D{{Key: "$set", Value: fields}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
