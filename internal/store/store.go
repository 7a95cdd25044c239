package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Calvin-222/COMP-4117-back-end/internal/models"
)

// DataStore defines the interface for persistent storage of chat history
// and user profiles. MongoStore implements it; handler tests stub it.
type DataStore interface {
	// Connection management
	Close(ctx context.Context) error
	Ping(ctx context.Context) error

	// Chat history operations
	ListMessages(ctx context.Context) ([]models.ChatMessage, error)
	MessagesForRoom(ctx context.Context, phoneNo int64) ([]models.ChatMessage, error)
	InsertMessage(ctx context.Context, msg *models.ChatMessage) (primitive.ObjectID, error)
	DeleteRoomMessages(ctx context.Context, phoneNo int64) (int64, error)

	// User profile operations
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	FindUserByPhone(ctx context.Context, phoneNo string) (*models.UserProfile, error)
	InsertUser(ctx context.Context, doc bson.D) (primitive.ObjectID, error)
	UpdateUserByPhone(ctx context.Context, phoneNo string, fields bson.D) (int64, error)
}
