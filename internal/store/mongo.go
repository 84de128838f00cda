package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AshwinnParthiban/server/internal/models"
)

// MongoUserStore persists user records in a MongoDB collection. Account
// fields live in a personal_info subdocument and the ObjectID hex string
// is the public identifier.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique indexes the store relies on for
// conflict detection. The store is the authority on uniqueness; any
// pre-checks callers perform are advisory.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "personal_info.email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "personal_info.username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("mongo create indexes: %w", err)
	}
	return nil
}

type personalInfo struct {
	Fullname   string `bson:"fullname"`
	Email      string `bson:"email"`
	Password   string `bson:"password"`
	Username   string `bson:"username"`
	ProfileImg string `bson:"profile_img,omitempty"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	PersonalInfo personalInfo       `bson:"personal_info"`
	JoinedAt     time.Time          `bson:"joinedAt"`
}

func (d *userDoc) toUser() *models.User {
	return &models.User{
		ID:         d.ID.Hex(),
		Fullname:   d.PersonalInfo.Fullname,
		Email:      d.PersonalInfo.Email,
		Username:   d.PersonalInfo.Username,
		Password:   d.PersonalInfo.Password,
		ProfileImg: d.PersonalInfo.ProfileImg,
		CreatedAt:  d.JoinedAt,
	}
}

// CreateUser inserts the user and returns it with the store-assigned ID.
// A unique-index violation on any field yields ErrDuplicate.
func (s *MongoUserStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	doc := userDoc{
		PersonalInfo: personalInfo{
			Fullname:   u.Fullname,
			Email:      u.Email,
			Password:   u.Password,
			Username:   u.Username,
			ProfileImg: u.ProfileImg,
		},
		JoinedAt: time.Now(),
	}

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("mongo insert: %w", err)
	}

	out := *u
	out.ID = res.InsertedID.(primitive.ObjectID).Hex()
	out.CreatedAt = doc.JoinedAt
	return &out, nil
}

func (s *MongoUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := s.col.FindOne(ctx, bson.M{"personal_info.email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return doc.toUser(), nil
}

func (s *MongoUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := s.col.FindOne(ctx, bson.M{"personal_info.username": username}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mongo find: %w", err)
	}
	return true, nil
}
