package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoEmailIndex  = "email_unique"
	mongoMobileIndex = "mobile_unique"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Mobile    string             `bson:"mobile"`
	Email     string             `bson:"email"`
	Street    string             `bson:"street"`
	City      string             `bson:"city"`
	State     string             `bson:"state"`
	Country   string             `bson:"country"`
	LoginID   string             `bson:"loginId"`
	Password  []byte             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Mobile:       d.Mobile,
		Email:        d.Email,
		Street:       d.Street,
		City:         d.City,
		State:        d.State,
		Country:      d.Country,
		LoginID:      d.LoginID,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type MongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll, now: time.Now}
}

// EnsureIndexes creates the unique indexes on email and mobile. It is
// idempotent.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName(mongoEmailIndex)},
		{Keys: bson.D{{Key: "mobile", Value: 1}}, Options: options.Index().SetUnique(true).SetName(mongoMobileIndex)},
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	// BSON dates carry millisecond precision.
	ts := r.now().UTC().Truncate(time.Millisecond)

	doc := userDocument{
		ID:        primitive.NewObjectID(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Mobile:    user.Mobile,
		Email:     user.Email,
		Street:    user.Street,
		City:      user.City,
		State:     user.State,
		Country:   user.Country,
		LoginID:   user.LoginID,
		Password:  user.PasswordHash,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if dup := mongoDuplicate(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID = doc.ID.Hex()
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return user, nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"mobile": mobile})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]*models.User, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toModel())
	}
	return result, nil
}

// mongoDuplicate maps a duplicate key write error to the sentinel for the
// unique index it hit. Only the index name is trusted: the rest of the
// message carries the namespace and the duplicated value.
func mongoDuplicate(err error) error {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return nil
	}
	for _, e := range we.WriteErrors {
		if !mongo.IsDuplicateKeyError(e) {
			continue
		}
		switch duplicateIndex(e.Message) {
		case mongoEmailIndex:
			return common.ErrorDuplicateEmail
		case mongoMobileIndex:
			return common.ErrorDuplicateMobile
		}
	}
	return nil
}

// duplicateIndex extracts "<name>" from "... index: <name> dup key: ...".
// Database names cannot contain spaces, so the first " index: " token
// follows the namespace.
func duplicateIndex(msg string) string {
	const token = " index: "
	i := strings.Index(msg, token)
	if i < 0 {
		return ""
	}
	name := msg[i+len(token):]
	if j := strings.IndexByte(name, ' '); j >= 0 {
		name = name[:j]
	}
	return name
}
