package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userregistry/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	defaultMongoDatabase = "registration"
	mongoCollection      = "users"
)

// MongoRepositoryManager vends a MongoDB-backed repository. The database is
// taken from the DSN path.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
}

func NewMongoRepositoryManager(ctx context.Context, dsn string) (*MongoRepositoryManager, error) {
	cs, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid mongo DSN: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return newMongoRepositoryManager(client, mongoDatabase(cs)), nil
}

func newMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	coll := client.Database(database).Collection(mongoCollection)
	return &MongoRepositoryManager{client: client, users: users.NewMongoRepository(coll)}
}

func mongoDatabase(cs *connstring.ConnString) string {
	if cs.Database != "" {
		return cs.Database
	}
	return defaultMongoDatabase
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

// WithinTx runs fn directly. Multi-document transactions need a replica
// set; the unique indexes reject whatever slips past the pre-insert checks.
func (m *MongoRepositoryManager) WithinTx(ctx context.Context, fn UnitOfWork) error {
	return fn(ctx, m.users)
}

func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := m.users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
