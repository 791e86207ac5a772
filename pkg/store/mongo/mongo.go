// Package mongo provides the MongoDB store driver. MongoDB is the one
// backend that serves all three cascade query kinds behind a single filter
// grammar: native MQL filters for the structured tier, an Atlas
// $vectorSearch index for the semantic tier, and $regex matching for the
// fuzzy tier.
package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"

	"github.com/tridentsearch/trident/pkg/store"
)

const (
	// DefaultDatabase is the database used when the config leaves it empty.
	DefaultDatabase = "trident"

	// DefaultCollection is the collection holding searchable records.
	DefaultCollection = "records"

	// VectorIndexName is the Atlas vector index over the embedding field.
	VectorIndexName = "vector_index"

	// dialTimeout bounds the initial connectivity check.
	dialTimeout = 10 * time.Second
)

// Driver implements store.Driver backed by a MongoDB collection.
type Driver struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *zap.Logger
}

// Config holds configuration for the MongoDB driver.
type Config struct {
	// URI is the MongoDB connection string.
	URI string

	// Database is the database name. Defaults to DefaultDatabase.
	Database string

	// Collection is the collection name. Defaults to DefaultCollection.
	Collection string
}

// recordDoc is the BSON document layout for a stored record.
type recordDoc struct {
	ID         bson.ObjectID  `bson:"_id,omitempty"`
	RecordType string         `bson:"recordType"`
	Attributes map[string]any `bson:"attributes"`
	Embedding  []float32      `bson:"embedding,omitempty"`
}

// NewDriver connects to MongoDB and verifies the target is reachable.
func NewDriver(ctx context.Context, c Config, logger *zap.Logger) (*Driver, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("%w: mongodb URI is required", store.ErrConnection)
	}

	database := c.Database
	if database == "" {
		database = DefaultDatabase
	}
	collection := c.Collection
	if collection == "" {
		collection = DefaultCollection
	}

	client, err := mongo.Connect(options.Client().ApplyURI(c.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrConnection, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", store.ErrConnection, err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", database),
		zap.String("collection", collection),
	)

	return &Driver{
		client: client,
		coll:   client.Database(database).Collection(collection),
		logger: logger,
	}, nil
}

// Find executes the structured filter as a native MQL query.
func (d *Driver) Find(ctx context.Context, filter map[string]any, limit int64) ([]store.Record, error) {
	cursor, err := d.coll.Find(ctx, bson.M(filter), options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return d.decodeAll(ctx, cursor)
}

// VectorSearch runs a $vectorSearch aggregation against the Atlas vector
// index. Similarity metric and index parameters are index-defined.
func (d *Driver) VectorSearch(ctx context.Context, embedding []float32, numCandidates, limit int64) ([]store.Record, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: VectorIndexName},
			{Key: "path", Value: "embedding"},
			{Key: "queryVector", Value: embedding},
			{Key: "numCandidates", Value: numCandidates},
			{Key: "limit", Value: limit},
		}}},
	}

	cursor, err := d.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return d.decodeAll(ctx, cursor)
}

// SubstringSearch builds a case-insensitive $or of $regex conditions over
// the given fields. The query text is escaped with regexp.QuoteMeta so user
// input is only ever matched literally, never interpreted as a pattern.
func (d *Driver) SubstringSearch(ctx context.Context, text string, fields []string, limit int64) ([]store.Record, error) {
	escaped := regexp.QuoteMeta(text)

	conditions := make(bson.A, len(fields))
	for i, field := range fields {
		conditions[i] = bson.M{field: bson.M{"$regex": escaped, "$options": "i"}}
	}

	cursor, err := d.coll.Find(ctx, bson.M{"$or": conditions}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return d.decodeAll(ctx, cursor)
}

// Categories returns the distinct recordType values.
func (d *Driver) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := d.coll.Distinct(ctx, "recordType", bson.D{}).Decode(&categories); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return categories, nil
}

// InsertMany stores the records, letting the server assign object IDs.
func (d *Driver) InsertMany(ctx context.Context, records []store.Record) error {
	docs := make([]any, len(records))
	for i, rec := range records {
		docs[i] = recordDoc{
			RecordType: rec.RecordType,
			Attributes: rec.Attributes,
			Embedding:  rec.Embedding,
		}
	}

	if _, err := d.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return nil
}

// DeleteAll removes every record in the collection.
func (d *Driver) DeleteAll(ctx context.Context) error {
	if _, err := d.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return nil
}

// EnsureSearchIndex re-establishes the text index backing substring search.
// Called after rebinding to a new target.
func (d *Driver) EnsureSearchIndex(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "attributes.name", Value: "text"},
			{Key: "attributes.department", Value: "text"},
			{Key: "attributes.city", Value: "text"},
			{Key: "attributes.bio", Value: "text"},
			{Key: "attributes.description", Value: "text"},
			{Key: "attributes.preference", Value: "text"},
		},
	}

	if _, err := d.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return nil
}

// Close disconnects the client.
func (d *Driver) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Driver) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]store.Record, error) {
	defer cursor.Close(ctx)

	var records []store.Record
	for cursor.Next(ctx) {
		var doc recordDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decoding record: %v", store.ErrQuery, err)
		}
		records = append(records, store.Record{
			ID:         doc.ID.Hex(),
			RecordType: doc.RecordType,
			Attributes: doc.Attributes,
			Embedding:  doc.Embedding,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrQuery, err)
	}
	return records, nil
}

var _ store.Driver = (*Driver)(nil)
