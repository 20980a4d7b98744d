// Package store provides the document store used by every repository.
// A single Store holds the Mongo database handle; it is constructed once
// in the composition root and passed by reference into the modules.
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

	"carecamp_backend/platform/apperr"
)

// Collection names.
const (
	CollUsers         = "users"
	CollCamps         = "camps"
	CollRegistrations = "registered-camps"
	CollPayments      = "payments"
	CollFeedbacks     = "feedbacks"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// FindOptions controls sorting and result-count limiting for FindMany.
type FindOptions struct {
	SortField string
	SortDesc  bool
	Limit     int64
}

// Store wraps the Mongo client and database handle. Safe for concurrent
// use by many in-flight requests.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to Mongo, pings it, and returns a Store over the named
// database.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies the store is reachable. Used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// ParseID converts a hex string into an ObjectID, returning a typed bad
// request error for malformed identifiers.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("invalid id")
	}
	return id, nil
}

// IsDuplicateKey reports whether err is a unique-index violation, such
// as two concurrent inserts racing on the same key.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// FindMany decodes all documents matching filter into out, which must be
// a pointer to a slice.
func (s *Store) FindMany(ctx context.Context, coll string, filter bson.M, opts FindOptions, out interface{}) error {
	findOpts := options.Find()
	if opts.SortField != "" {
		direction := 1
		if opts.SortDesc {
			direction = -1
		}
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: direction}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cur, err := s.db.Collection(coll).Find(ctx, filter, findOpts)
	if err != nil {
		return fmt.Errorf("find %s: %w", coll, err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", coll, err)
	}
	return nil
}

// FindOne decodes a single document matching filter into out.
// Returns ErrNotFound when no document matches.
func (s *Store) FindOne(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	err := s.db.Collection(coll).FindOne(ctx, filter).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("find one %s: %w", coll, err)
	}
	return nil
}

// InsertOne inserts a document and returns its generated id.
func (s *Store) InsertOne(ctx context.Context, coll string, doc interface{}) (primitive.ObjectID, error) {
	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", coll, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert %s: unexpected id type", coll)
	}
	return id, nil
}

// UpdateOne applies a partial $set update to the first document matching
// filter and returns the modified count. Named fields only, never a whole
// document replacement.
func (s *Store) UpdateOne(ctx context.Context, coll string, filter, set bson.M) (int64, error) {
	res, err := s.db.Collection(coll).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", coll, err)
	}
	return res.ModifiedCount, nil
}

// UpsertOne applies a $set update, inserting the document if no match
// exists. setOnInsert names fields written only on first insert.
func (s *Store) UpsertOne(ctx context.Context, coll string, filter, set, setOnInsert bson.M) error {
	update := bson.M{"$set": set}
	if len(setOnInsert) > 0 {
		update["$setOnInsert"] = setOnInsert
	}
	_, err := s.db.Collection(coll).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", coll, err)
	}
	return nil
}

// DeleteOne removes the first document matching filter and returns the
// deleted count.
func (s *Store) DeleteOne(ctx context.Context, coll string, filter bson.M) (int64, error) {
	res, err := s.db.Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", coll, err)
	}
	return res.DeletedCount, nil
}

// IncrementField atomically increments a numeric field on the first
// document matching filter and returns the modified count.
func (s *Store) IncrementField(ctx context.Context, coll string, filter bson.M, field string, delta int64) (int64, error) {
	res, err := s.db.Collection(coll).UpdateOne(ctx, filter, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return 0, fmt.Errorf("increment %s.%s: %w", coll, field, err)
	}
	return res.ModifiedCount, nil
}

// EnsureIndexes creates the indexes the collections rely on. Called once
// at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(CollUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	_, err = s.db.Collection(CollFeedbacks).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "campId", Value: 1}, {Key: "participantEmail", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("feedbacks_camp_participant_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("feedbacks indexes: %w", err)
	}

	_, err = s.db.Collection(CollRegistrations).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participantEmail", Value: 1}},
			Options: options.Index().SetName("registrations_participant_email"),
		},
		{
			Keys:    bson.D{{Key: "campId", Value: 1}},
			Options: options.Index().SetName("registrations_camp_id"),
		},
	})
	if err != nil {
		return fmt.Errorf("registrations indexes: %w", err)
	}

	_, err = s.db.Collection(CollPayments).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "participantEmail", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("payments_participant_created"),
		},
	})
	if err != nil {
		return fmt.Errorf("payments indexes: %w", err)
	}

	return nil
}
