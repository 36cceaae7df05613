package history

import (
	"context"
	"errors"

	"github.com/medscribe/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "summaries"

// Store is the narrow slice of a document collection the history service
// uses: insert-one, find-one, find-many with sort/skip/limit, and a $set
// update. The production implementation wraps a Mongo collection; tests
// substitute an in-memory one.
type Store interface {
	InsertOne(ctx context.Context, rec *models.SummaryRecord) (primitive.ObjectID, error)
	FindOne(ctx context.Context, filter bson.M) (*models.SummaryRecord, error)
	FindMany(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.SummaryRecord, error)
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error)
}

type mongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the summaries collection of db.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{coll: db.Collection(collectionName)}
}

func (s *mongoStore) InsertOne(ctx context.Context, rec *models.SummaryRecord) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (s *mongoStore) FindOne(ctx context.Context, filter bson.M) (*models.SummaryRecord, error) {
	var rec models.SummaryRecord
	err := s.coll.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *mongoStore) FindMany(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]models.SummaryRecord, error) {
	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(limit)
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.SummaryRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *mongoStore) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
