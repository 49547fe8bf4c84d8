package eventtype

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoRepository provides MongoDB access to event type data
type mongoRepository struct {
	collection *mongo.Collection
}

// NewRepository creates a new event type repository with instrumentation
func NewRepository(db *mongo.Database) Repository {
	return newInstrumentedRepository(&mongoRepository{
		collection: db.Collection("event_types"),
	})
}

// Save upserts an event type by ID, assigning a fresh ID on insert
func (r *mongoRepository) Save(ctx context.Context, et EventType) (EventType, error) {
	if et.ID == "" {
		et.ID = uuid.NewString()
		_, err := r.collection.InsertOne(ctx, et)
		return et, err
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": et.ID}, et, opts)
	return et, err
}

// FindByID finds an event type by ID
func (r *mongoRepository) FindByID(ctx context.Context, id string) (*EventType, error) {
	var et EventType
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&et)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &et, nil
}

// DeleteByID deletes an event type; missing IDs are not an error
func (r *mongoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// FindAll returns one page of event types via an aggregation pipeline:
// sort, then skip page*size, then limit size
func (r *mongoRepository) FindAll(ctx context.Context, req PageRequest) ([]EventType, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: sortDoc(req.Sort, bson.D{{Key: "createdAt", Value: -1}})}},
		bson.D{{Key: "$skip", Value: req.Skip()}},
		bson.D{{Key: "$limit", Value: req.Limit()}},
	}

	return r.aggregate(ctx, pipeline)
}

// Count returns the total number of event types
func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Search returns one page of text-index matches, ordered by the store's
// relevance score unless the request overrides the sort
func (r *mongoRepository) Search(ctx context.Context, query string, req PageRequest) ([]EventType, error) {
	scoreSort := bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: textFilter(query)}},
		bson.D{{Key: "$sort", Value: sortDoc(req.Sort, scoreSort)}},
		bson.D{{Key: "$skip", Value: req.Skip()}},
		bson.D{{Key: "$limit", Value: req.Limit()}},
	}

	return r.aggregate(ctx, pipeline)
}

// CountByQuery counts all text-index matches, ignoring pagination bounds
func (r *mongoRepository) CountByQuery(ctx context.Context, query string) (int64, error) {
	return r.collection.CountDocuments(ctx, textFilter(query))
}

func (r *mongoRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]EventType, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []EventType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func textFilter(query string) bson.M {
	return bson.M{"$text": bson.M{"$search": query}}
}

// sortDoc converts the request sort to a Mongo sort document, falling back
// to the given default when no sort was requested
func sortDoc(fields []SortField, fallback bson.D) bson.D {
	if len(fields) == 0 {
		return fallback
	}

	doc := make(bson.D, 0, len(fields))
	for _, f := range fields {
		direction := 1
		if f.Descending {
			direction = -1
		}
		doc = append(doc, bson.E{Key: f.Field, Value: direction})
	}
	return doc
}
