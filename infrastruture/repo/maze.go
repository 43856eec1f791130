package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// mazeDocument is the stored shape of a maze record. IDs are kept as strings so that
// records stay readable from the mongo shell.
type mazeDocument struct {
	ID        string    `bson:"_id"`
	Spec      dmn.Spec  `bson:"spec"`
	Output    string    `bson:"output"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toDocument(record *dmn.MazeRecord) mazeDocument {
	return mazeDocument{
		ID:        record.ID.String(),
		Spec:      record.Spec,
		Output:    record.Output,
		CreatedAt: record.CreatedAt,
	}
}

func (d mazeDocument) record() (*dmn.MazeRecord, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("stored maze has invalid id %q: %w", d.ID, err)
	}
	return &dmn.MazeRecord{
		ID:        id,
		Spec:      d.Spec,
		Output:    d.Output,
		CreatedAt: d.CreatedAt,
	}, nil
}

// Save inserts or updates a maze record in the repository.
func (m *MazeRepo) Save(record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	doc := toDocument(record)
	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"spec":      doc.Spec,
			"output":    doc.Output,
			"createdAt": doc.CreatedAt,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a maze record by its ID.
// Returns i.ErrNotFound if there is none.
func (m *MazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id.String()}
	var doc mazeDocument
	if err := m.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("maze %s: %w", id, i.ErrNotFound)
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return doc.record()
}
