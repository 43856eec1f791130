package repo

import (
	"testing"
	"time"

	dmn "github.com/beka-birhanu/amazeing/domain"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMazeDocument(t *testing.T) {
	record := &dmn.MazeRecord{
		ID: uuid.New(),
		Spec: dmn.Spec{
			Width:      5,
			Height:     5,
			Exit:       maze.Cell{X: 4, Y: 4},
			Perfect:    true,
			Seed:       1,
			LoopFactor: 0.15,
		},
		Output:    "b9517\nac3c3\nad692\na93aa\nc6c6e\n\n0,0\n4,4\nSSSSENESENNESS\n",
		CreatedAt: time.Date(2025, 2, 8, 10, 0, 0, 0, time.UTC),
	}

	t.Run("Round trip through bson", func(t *testing.T) {
		raw, err := bson.Marshal(toDocument(record))
		require.NoError(t, err)

		var doc mazeDocument
		require.NoError(t, bson.Unmarshal(raw, &doc))
		got, err := doc.record()
		require.NoError(t, err)

		assert.Equal(t, record.ID, got.ID)
		assert.Equal(t, record.Spec, got.Spec)
		assert.Equal(t, record.Output, got.Output)
		assert.True(t, record.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("Stored field names", func(t *testing.T) {
		raw, err := bson.Marshal(toDocument(record))
		require.NoError(t, err)

		var m bson.M
		require.NoError(t, bson.Unmarshal(raw, &m))
		assert.Equal(t, record.ID.String(), m["_id"])
		spec, ok := m["spec"].(bson.M)
		require.True(t, ok)
		assert.EqualValues(t, 5, spec["width"])
		assert.Contains(t, spec, "loopFactor")
	})

	t.Run("Invalid stored id", func(t *testing.T) {
		_, err := mazeDocument{ID: "not-a-uuid"}.record()
		assert.Error(t, err)
	})
}
