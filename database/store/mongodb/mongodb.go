package mongodb

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store keeps reservation rows in an append-only Mongo collection while
// honouring the same row contract as the Sheets backend. Rows are never
// updated or deleted here; a backend that wants stronger admission guarantees
// could grow a conditional append behind the same interface.
type Store struct {
	coll *mongo.Collection
}

type rowDoc struct {
	Sheet      string    `bson:"sheet"`
	Cells      []string  `bson:"cells"`
	AppendedAt time.Time `bson:"appendedAt"`
}

func New(client *mongo.Client, dbName string) *Store {
	return &Store{coll: client.Database(dbName).Collection("reservation_rows")}
}

// sheetName extracts the table namespace from an A1 range spec; the cell
// bounds mean nothing to Mongo.
func sheetName(rangeSpec string) string {
	if i := strings.Index(rangeSpec, "!"); i >= 0 {
		return rangeSpec[:i]
	}
	return rangeSpec
}

func (s *Store) ReadRange(ctx context.Context, rangeSpec string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"sheet": sheetName(rangeSpec)}
	opts := options.Find().SetSort(bson.D{{Key: "appendedAt", Value: 1}})
	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []rowDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, doc.Cells)
	}
	return rows, nil
}

func (s *Store) AppendRow(ctx context.Context, rangeSpec string, row []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.coll.InsertOne(ctx, rowDoc{
		Sheet:      sheetName(rangeSpec),
		Cells:      row,
		AppendedAt: time.Now().UTC(),
	})
	return err
}
