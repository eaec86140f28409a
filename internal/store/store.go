// Package store keeps a history of generated scripts in MongoDB. Script text
// is stored zstd-compressed.
package store

import (
	"context"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "conversions"

// Conversion is one generated script.
type Conversion struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Base        string             `bson:"base" json:"base"`
	Transparent bool               `bson:"transparent" json:"transparent"`
	Ops         int                `bson:"ops" json:"ops"`
	Key         string             `bson:"key,omitempty" json:"key,omitempty"`
	UUID        string             `bson:"uuid,omitempty" json:"uuid,omitempty"`
	Size        int                `bson:"size" json:"size"`
	Script      []byte             `bson:"script" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Recorder saves conversions. Nop is used when no database is configured.
type Recorder interface {
	Record(ctx context.Context, c *Conversion, script string) error
	Recent(ctx context.Context, limit int64) ([]Conversion, error)
	Close(ctx context.Context) error
}

type Nop struct{}

func (Nop) Record(context.Context, *Conversion, string) error    { return nil }
func (Nop) Recent(context.Context, int64) ([]Conversion, error) { return nil, nil }
func (Nop) Close(context.Context) error                         { return nil }

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	decoder, _ = zstd.NewReader(nil)
)

// Compress returns the zstd frame for script.
func Compress(script string) []byte {
	return encoder.EncodeAll([]byte(script), nil)
}

func Decompress(data []byte) (string, error) {
	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return "", errors.Wrap(err, "decompressing script")
	}
	return string(out), nil
}

// ScriptText returns the uncompressed script of c.
func (c *Conversion) ScriptText() (string, error) {
	return Decompress(c.Script)
}

type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open connects to uri and checks the connection.
func Open(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connecting to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "pinging mongo")
	}
	return &Mongo{client: client, coll: client.Database(database).Collection(collectionName)}, nil
}

func (m *Mongo) Record(ctx context.Context, c *Conversion, script string) error {
	c.Script = Compress(script)
	c.Size = len(script)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	res, err := m.coll.InsertOne(ctx, c)
	if err != nil {
		return errors.Wrap(err, "saving conversion")
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

// Recent returns the newest conversions first.
func (m *Mongo) Recent(ctx context.Context, limit int64) ([]Conversion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cur, err := m.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "querying conversions")
	}
	var out []Conversion
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "reading conversions")
	}
	return out, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return errors.WithStack(m.client.Disconnect(ctx))
}
