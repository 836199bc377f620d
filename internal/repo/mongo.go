package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/flighthub/internal/models"
	"github.com/nikmy/flighthub/pkg/errors"
	"github.com/nikmy/flighthub/pkg/logger"
	"github.com/nikmy/flighthub/pkg/mongotools"
)

func NewMongoHistory(
	ctx context.Context,
	cfg MongoConfig,
	log logger.Logger,
) (*MongoHistory, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize != 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize != 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	_, err = collection.Indexes().CreateOne(ctx, historyIndex(cfg))
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapFail(err, "create index")
	}

	return newMongoHistory(collection, log), nil
}

func newMongoHistory(coll *mongo.Collection, log logger.Logger) *MongoHistory {
	return &MongoHistory{
		coll: coll,
		log:  log.With("mongo_history"),
	}
}

type MongoHistory struct {
	coll *mongo.Collection
	log  logger.Logger
}

func historyIndex(cfg MongoConfig) mongo.IndexModel {
	opts := options.Index().SetName("search_time")
	if cfg.TTL > 0 {
		opts.SetExpireAfterSeconds(int32(cfg.TTL.Seconds()))
	}

	return mongo.IndexModel{
		Keys:    bson.D{{Key: searchFieldAt, Value: -1}},
		Options: opts,
	}
}

func (m *MongoHistory) Add(ctx context.Context, s models.Search) error {
	_, err := m.coll.InsertOne(ctx, s)
	if err != nil {
		return errors.WrapFail(err, "insert search")
	}
	return nil
}

func (m *MongoHistory) Recent(ctx context.Context, limit int) ([]models.Search, error) {
	cur, err := m.coll.Find(
		ctx,
		mongotools.All(),
		options.Find().
			SetSort(mongotools.Newest(searchFieldAt)).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find recent searches")
	}

	searches, err := mongotools.FilterFunc[models.Search](ctx, cur, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "read recent searches")
	}
	return searches, nil
}

func (m *MongoHistory) Close(ctx context.Context) error {
	err := m.coll.Database().Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
