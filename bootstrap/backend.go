package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/api/option"

	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/store"
)

// NewStore connects the remote document store selected by store.driver.
// The returned func releases the connection.
func NewStore(ctx context.Context) (store.Store, func(), error) {
	driver := viper.GetString("store.driver")

	switch driver {
	case "mongo":
		connURI := viper.GetString("mongo.conn")
		database := viper.GetString("mongo.database")

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx, nil); err != nil {
			client.Disconnect(context.Background())
			return nil, nil, err
		}

		schema.NewMongoDBIndexer(connURI, database).IndexAll()

		return store.NewMongoStore(client, database), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithField("prefix", "mongo").WithError(err).Error("disconnect")
			}
		}, nil

	case "firestore":
		var opts []option.ClientOption
		if credentials := viper.GetString("firestore.credentials"); credentials != "" {
			opts = append(opts, option.WithCredentialsFile(credentials))
		}

		client, err := firestore.NewClient(ctx, viper.GetString("firestore.project"), opts...)
		if err != nil {
			return nil, nil, err
		}

		return store.NewFirestoreStore(client), func() {
			if err := client.Close(); err != nil {
				log.WithField("prefix", "firestore").WithError(err).Error("close client")
			}
		}, nil

	case "memory":
		return store.NewMemoryStore(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", driver)
}

// NewKeyValueStore opens the local cache storage selected by cache.driver.
func NewKeyValueStore(ctx context.Context) (cache.KeyValueStore, func(), error) {
	driver := viper.GetString("cache.driver")

	switch driver {
	case "sqlite":
		s, err := cache.NewSQLiteStore(viper.GetString("cache.path"))
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.WithField("prefix", "cache").WithError(err).Error("close sqlite")
			}
		}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, err
		}
		return cache.NewRedisStore(client, viper.GetString("redis.prefix")), func() {
			if err := client.Close(); err != nil {
				log.WithField("prefix", "cache").WithError(err).Error("close redis")
			}
		}, nil

	case "memory":
		return cache.NewMemoryStore(), func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown cache driver %q", driver)
}
