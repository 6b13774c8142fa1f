package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/hojattop/hojattop-api/bootstrap"
	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/service"
)

// loadToilets reads a JSON array of toilets.
func loadToilets(path string) ([]schema.Toilet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var toilets []schema.Toilet
	if err := json.Unmarshal(data, &toilets); err != nil {
		return nil, err
	}
	return toilets, nil
}

// seed creates every toilet and returns how many were stored.
func seed(ctx context.Context, toilets *service.ToiletService, records []schema.Toilet) int {
	created := 0
	for _, t := range records {
		id, err := toilets.Create(ctx, t)
		if err != nil {
			log.WithField("prefix", "seed").WithField("name", t.Name).WithError(err).Error("fail to create toilet")
			continue
		}
		log.WithField("prefix", "seed").WithField("toilet ID", id).Debug("toilet created")
		created++
	}
	return created
}

func main() {
	var configFile, dataFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&dataFile, "f", "./toilets.json", "path of the toilet JSON file")
	flag.Parse()

	if err := bootstrap.LoadConfig(configFile); err != nil {
		log.WithError(err).Fatal("fail to load config")
	}

	records, err := loadToilets(dataFile)
	if err != nil {
		log.WithError(err).WithField("file", dataFile).Fatal("fail to read toilets")
	}

	ctx := context.Background()
	backend, closeStore, err := bootstrap.NewStore(ctx)
	if err != nil {
		log.WithError(err).Fatal("fail to connect store")
	}
	defer closeStore()

	// the seeded list is not cached; the next fetch reads it from the store
	toilets := service.NewToiletService(backend, cache.NewToiletCache(cache.New(cache.NewMemoryStore())))

	created := seed(ctx, toilets, records)
	log.WithField("prefix", "seed").Infof("%d of %d toilets created", created, len(records))
}
