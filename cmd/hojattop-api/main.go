package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hojattop/hojattop-api/api"
	"github.com/hojattop/hojattop-api/bootstrap"
	"github.com/hojattop/hojattop-api/cache"
	"github.com/hojattop/hojattop-api/geo"
	"github.com/hojattop/hojattop-api/schema"
	"github.com/hojattop/hojattop-api/service"
	"github.com/hojattop/hojattop-api/utils"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	if err := bootstrap.LoadConfig(configFile); err != nil {
		log.WithError(err).Fatal("fail to load config")
	}

	if err := utils.InitI18NBundle(); err != nil {
		log.WithError(err).Fatal("fail to load i18n bundle")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	backend, closeStore, err := bootstrap.NewStore(ctx)
	if err != nil {
		cancel()
		log.WithError(err).Fatal("fail to connect store")
	}
	defer closeStore()

	kv, closeKV, err := bootstrap.NewKeyValueStore(ctx)
	cancel()
	if err != nil {
		log.WithError(err).Fatal("fail to open cache storage")
	}
	defer closeKV()

	c := cache.New(kv)
	toilets := service.NewToiletService(backend, cache.NewToiletCache(c))
	reviews := service.NewReviewService(backend, cache.NewReviewCache(c), toilets)

	opts := []api.ServerOption{
		api.WithTraceMode(viper.GetBool("server.trace")),
		api.WithPositionProvider(geo.NewFixedPosition(schema.Location{
			Latitude:  viper.GetFloat64("geo.latitude"),
			Longitude: viper.GetFloat64("geo.longitude"),
		})),
	}
	if endpoint := viper.GetString("nominatim.endpoint"); endpoint != "" {
		opts = append(opts, api.WithLocationSearcher(geo.NewNominatimSearcher(endpoint)))
	}

	server := api.NewServer(toilets, reviews, c, opts...)

	go func() {
		addr := fmt.Sprintf(":%d", viper.GetInt("server.port"))
		log.WithField("prefix", "init").WithField("addr", addr).Info("server starts")
		if err := server.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stops unexpectedly")
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.WithField("prefix", "init").WithField("signal", sig).Info("server shuts down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("fail to shut down server")
	}
}
