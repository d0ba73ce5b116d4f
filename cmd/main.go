package main

import (
	"fmt"
	"log"

	"FestivalSync/internal/adapter/tourapi"
	"FestivalSync/internal/api"
	"FestivalSync/internal/config"
	"FestivalSync/internal/service"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	logger := logrus.New()
	if cfg.Server.Mode == gin.DebugMode {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	logger.Info("config loaded")

	// The upstream rejects every call without a key; fail at startup, not on
	// the first request.
	if cfg.TourAPI.ServiceKey == "" {
		logger.Fatal("TOUR_API_KEY is not set")
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	pprof.Register(r)
	r.Use(api.RequestID())
	logger.Infof("gin mode: %s", cfg.Server.Mode)

	client := tourapi.NewAdapter(&cfg.TourAPI, logger)
	festivalService := service.NewFestivalService(client, &cfg.TourAPI, logger)
	areaCodeService := service.NewAreaCodeService(client, logger)

	festivalHandler := api.NewFestivalHandler(festivalService, logger)
	r.GET("/api/festivals", festivalHandler.ListFestivals)
	r.GET("/api/intro", festivalHandler.GetIntro)
	r.GET("/api/common", festivalHandler.GetCommon)

	searchHandler := api.NewSearchHandler(festivalService, logger)
	r.GET("/api/nearby", searchHandler.SearchNearby)
	r.GET("/api/search", searchHandler.SearchByKeyword)
	r.GET("/api/region", searchHandler.ListByRegion)

	areaHandler := api.NewAreaHandler(areaCodeService, logger)
	r.GET("/api/areacodes", areaHandler.ListAreaCodes)

	logger.Infof("listening on port %d", cfg.Server.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
