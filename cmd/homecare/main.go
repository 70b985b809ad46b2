package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/andreferraz/homecare-backend/internal/api"
	"github.com/andreferraz/homecare-backend/internal/business/schedule"
	"github.com/andreferraz/homecare-backend/internal/config"
	_ "github.com/andreferraz/homecare-backend/internal/config"
	"github.com/andreferraz/homecare-backend/internal/database"
	"github.com/andreferraz/homecare-backend/internal/database/caregivers"
	"github.com/andreferraz/homecare-backend/internal/database/events"
	"github.com/andreferraz/homecare-backend/internal/database/orders"
	"github.com/andreferraz/homecare-backend/internal/database/owners"
	"github.com/andreferraz/homecare-backend/internal/database/series"
	"github.com/andreferraz/homecare-backend/internal/database/user"
	"github.com/andreferraz/homecare-backend/internal/model"
	"github.com/andreferraz/homecare-backend/internal/notifications"
	"github.com/andreferraz/homecare-backend/internal/pkg/jwt"
	"github.com/andreferraz/homecare-backend/internal/pkg/oauth"
	"github.com/andreferraz/homecare-backend/internal/redis"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	jwts := jwt.NewManger()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)

	db, err := database.NewPGX(ctx)
	if err != nil {
		log.Fatalf("unable to initializae db: %v", err)
	}
	usersRepository := user.NewRepository()
	ordersRepository := orders.NewRepository()
	caregiversRepository := caregivers.NewRepository()
	ownersRepository := owners.NewRepository()
	seriesRepository := series.NewRepository()
	eventsRepository := events.NewRepository()

	ownerRegistry := schedule.OwnerRegistry{
		model.OwnerHealthUnit: func(ctx context.Context, id int64) error {
			_, err := ownersRepository.GetHealthUnitByID(ctx, db, id)
			return err
		},
		model.OwnerCollaborator: func(ctx context.Context, id int64) error {
			_, err := ownersRepository.GetCollaboratorByID(ctx, db, id)
			return err
		},
	}

	scheduleService := schedule.NewService(
		db,
		ordersRepository,
		caregiversRepository,
		seriesRepository,
		eventsRepository,
		ownerRegistry,
	)

	sender, err := notifications.NewSender(logger)
	if err != nil {
		log.Fatalf("unable to initializae mail sender: %v", err)
	}
	go sender.Start(ctx)

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		ordersRepository,
		caregiversRepository,
		scheduleService,
		sender,
	)
	if err != nil {
		log.Fatalf("unable to initializae api: %v", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
