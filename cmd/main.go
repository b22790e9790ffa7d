package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cart-service/internal/api"
	"cart-service/internal/cache"
	"cart-service/internal/config"
	"cart-service/internal/events"
	"cart-service/internal/repository"
	"cart-service/internal/server"
	"cart-service/internal/service"
	"cart-service/internal/sharding"
	"cart-service/migrations"
)

func connectDB(dsn string, retries int) (*sql.DB, error) {
	mysqlCfg, err := config.MySQLConfig(dsn)
	if err != nil {
		return nil, err
	}
	dsn = mysqlCfg.FormatDSN()

	var db *sql.DB
	for i := 0; i < retries; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				return db, nil
			}
			db.Close()
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("Failed to connect to DB, retrying")
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("connect to DB after %d retries: %w", retries, err)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	dsns := cfg.DSNs()
	if len(dsns) == 0 {
		log.Fatal().Msg("DB_DSNS must name at least one database")
	}

	shards := make([]*sql.DB, 0, len(dsns))
	for i, dsn := range dsns {
		db, err := connectDB(dsn, cfg.DBConnectRetries)
		if err != nil {
			log.Fatal().Err(err).Int("shard", i).Msg("Failed to connect to DB")
		}
		defer db.Close()
		log.Info().Int("shard", i).Msg("Connected to DB")
		shards = append(shards, db)
	}

	if err := migrations.AutoMigrateCatalog(3, shards[0]); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate catalog tables")
	}
	if err := migrations.AutoMigrateOrders(3, shards...); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate order tables")
	}

	var cartCache service.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()
		cartCache = cache.NewRedisCache(rdb)
	}

	var publisher service.Publisher
	if cfg.KafkaEnabled {
		producer := events.NewKafkaProducer(config.NewKafkaWriter(cfg.Brokers(), cfg.KafkaTopic))
		defer producer.Close()
		publisher = producer
	}

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		log.Fatal().Err(err).Int64("node_id", cfg.NodeID).Msg("Failed to create order id generator")
	}

	router := sharding.NewShardRouter(len(shards))

	cartRepo := repository.NewCartRepository(shards[0])
	orderRepo := repository.NewOrderRepository(shards, router, node)

	cartService := service.NewCartService(cartRepo, cartCache, cfg.CacheTTL)
	billService := service.NewBillService(orderRepo, publisher, cfg.RejectEmptyBills).
		WithPublishTimeout(cfg.PublishTimeout)

	e := server.New(cfg, api.NewCartHandler(cartService), api.NewBillHandler(billService))

	go func() {
		log.Info().Str("port", cfg.Port).Int("shards", len(shards)).Msg("Starting cart service")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
}
