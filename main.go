package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-backend/common/logger"
	"food-delivery-backend/config"
	"food-delivery-backend/controllers"
	"food-delivery-backend/database"
	"food-delivery-backend/repository"
	"food-delivery-backend/routes"
	"food-delivery-backend/services"
)

func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		logger.Log.Fatal("mongo connection failed", zap.Error(err))
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, database.DB); err != nil {
		cancel()
		logger.Log.Fatal("index creation failed", zap.Error(err))
	}
	cancel()

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("redis connection failed", zap.Error(err))
	}
	defer redisClient.Close()

	foodRepo := repository.NewMongoFoodRepository(database.DB)
	orderRepo := repository.NewMongoOrderRepository(database.DB)
	reviewRepo := repository.NewMongoReviewRepository(database.DB)
	userRepo := repository.NewMongoUserRepository(database.DB)
	txRepo := repository.NewMongoTransactionRepository(database.DB)
	cartRepo := repository.NewRedisCartRepository(redisClient, cfg.CartTTL)

	foodService := services.NewFoodService(foodRepo)
	cartService := services.NewCartService(cartRepo, foodRepo)
	orderService := services.NewOrderService(orderRepo, foodRepo, userRepo)
	analyticsService := services.NewAnalyticsService(orderRepo, foodRepo)
	reviewService := services.NewReviewService(reviewRepo, foodRepo)
	addressService := services.NewAddressService(userRepo)
	favoriteService := services.NewFavoriteService(userRepo, foodRepo)
	userService := services.NewUserService(userRepo)
	paymentService := services.NewPaymentService(userRepo, txRepo, orderService, cartService, cfg.PaymentDelay)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger())

	routes.Register(router, routes.Controllers{
		Foods:        controllers.NewFoodController(foodService),
		Carts:        controllers.NewCartController(cartService),
		Orders:       controllers.NewOrderController(orderService, analyticsService),
		Reviews:      controllers.NewReviewController(reviewService),
		Transactions: controllers.NewTransactionController(paymentService),
		Addresses:    controllers.NewAddressController(addressService),
		Favorites:    controllers.NewFavoriteController(favoriteService),
		Users:        controllers.NewUserController(userService),
	}, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("shutdown error", zap.Error(err))
	}
}
