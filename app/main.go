package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/avezina/inkwell/internal/repository"
	mysqlRepo "github.com/avezina/inkwell/internal/repository/mysql"
	redisCache "github.com/avezina/inkwell/internal/repository/redis"
	"github.com/avezina/inkwell/internal/rest"
	"github.com/avezina/inkwell/internal/rest/middleware"
	"github.com/avezina/inkwell/internal/usecase/category"
	"github.com/avezina/inkwell/internal/usecase/comment"
	"github.com/avezina/inkwell/internal/usecase/like"
	"github.com/avezina/inkwell/internal/usecase/post"
	"github.com/avezina/inkwell/internal/usecase/profile"
	"github.com/avezina/inkwell/internal/usecase/tag"
	"github.com/avezina/inkwell/internal/usecase/user"
	"github.com/avezina/inkwell/internal/workers"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultUploadDir    = "./uploads"
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	categoryRepo := mysqlRepo.NewCategoryRepository(db)
	tagRepo := mysqlRepo.NewTagRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	profileRepo := mysqlRepo.NewProfileRepository(db)

	postDBRepo := mysqlRepo.NewPostRepository(db)
	postCache := redisCache.NewPostCache(client)
	likeCache := redisCache.NewLikeCache(client)
	postRepo := repository.NewPostRepository(postDBRepo, postCache, likeCache, categoryRepo)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likesSyncer := workers.NewSyncLikesWorker(likeRepo)
	go likesSyncer.Start(ctx)

	// Build service layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = defaultUploadDir
	}

	postSvc := post.NewService(postRepo, bloomRepo)
	categorySvc := category.NewService(categoryRepo, likeCache)
	tagSvc := tag.NewService(tagRepo)
	commentSvc := comment.NewService(commentRepo, bloomRepo)
	likeSvc := like.NewService(likeRepo, likeCache, likesSyncer)
	profileSvc := profile.NewService(profileRepo, uploadDir)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	postHandler := rest.NewPostHandler(postSvc)
	categoryHandler := rest.NewCategoryHandler(categorySvc)
	tagHandler := rest.NewTagHandler(tagSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)
	profileHandler := rest.NewProfileHandler(profileSvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := postSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Seed the admin account on first boot
	if err := userSvc.EnsureAdmin(ctx, os.Getenv("ADMIN_NAME"), os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Printf("failed to ensure admin account: %v\n", err)
		return
	}

	// Register routes
	route.POST("/login", userHandler.Login)

	route.GET("/posts", postHandler.FetchPosts)
	route.GET("/posts/:id", postHandler.GetByID)
	route.GET("/posts/:id/comments", commentHandler.FetchByPost)
	route.POST("/posts/:id/comments", commentHandler.Create)

	route.GET("/categories", categoryHandler.Fetch)
	route.GET("/categories/:id/posts", postHandler.FetchPostsByCategory)

	route.GET("/about", profileHandler.About)
	route.GET("/about/cv", profileHandler.DownloadCV)

	route.GET("/likes", likeHandler.FetchLiked)
	route.POST("/likes", likeHandler.Like)
	route.DELETE("/likes", likeHandler.Unlike)

	admin := route.Group("/admin")
	admin.Use(authMiddleware)
	{
		admin.POST("/posts", postHandler.Store)
		admin.PUT("/posts/:id", postHandler.Update)
		admin.DELETE("/posts/:id", postHandler.Delete)

		admin.POST("/categories", categoryHandler.Store)
		admin.PUT("/categories/:id", categoryHandler.Update)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/tags", tagHandler.Fetch)
		admin.POST("/tags", tagHandler.Store)
		admin.DELETE("/tags/:id", tagHandler.Delete)

		admin.DELETE("/comments/:id", commentHandler.Delete)

		admin.GET("/skills", profileHandler.FetchSkills)
		admin.POST("/skills", profileHandler.StoreSkill)
		admin.PUT("/skills/:id", profileHandler.UpdateSkill)
		admin.DELETE("/skills/:id", profileHandler.DeleteSkill)

		admin.GET("/life-events", profileHandler.FetchLifeEvents)
		admin.POST("/life-events", profileHandler.StoreLifeEvent)
		admin.PUT("/life-events/:id", profileHandler.UpdateLifeEvent)
		admin.DELETE("/life-events/:id", profileHandler.DeleteLifeEvent)

		admin.GET("/connections", profileHandler.FetchConnections)
		admin.POST("/connections", profileHandler.StoreConnection)
		admin.PUT("/connections/:id", profileHandler.UpdateConnection)
		admin.DELETE("/connections/:id", profileHandler.DeleteConnection)

		admin.GET("/expenses", profileHandler.FetchExpenses)
		admin.POST("/expenses", profileHandler.StoreExpense)
		admin.PUT("/expenses/:id", profileHandler.UpdateExpense)
		admin.DELETE("/expenses/:id", profileHandler.DeleteExpense)

		admin.PUT("/about", profileHandler.UpdateAbout)
		admin.POST("/about/cv", profileHandler.UploadCV)

		admin.PUT("/profile/password", userHandler.EditPassword)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
