package factory

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	goredis "github.com/redis/go-redis/v9"

	"jobport/internal/concurrent"
	"jobport/internal/config"
	"jobport/internal/domain"
	"jobport/internal/repository"
	"jobport/internal/service"
	"jobport/pkg/cache"
	"jobport/pkg/logger"
	"jobport/pkg/redis"
	"jobport/pkg/token"
)

const (
	auditWorkers      = 2
	auditQueueSize    = 256
	reconcileInterval = 10 * time.Minute
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetRedisClient() *goredis.Client
	GetCache() cache.Cache
	GetCacheManager() cache.CacheStrategy
	GetWarmUpManager() *cache.WarmUpManager
	GetAuditWorkerPool() *concurrent.WorkerPool
	GetCountReconciler() *concurrent.CountReconciler

	GetUserRepository() domain.UserRepository
	GetJobRepository() domain.JobRepository
	GetApplicationRepository() domain.ApplicationRepository
	GetAuditLogRepository() domain.AuditLogRepository

	GetAuthService() domain.AuthService
	GetUserService() domain.UserService
	GetJobService() domain.JobService
	GetApplicationService() domain.ApplicationService
	GetAuditLogService() domain.AuditLogService
}

type AppFactory struct {
	config        *config.Config
	logger        logger.Logger
	db            *sql.DB
	redisClient   *goredis.Client
	cache         cache.Cache
	cacheManager  cache.CacheStrategy
	warmUpManager *cache.WarmUpManager
	auditPool     *concurrent.WorkerPool
	reconciler    *concurrent.CountReconciler

	userRepository        domain.UserRepository
	jobRepository         domain.JobRepository
	applicationRepository domain.ApplicationRepository
	auditLogRepository    domain.AuditLogRepository

	authService        domain.AuthService
	userService        domain.UserService
	jobService         domain.JobService
	applicationService domain.ApplicationService
	auditLogService    domain.AuditLogService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı test edilemedi: %w", err)
	}

	redisClient, err := redis.Connect(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	cacheInstance := cache.NewRedisCache(redisClient, log, "jobport")
	cacheManager := cache.NewCacheManager(cacheInstance, log)

	factory := &AppFactory{
		config:       cfg,
		logger:       log,
		db:           db,
		redisClient:  redisClient,
		cache:        cacheInstance,
		cacheManager: cacheManager,
	}

	factory.initRepositories()
	factory.initAuditPool()
	factory.initServices()
	factory.initCacheManagers()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.jobRepository = repository.NewJobRepository(f.db, f.logger)
	f.applicationRepository = repository.NewApplicationRepository(f.db, f.logger)
	f.auditLogRepository = repository.NewAuditLogRepository(f.db, f.logger)
}

func (f *AppFactory) initAuditPool() {
	repo := f.auditLogRepository
	f.auditPool = concurrent.NewWorkerPool(auditWorkers, auditQueueSize, func(log *domain.AuditLog) error {
		return repo.Create(log)
	}, f.logger)
	f.reconciler = concurrent.NewCountReconciler(f.jobRepository, reconcileInterval, f.logger)
}

func (f *AppFactory) initServices() {
	f.auditLogService = service.NewAuditLogService(f.auditLogRepository, f.logger)

	tokens := token.NewManager(f.config.Auth.JWTSecret, f.config.Auth.TokenExpiry)
	f.authService = service.NewAuthService(f.userRepository, tokens, f.config.Auth.BcryptCost, f.auditPool, f.logger)

	baseUserService := service.NewUserService(f.userRepository, f.auditPool, f.logger)
	f.userService = service.NewCachedUserService(baseUserService, f.cache, f.cacheManager, f.logger)

	baseJobService := service.NewJobService(f.jobRepository, f.applicationRepository, f.auditPool, f.logger)
	f.jobService = service.NewCachedJobService(baseJobService, f.cache, f.cacheManager, f.logger)

	baseApplicationService := service.NewApplicationService(f.applicationRepository, f.jobRepository, f.auditPool, f.logger)
	f.applicationService = service.NewCachedApplicationService(baseApplicationService, f.cache, f.logger)
}

func (f *AppFactory) initCacheManagers() {
	f.warmUpManager = cache.NewWarmUpManager(f.cache, f.logger, f.jobService)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetRedisClient() *goredis.Client {
	return f.redisClient
}

func (f *AppFactory) GetCache() cache.Cache {
	return f.cache
}

func (f *AppFactory) GetCacheManager() cache.CacheStrategy {
	return f.cacheManager
}

func (f *AppFactory) GetWarmUpManager() *cache.WarmUpManager {
	return f.warmUpManager
}

func (f *AppFactory) GetCountReconciler() *concurrent.CountReconciler {
	return f.reconciler
}

func (f *AppFactory) GetAuditWorkerPool() *concurrent.WorkerPool {
	return f.auditPool
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetJobRepository() domain.JobRepository {
	return f.jobRepository
}

func (f *AppFactory) GetApplicationRepository() domain.ApplicationRepository {
	return f.applicationRepository
}

func (f *AppFactory) GetAuditLogRepository() domain.AuditLogRepository {
	return f.auditLogRepository
}

func (f *AppFactory) GetAuthService() domain.AuthService {
	return f.authService
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetJobService() domain.JobService {
	return f.jobService
}

func (f *AppFactory) GetApplicationService() domain.ApplicationService {
	return f.applicationService
}

func (f *AppFactory) GetAuditLogService() domain.AuditLogService {
	return f.auditLogService
}
