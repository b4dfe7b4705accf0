package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/infrastructure/config"
	"github.com/vforit/ticktrack/internal/infrastructure/email"
	"github.com/vforit/ticktrack/internal/infrastructure/storage"
	"github.com/vforit/ticktrack/internal/interfaces/http/middleware"
	shareddb "github.com/vforit/ticktrack/internal/shared/db"
	"github.com/vforit/ticktrack/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers
// together and owns the resulting gin engine.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *useCases
	hdlrs *handlerSet

	authMiddleware *middleware.AuthMiddleware

	jwtService      *auth.JWTService
	passwordHasher  *auth.BcryptPasswordHasher
	revocationStore auth.RevocationStore
	mailService     *email.SMTPMailService
	fileStorage     *storage.LocalStorage
	txManager       *shareddb.TransactionManager
}

func NewContainer(cfg *config.Config, database *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		db:  database,
		cfg: cfg,
		log: log.Named("http"),
	}

	if err := c.wireServices(); err != nil {
		return nil, err
	}
	c.wireRepositories()
	c.wireUseCases()
	c.wireHandlers()
	c.setupRouter()

	return c, nil
}

// Engine exposes the configured gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	return nil
}
