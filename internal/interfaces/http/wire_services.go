package http

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vforit/ticktrack/internal/infrastructure/auth"
	"github.com/vforit/ticktrack/internal/infrastructure/cache"
	"github.com/vforit/ticktrack/internal/infrastructure/email"
	"github.com/vforit/ticktrack/internal/infrastructure/storage"
	shareddb "github.com/vforit/ticktrack/internal/shared/db"
)

func (c *Container) wireServices() error {
	jwtCfg := c.cfg.Auth.JWT
	if jwtCfg.Secret == "" {
		return fmt.Errorf("auth.jwt.secret is not configured")
	}

	c.jwtService = auth.NewJWTService(jwtCfg.Secret, jwtCfg.AccessExpMinutes, jwtCfg.RefreshExpMinutes)
	c.passwordHasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.revocationStore = cache.NewRedisRevocationStore(c.redis)
		c.log.Infow("using redis-backed token revocation store", "addr", c.cfg.Redis.GetAddr())
	} else {
		c.revocationStore = auth.NewMemoryRevocationStore()
		c.log.Infow("using in-memory token revocation store")
	}

	c.mailService = email.NewSMTPMailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
	})

	c.fileStorage = storage.NewLocalStorage(c.cfg.Storage.UploadDir)
	c.txManager = shareddb.NewTransactionManager(c.db)

	return nil
}
