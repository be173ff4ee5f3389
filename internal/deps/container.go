package deps

import (
	"gorm.io/gorm"

	"github.com/uceva/country-service/internal/logger"
	"github.com/uceva/country-service/internal/metrics"
)

// Container holds all shared dependencies
type Container struct {
	DB      *gorm.DB
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB, log logger.Logger, m *metrics.Metrics) *Container {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Container{
		DB:           db,
		Logger:       log,
		Metrics:      m,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
