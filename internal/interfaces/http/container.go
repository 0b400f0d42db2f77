package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/shared/logger"
)

// Container holds the repositories, use cases and handlers of the service
// and wires them together around one database handle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initRepositories()
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		return nil, err
	}

	return c, nil
}
