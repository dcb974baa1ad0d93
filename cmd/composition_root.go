package cmd

import (
	"time"

	"mercurydash/internal/adapters/out/identity"
	"mercurydash/internal/adapters/out/postgres"
	"mercurydash/internal/core/application/usecases/commands"
	"mercurydash/internal/core/application/usecases/queries"
	"mercurydash/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. Everything
// the HTTP layer and the jobs need is created here and nowhere else.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     identity.TokenService
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	ttl := 24 * time.Hour
	if config.TokenTTL != "" {
		parsed, err := time.ParseDuration(config.TokenTTL)
		if err != nil {
			return CompositionRoot{}, err
		}
		ttl = parsed
	}

	tokens, err := identity.NewTokenService([]byte(config.JWTSecret), ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     tokens,
		config:     config,
	}, nil
}

// TokenService exposes the session token verifier for the HTTP middleware.
func (c *CompositionRoot) TokenService() identity.TokenService {
	return c.tokens
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	return commands.NewRemoveMenuItemCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateGetVisibleOrdersQueryHandler() queries.GetVisibleOrdersQueryHandler {
	return queries.NewGetVisibleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled jobs. An empty schedule falls back
// to an hourly report.
func (c *CompositionRoot) CreateJobManager(logger *zap.Logger) *jobs.JobManager {
	schedule := c.config.ReportSchedule
	if schedule == "" {
		schedule = "@hourly"
	}
	return jobs.NewJobManager(c.CreateGetOrderBoardQueryHandler(), schedule, logger)
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
