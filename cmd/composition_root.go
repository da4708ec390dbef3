package cmd

import (
	"log/slog"

	"dinein/internal/adapters/out/postgres"
	"dinein/internal/adapters/out/postgres/menurepo"
	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/application/usecases/queries"
	"dinein/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.CompletionNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.CompletionNotifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateOccupyTableCommandHandler() commands.OccupyTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOccupyTableCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeNumberOfGuestsCommandHandler(f)
}

func (c *CompositionRoot) CreateClearTableCommandHandler() commands.ClearTableCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearTableCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, menurepo.NewGormMenuClient(c.gormDB))
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewServeOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReleaseTablesCommandHandler() commands.ReleaseTablesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseTablesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTablesQueryHandler() queries.GetAllTablesQueryHandler {
	return queries.NewGetAllTablesQueryHandler(c.gormDB)
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
