package cmd

import (
	"gridstore/internal/adapters/out/postgres"
	"gridstore/internal/core/application/usecases/commands"
	"gridstore/internal/core/application/usecases/queries"
	"gridstore/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.NewSystemClock(),
	}
}

func (c *CompositionRoot) CreateCreateGridCommandHandler() commands.CreateGridCommandHandler {
	var f commands.GridUoWFactory = FuncGridUoWFactory(func() commands.GridUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateGridCommandHandler(f)
}

func (c *CompositionRoot) CreateResizeGridCommandHandler() commands.ResizeGridCommandHandler {
	var f commands.GridUoWFactory = FuncGridUoWFactory(func() commands.GridUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResizeGridCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignProductCommandHandler() commands.AssignProductCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignProductCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateClearCellCommandHandler() commands.ClearCellCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCellCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSetCellStatusCommandHandler() commands.SetCellStatusCommandHandler {
	var f commands.CellUoWFactory = FuncCellUoWFactory(func() commands.CellUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCellStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateCellNoteCommandHandler() commands.UpdateCellNoteCommandHandler {
	var f commands.CellUoWFactory = FuncCellUoWFactory(func() commands.CellUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCellNoteCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetGridsQueryHandler() queries.GetGridsQueryHandler {
	return queries.NewGetGridsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetGridCellsQueryHandler() queries.GetGridCellsQueryHandler {
	return queries.NewGetGridCellsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCellQueryHandler() queries.GetCellQueryHandler {
	return queries.NewGetCellQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCellsByStatusQueryHandler() queries.GetCellsByStatusQueryHandler {
	return queries.NewGetCellsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyCellsQueryHandler() queries.GetReadyCellsQueryHandler {
	return queries.NewGetReadyCellsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCellHistoryQueryHandler() queries.GetCellHistoryQueryHandler {
	return queries.NewGetCellHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByKeyQueryHandler() queries.GetOrderByKeyQueryHandler {
	return queries.NewGetOrderByKeyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSummaryQueryHandler() queries.GetSummaryQueryHandler {
	return queries.NewGetSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckProductCodeQueryHandler() queries.CheckProductCodeQueryHandler {
	return queries.NewCheckProductCodeQueryHandler(c.gormDB)
}

type FuncGridUoWFactory func() commands.GridUoW

func (f FuncGridUoWFactory) Create() commands.GridUoW {
	return f()
}

type FuncCellUoWFactory func() commands.CellUoW

func (f FuncCellUoWFactory) Create() commands.CellUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
