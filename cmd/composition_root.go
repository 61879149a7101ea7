package cmd

import (
	"log/slog"

	"globaledge/internal/adapters/out/mail"
	"globaledge/internal/adapters/out/postgres"
	"globaledge/internal/core/application/usecases/commands"
	"globaledge/internal/core/application/usecases/queries"
	"globaledge/internal/core/domain/services"
	"globaledge/internal/core/ports"
	"globaledge/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   createNotifier(config, logger),
		logger:     logger,
	}
}

func createNotifier(config Config, logger *slog.Logger) ports.Notifier {
	if config.EmailPreviewMode {
		return mail.NewPreviewNotifier(logger)
	}
	return mail.NewSMTPNotifier(mail.SMTPConfig{
		Host:     config.SMTPHost,
		Port:     config.SMTPPort,
		Username: config.SMTPUsername,
		Password: config.SMTPPassword,
		From:     config.EmailFrom,
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(
		f,
		services.NewRateCalculator(),
		commands.NewIdentityResolver(c.logger),
	)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(
		f,
		commands.NewNotificationTrigger(c.notifier, c.config.EmailAutoNotify, c.logger),
	)
}

func (c *CompositionRoot) CreateNotifyRecipientCommandHandler() commands.NotifyRecipientCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyRecipientCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerShipmentsQueryHandler() queries.GetOwnerShipmentsQueryHandler {
	return queries.NewGetOwnerShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPublicTrackingQueryHandler() queries.GetPublicTrackingQueryHandler {
	return queries.NewGetPublicTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueShipmentsQueryHandler() queries.GetOverdueShipmentsQueryHandler {
	return queries.NewGetOverdueShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueShipmentsQueryHandler(), c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
