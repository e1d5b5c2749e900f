package infra

import (
	"fmt"

	"github.com/edulopezdev/barberiaLopez/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the full schema. Reference rows (roles, estados de turno)
// are seeded idempotently afterwards.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates every table and seeds reference data.
// Also used by integration tests against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Rol{},
		&model.Usuario{},
		&model.ProductoServicio{},
		&model.Imagen{},
		&model.EstadoTurno{},
		&model.Turno{},
		&model.Atencion{},
		&model.DetalleAtencion{},
		&model.Pago{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return seedReferenceData(db)
}

// seedReferenceData inserts the fixed rol and estado_turno rows. Uses
// ON CONFLICT DO NOTHING semantics so re-running is a no-op.
func seedReferenceData(db *gorm.DB) error {
	roles := []model.Rol{
		{ID: model.RolAdministradorID, NombreRol: string(model.RolAdministrador)},
		{ID: model.RolBarberoID, NombreRol: string(model.RolBarbero)},
		{ID: model.RolClienteID, NombreRol: string(model.RolCliente)},
	}
	for _, r := range roles {
		if err := db.Where("id = ?", r.ID).FirstOrCreate(&model.Rol{}, r).Error; err != nil {
			return fmt.Errorf("seed rol %s: %w", r.NombreRol, err)
		}
	}

	estados := []model.EstadoTurno{
		{ID: 1, Nombre: "Pendiente"},
		{ID: 2, Nombre: "Confirmado"},
		{ID: 3, Nombre: "Cancelado"},
		{ID: 4, Nombre: "Completado"},
	}
	for _, e := range estados {
		if err := db.Where("id = ?", e.ID).FirstOrCreate(&model.EstadoTurno{}, e).Error; err != nil {
			return fmt.Errorf("seed estado_turno %s: %w", e.Nombre, err)
		}
	}
	return nil
}
