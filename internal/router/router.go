package router

import (
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/config"
	"github.com/edulopezdev/barberiaLopez/internal/handler"
	"github.com/edulopezdev/barberiaLopez/internal/infra"
	"github.com/edulopezdev/barberiaLopez/internal/middleware"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"
	"github.com/edulopezdev/barberiaLopez/internal/service"
	"github.com/edulopezdev/barberiaLopez/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	imageStore := infra.NewImageStore(cfg.ImageStoragePath)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	imagenRepo := repository.NewImagenRepository(db)
	atencionRepo := repository.NewAtencionRepository(db)
	detalleRepo := repository.NewDetalleRepository(db)
	turnoRepo := repository.NewTurnoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	productoSvc := service.NewProductoService(productoRepo, imagenRepo, imageStore)
	atencionSvc := service.NewAtencionService(atencionRepo, usuarioRepo, productoRepo, turnoRepo)
	detalleSvc := service.NewDetalleService(detalleRepo, atencionRepo, productoRepo)
	turnoSvc := service.NewTurnoService(turnoRepo, atencionRepo)
	pagoSvc := service.NewPagoService(pagoRepo, atencionRepo, imagenRepo, dispatcher, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	atencionesH := handler.NewAtencionesHandler(atencionSvc)
	detallesH := handler.NewDetallesHandler(detalleSvc)
	turnosH := handler.NewTurnosHandler(turnoSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static("/images", imageStore.Root())

	api := r.Group("/api")

	// Auth (public)
	api.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	priv := api.Group("", jwtMW)

	personal := middleware.RequireRole(model.RolAdministrador, model.RolBarbero)
	soloAdmin := middleware.RequireRole(model.RolAdministrador)

	usuarios := priv.Group("/usuarios")
	{
		// Staff can create clientes; only an administrador can create staff
		// (enforced in the service, the route just keeps clientes out).
		usuarios.POST("", personal, usuariosH.Crear)
		usuarios.GET("", soloAdmin, usuariosH.Listar)
		usuarios.GET("/usuarios-sistema", soloAdmin, usuariosH.ListarConAcceso)
		usuarios.GET("/clientes", personal, usuariosH.ListarClientes)
		usuarios.GET("/barberos", personal, usuariosH.ListarBarberos)
		usuarios.GET("/:id", usuariosH.Obtener)
		// Self-or-admin rule lives in the service.
		usuarios.PUT("/:id", usuariosH.Actualizar)
		usuarios.DELETE("/:id", soloAdmin, usuariosH.Eliminar)
		usuarios.PATCH("/:id/estado", soloAdmin, usuariosH.CambiarEstado)
	}

	productos := priv.Group("/productosservicios", personal)
	{
		productos.GET("/almacenables", productosH.ListarAlmacenables)
		productos.GET("/noAlmacenables", productosH.ListarNoAlmacenables)
		productos.GET("/:id", productosH.Obtener)
		productos.GET("/:id/imagen", productosH.ObtenerImagen)
		productos.POST("", productosH.Crear)
		productos.PUT("/:id", productosH.Actualizar)
		productos.DELETE("/:id", soloAdmin, productosH.Eliminar)
		productos.DELETE("/imagen/:id", soloAdmin, productosH.EliminarImagen)
	}

	atenciones := priv.Group("/atencion", personal)
	{
		atenciones.POST("", atencionesH.Crear)
		atenciones.GET("", atencionesH.Listar)
		atenciones.GET("/resumen-barbero", atencionesH.ResumenBarbero)
		atenciones.GET("/:id", atencionesH.Obtener)
		atenciones.PUT("/:id", atencionesH.Actualizar)
		atenciones.DELETE("/:id", soloAdmin, atencionesH.Eliminar)
	}

	detalles := priv.Group("/detalleatencion", personal)
	{
		detalles.POST("", detallesH.Crear)
		detalles.GET("", detallesH.Listar)
		detalles.GET("/:id", detallesH.Obtener)
		detalles.PUT("/:id", detallesH.Actualizar)
		detalles.DELETE("/:id", soloAdmin, detallesH.Eliminar)
	}

	turnos := priv.Group("/turnos", personal)
	{
		turnos.POST("", turnosH.Crear)
		turnos.GET("", turnosH.Listar)
		turnos.GET("/:id", turnosH.Obtener)
		turnos.PUT("/:id", turnosH.Actualizar)
		turnos.DELETE("/:id", soloAdmin, turnosH.Eliminar)
	}

	pagos := priv.Group("/pagos", personal)
	{
		pagos.POST("", pagosH.Crear)
		pagos.GET("/:id", pagosH.Obtener)
		pagos.GET("/atencion/:id", pagosH.ListarPorAtencion)
		pagos.DELETE("/:id", soloAdmin, pagosH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
