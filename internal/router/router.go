package router

import (
	"time"

	"github.com/Michael2410/AlmacenAppv1/internal/config"
	"github.com/Michael2410/AlmacenAppv1/internal/handler"
	"github.com/Michael2410/AlmacenAppv1/internal/middleware"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/repository"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, aud *worker.Auditor) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	rolRepo := repository.NewRolRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	ingresoRepo := repository.NewIngresoRepository(db)
	stockRepo := repository.NewStockRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	reporteRepo := repository.NewReporteRepository(db)
	auditoriaRepo := repository.NewAuditoriaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	permisoSvc := service.NewPermisoService(usuarioRepo, rolRepo)
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, rolRepo)
	rolSvc := service.NewRolService(rolRepo, usuarioRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	productoSvc := service.NewProductoService(productoRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo, productoRepo)
	ingresoSvc := service.NewIngresoService(ingresoRepo, productoRepo, proveedorRepo)
	stockSvc := service.NewStockService(stockRepo, productoRepo, usuarioRepo, cfg)
	pedidoSvc := service.NewPedidoService(pedidoRepo, stockRepo, productoRepo, stockSvc, cfg)
	reporteSvc := service.NewReporteService(reporteRepo, stockSvc)
	dashboardSvc := service.NewDashboardService(reporteRepo, ingresoSvc, stockSvc, rdb)
	auditoriaSvc := service.NewAuditoriaService(auditoriaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, aud)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc, aud)
	rolesH := handler.NewRolesHandler(rolSvc, aud)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc, aud)
	productosH := handler.NewProductosHandler(productoSvc, aud)
	catalogosH := handler.NewCatalogosHandler(catalogoSvc, aud)
	ingresosH := handler.NewIngresosHandler(ingresoSvc, aud)
	stockH := handler.NewStockHandler(stockSvc, permisoSvc, aud)
	pedidosH := handler.NewPedidosHandler(pedidoSvc, permisoSvc, aud)
	reportesH := handler.NewReportesHandler(reporteSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	auditoriaH := handler.NewAuditoriaHandler(auditoriaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes — every gate names the permission tokens it demands;
	// the admin role bypasses all of them.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	requiere := func(tokens ...string) gin.HandlerFunc {
		return middleware.RequirePermisos(permisoSvc, tokens...)
	}
	api := r.Group("/api", jwtMW)
	{
		usuarios := api.Group("/users", requiere(model.PermUsersManage))
		{
			usuarios.GET("", usuariosH.Listar)
			usuarios.POST("", usuariosH.Crear)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.PUT("/:id/permissions", usuariosH.ActualizarPermisos)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}

		roles := api.Group("/roles", requiere(model.PermRolesManage))
		{
			roles.GET("", rolesH.Listar)
			roles.POST("", rolesH.Crear)
			roles.PUT("/:id", rolesH.Actualizar)
			roles.DELETE("/:id", rolesH.Eliminar)
		}

		api.GET("/proveedores", requiere(model.PermProvidersView), proveedoresH.Listar)
		api.POST("/proveedores", requiere(model.PermProvidersCreate), proveedoresH.Crear)
		api.PUT("/proveedores/:id", requiere(model.PermProvidersEdit), proveedoresH.Actualizar)
		api.DELETE("/proveedores/:id", requiere(model.PermProvidersDelete), proveedoresH.Eliminar)

		api.GET("/productos", requiere(model.PermProductsView), productosH.Listar)
		api.GET("/productos/:id", requiere(model.PermProductsView), productosH.Obtener)
		api.POST("/productos", requiere(model.PermProductsCreate), productosH.Crear)
		api.PUT("/productos/:id", requiere(model.PermProductsEdit), productosH.Actualizar)
		api.DELETE("/productos/:id", requiere(model.PermProductsDelete), productosH.Eliminar)

		// Catálogos de referencia — lectura para cualquier autenticado,
		// escritura gestionada por token propio.
		api.GET("/referencias", catalogosH.Referencias)
		api.GET("/areas", catalogosH.ListarAreas)
		api.GET("/ubicaciones", catalogosH.ListarUbicaciones)
		api.GET("/unidades-medida", catalogosH.ListarUnidades)

		areas := api.Group("/areas", requiere(model.PermAreasManage))
		{
			areas.POST("", catalogosH.CrearArea)
			areas.PUT("/:id", catalogosH.ActualizarArea)
			areas.DELETE("/:id", catalogosH.EliminarArea)
		}
		ubicaciones := api.Group("/ubicaciones", requiere(model.PermUbicacionesManage))
		{
			ubicaciones.POST("", catalogosH.CrearUbicacion)
			ubicaciones.PUT("/:id", catalogosH.ActualizarUbicacion)
			ubicaciones.DELETE("/:id", catalogosH.EliminarUbicacion)
		}
		unidades := api.Group("/unidades-medida", requiere(model.PermUnidadesManage))
		{
			unidades.POST("", catalogosH.CrearUnidad)
			unidades.PUT("/:id", catalogosH.ActualizarUnidad)
			unidades.DELETE("/:id", catalogosH.EliminarUnidad)
		}

		api.GET("/ingresos", requiere(model.PermIngresosView), ingresosH.Listar)
		api.POST("/ingresos", requiere(model.PermIngresosCreate), ingresosH.Crear)
		api.GET("/ingresos/alertas", requiere(model.PermIngresosView), ingresosH.AlertasVencimiento)

		api.GET("/stock/general", requiere(model.PermInventoryViewAll), stockH.StockGeneral)
		api.GET("/stock/mio", requiere(model.PermInventoryViewSelf), stockH.StockMio)
		api.POST("/asignaciones", requiere(model.PermInventoryAssign), stockH.Asignar)
		api.GET("/asignaciones", requiere(model.PermInventoryViewSelf), stockH.ListarAsignaciones)
		api.POST("/salidas", requiere(model.PermInventoryViewSelf), stockH.RegistrarSalida)
		api.GET("/salidas", requiere(model.PermInventoryViewSelf), stockH.ListarSalidas)

		api.POST("/pedidos", requiere(model.PermPedidosCreate), pedidosH.Crear)
		api.POST("/pedidos/batch", requiere(model.PermPedidosCreate), pedidosH.CrearLote)
		api.GET("/pedidos", requiere(model.PermPedidosView), pedidosH.Listar)
		api.GET("/pedidos/mios", requiere(model.PermPedidosView), pedidosH.Mios)
		api.GET("/pedidos/admin", requiere(model.PermPedidosView), pedidosH.Admin)
		api.GET("/pedidos/agrupados", requiere(model.PermPedidosView), pedidosH.ListarAgrupados)
		api.PUT("/pedidos/:id/estado", requiere(model.PermPedidosApprove), pedidosH.CambiarEstado)
		api.PUT("/pedidos/lote/:loteId/estado", requiere(model.PermPedidosApprove), pedidosH.CambiarEstadoLote)
		api.POST("/pedidos/lote/:loteId/entregar", requiere(model.PermPedidosDeliver), pedidosH.EntregarLote)
		api.POST("/pedidos/:id/asignar", requiere(model.PermPedidosDeliver), pedidosH.AsignarPedido)

		reportes := api.Group("/reportes", requiere(model.PermReportsView))
		{
			reportes.GET("/inventario", reportesH.Inventario)
			reportes.GET("/ingresos", reportesH.Ingresos)
			reportes.GET("/asignaciones", reportesH.Asignaciones)
			reportes.GET("/salidas", reportesH.Salidas)
			reportes.GET("/pedidos", reportesH.Pedidos)
			reportes.GET("/stock-usuarios", reportesH.StockUsuarios)
			reportes.GET("/movimientos", reportesH.Movimientos)
			reportes.GET("/stock-bajo", reportesH.StockBajo)
			reportes.GET("/resumen", reportesH.Resumen)
		}

		// Dashboard — visible para cualquier usuario autenticado.
		api.GET("/dashboard/metrics", dashboardH.Metrics)
		api.GET("/dashboard/charts", dashboardH.Charts)
		api.GET("/dashboard/actividad", dashboardH.Actividad)

		api.GET("/auditoria", requiere(model.PermSystemConfig), auditoriaH.Listar)
		api.GET("/auditoria/stats", requiere(model.PermSystemConfig), auditoriaH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
