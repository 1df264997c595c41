package router

import (
	"time"

	"github.com/IMANOL01277/BollitoPy/internal/config"
	"github.com/IMANOL01277/BollitoPy/internal/handler"
	"github.com/IMANOL01277/BollitoPy/internal/infra"
	"github.com/IMANOL01277/BollitoPy/internal/middleware"
	"github.com/IMANOL01277/BollitoPy/internal/repository"
	"github.com/IMANOL01277/BollitoPy/internal/service"
	"github.com/IMANOL01277/BollitoPy/internal/sesion"
	"github.com/IMANOL01277/BollitoPy/internal/web"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// notificador receives negative-stock alerts; nil disables them.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, notificador service.Notificador) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	// ── Infrastructure ───────────────────────────────────────────────────────
	sesiones := sesion.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionHours)*time.Hour)
	sesionStore := infra.NewSesionStore(rdb)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.Sesion(sesiones, sesionStore))

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	vendedorRepo := repository.NewVendedorRepository(db)
	domicilioRepo := repository.NewDomicilioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo)
	movimientoSvc := service.NewMovimientoService(movimientoRepo, nil)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, proveedorRepo, movimientoSvc)
	domicilioSvc := service.NewDomicilioService(domicilioRepo, productoRepo, movimientoSvc, notificador, nil)
	catalogoSvc := service.NewCatalogoService(categoriaRepo, proveedorRepo, vendedorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, sesiones, sesionStore, cfg.IsProduction())
	paginasH := handler.NewPaginasHandler(productoSvc, domicilioSvc, catalogoSvc)
	productosH := handler.NewProductosHandler(productoSvc, catalogoSvc)
	movimientosH := handler.NewMovimientosHandler(movimientoSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/", authH.Inicio)
	r.GET("/login", authH.LoginForm)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.GET("/registro", authH.RegistroForm)
	r.POST("/registro", authH.Registro)
	r.GET("/logout", authH.Logout)

	// Any logged-in user
	auth := r.Group("", middleware.Requiere(middleware.Autenticado))
	{
		auth.GET("/panel", paginasH.Panel)
		auth.GET("/inventario", paginasH.Inventario)
		auth.GET("/estadisticas", paginasH.Estadisticas)
		auth.GET("/domicilios", paginasH.Domicilios)
		auth.POST("/domicilios", paginasH.DomiciliosPost)

		auth.GET("/api/productos", productosH.API)
		auth.POST("/api/productos", productosH.API)
		auth.GET("/api/movimientos", movimientosH.API)
		auth.GET("/api/movimientos/exportar", movimientosH.Exportar)
	}

	// Administrators only
	admin := r.Group("", middleware.Requiere(middleware.Autenticado, middleware.Administrador))
	{
		admin.GET("/categorias", paginasH.Categorias)
		admin.POST("/categorias", paginasH.CategoriasPost)
		admin.GET("/proveedores", paginasH.Proveedores)
		admin.POST("/proveedores", paginasH.ProveedoresPost)
		admin.GET("/vendedores", paginasH.Vendedores)
		admin.POST("/vendedores", paginasH.VendedoresPost)
		admin.GET("/usuarios", paginasH.Usuarios)

		admin.GET("/api/usuarios", usuariosH.API)
		admin.POST("/api/usuarios", usuariosH.API)
	}

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
