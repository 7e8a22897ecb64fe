package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/vietanh2810/storefront-api/internal/api/handler/v1"
	"github.com/vietanh2810/storefront-api/internal/api/middleware"
	"github.com/vietanh2810/storefront-api/internal/config"
	"github.com/vietanh2810/storefront-api/internal/pkg/sessioncart"
	"github.com/vietanh2810/storefront-api/internal/repository"
	"github.com/vietanh2810/storefront-api/internal/repository/dao"
	"github.com/vietanh2810/storefront-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	carts *sessioncart.Store
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		carts:  sessioncart.NewStore(),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	catalogHandler := s.initCatalogHandler(db)
	customerHandler := s.initCustomerHandler(db)
	cartHandler := s.initCartHandler(db)
	checkoutHandler := s.initCheckoutHandler(db)
	invoiceHandler := s.initInvoiceHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(authHandler, catalogHandler, customerHandler, cartHandler, checkoutHandler, invoiceHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdminDAO(db)
	repo := repository.NewAdminRepository(adminDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB) *v1.CatalogHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initCustomerHandler(db *gorm.DB) *v1.CustomerHandler {
	customerDAO := dao.NewCustomerDAO(db)
	repo := repository.NewCustomerRepository(customerDAO)
	svc := service.NewCustomerService(repo)
	handler := v1.NewCustomerHandler(svc)

	return handler
}

func (s *Server) initCartHandler(db *gorm.DB) *v1.CartHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewCartService(repo)
	handler := v1.NewCartHandler(svc, s.carts)

	return handler
}

func (s *Server) initCheckoutHandler(db *gorm.DB) *v1.CheckoutHandler {
	invoiceDAO := dao.NewInvoiceDAO(db)
	customerRepo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	repo := repository.NewInvoiceRepository(invoiceDAO, customerRepo)
	svc := service.NewCheckoutService(repo)
	handler := v1.NewCheckoutHandler(svc, s.carts)

	return handler
}

func (s *Server) initInvoiceHandler(db *gorm.DB) *v1.InvoiceHandler {
	invoiceDAO := dao.NewInvoiceDAO(db)
	customerRepo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	repo := repository.NewInvoiceRepository(invoiceDAO, customerRepo)
	svc := service.NewCheckoutService(repo)
	handler := v1.NewInvoiceHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	invoiceDAO := dao.NewInvoiceDAO(db)
	customerRepo := repository.NewCustomerRepository(dao.NewCustomerDAO(db))
	repo := repository.NewInvoiceRepository(invoiceDAO, customerRepo)
	svc := service.NewReportService(repo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	catalogHandler *v1.CatalogHandler,
	customerHandler *v1.CustomerHandler,
	cartHandler *v1.CartHandler,
	checkoutHandler *v1.CheckoutHandler,
	invoiceHandler *v1.InvoiceHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	store := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		store.POST("/items", catalogHandler.HandleCreateItem)
		store.PUT("/items/:itemID", catalogHandler.HandleUpdateItem)
		store.GET("/items", catalogHandler.HandleListItems)
		store.GET("/items/search", catalogHandler.HandleSearchItems)
		store.POST("/items/:itemID/stock", catalogHandler.HandleAdjustStock)

		store.POST("/customers", customerHandler.HandleCreateCustomer)
		store.GET("/customers/search", customerHandler.HandleSearchCustomers)

		store.GET("/cart", cartHandler.HandleGetCart)
		store.POST("/cart/items", cartHandler.HandleAddToCart)
		store.DELETE("/cart/items/:itemID", cartHandler.HandleRemoveFromCart)

		store.POST("/checkout", checkoutHandler.HandleCheckout)
		store.GET("/invoices", invoiceHandler.HandleListInvoices)
		store.GET("/invoices/:invoiceID", invoiceHandler.HandleGetInvoice)

		store.GET("/reports/sales", reportHandler.HandleSalesReport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
