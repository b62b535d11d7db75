package main

import (
	"fmt"
	"net/http"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"outlet-service/config"
	"outlet-service/handlers"
	"outlet-service/identity"
	"outlet-service/mailer"
	"outlet-service/middlewares"
	"outlet-service/models"
	"outlet-service/services"
	"outlet-service/store"
	"outlet-service/token"
)

func main() {
	logger := config.Config.Logger
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(config.Config.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatalf("database connection error %v", err)
	}
	logger.Info("database connected")

	err = db.AutoMigrate(
		&models.Outlet{},
		&models.Role{},
		&models.User{},
		&models.Admin{},
		&models.Category{},
		&models.Product{},
		&models.RefreshToken{},
	)
	if err != nil {
		logger.Fatalf("error while running migration: %v", err)
	}
	logger.Info("migration was successful")

	issuer, err := token.NewIssuer(map[token.Context]token.Config{
		token.TenantAccess:  {Secret: config.Config.TenantAccessToken.Secret, ExpiresIn: config.Config.TenantAccessToken.ExpiresIn},
		token.TenantRefresh: {Secret: config.Config.TenantRefreshToken.Secret, ExpiresIn: config.Config.TenantRefreshToken.ExpiresIn},
		token.AdminAccess:   {Secret: config.Config.AdminAccessToken.Secret, ExpiresIn: config.Config.AdminAccessToken.ExpiresIn},
		token.AdminRefresh:  {Secret: config.Config.AdminRefreshToken.Secret, ExpiresIn: config.Config.AdminRefreshToken.ExpiresIn},
		token.EmailVerify:   {Secret: config.Config.VerifyToken.Secret, ExpiresIn: config.Config.VerifyToken.ExpiresIn},
	})
	if err != nil {
		logger.Fatalf("token issuer setup error: %v", err)
	}

	st := store.New(db)
	resolver := identity.NewResolver(st.Users(), st.Admins())
	mail := &mailer.LogSender{Logger: logger}

	authService := services.NewAuthService(
		st.Users(), st.Outlets(), st.Roles(), st.RefreshTokens(),
		resolver, issuer, mail, logger, config.Config.PublicURL,
	)
	adminService := services.NewAdminService(st.Admins(), issuer, config.Config.AdminRegisterSecret, logger)
	userService := services.NewUserService(st.Users())
	productService := services.NewProductService(st.Products(), st.Categories())
	categoryService := services.NewCategoryService(st.Categories())
	roleService := services.NewRoleService(st.Roles())
	backofficeUserService := services.NewBackofficeUserService(st.Users())

	authMiddleware := &middlewares.AuthMiddleware{
		Issuer:   issuer,
		Resolver: resolver,
		Logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Api is healthy")
	})
	mux.Handle("GET /metrics", middlewares.MetricsHandler())

	handlers.SetupAuthRoutes(mux, authService, authMiddleware)
	handlers.SetupAdminRoutes(mux, adminService, authMiddleware)
	handlers.SetupBackofficeUserRoutes(mux, backofficeUserService, authMiddleware)
	handlers.SetupUserRoutes(mux, userService, authMiddleware)
	handlers.SetupProductRoutes(mux, productService, authMiddleware)
	handlers.SetupCategoryRoutes(mux, categoryService, authMiddleware)
	handlers.SetupRoleRoutes(mux, roleService, authMiddleware)

	addr := fmt.Sprintf(":%s", config.Config.ServerPort)
	logger.Infof("server is running on %s", config.Config.ServerPort)
	if err := http.ListenAndServe(addr, middlewares.Instrument(mux)); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
