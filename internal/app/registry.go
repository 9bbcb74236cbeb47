package app

import (
	"database/sql"
	"path/filepath"

	"go-shiftdesk/internal/auth"
	"go-shiftdesk/internal/employee"
	"go-shiftdesk/internal/leaverequest"
	"go-shiftdesk/internal/messaging/kafka"
	"go-shiftdesk/internal/rbac"
	"go-shiftdesk/internal/rbac/infra"
	"go-shiftdesk/internal/schedule"
	"go-shiftdesk/internal/shared/counter"
	"go-shiftdesk/internal/shift"
	"go-shiftdesk/internal/shiftswap"
	"go-shiftdesk/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	storeRepo := store.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	leaveRepo := leaverequest.NewRepository(gormDB)
	swapRepo := shiftswap.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(employeeRepo, rbacService)
	storeService := store.NewService(storeRepo)
	shiftService := shift.NewService(shiftRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb)
	scheduleService := schedule.NewService(scheduleRepo, schedule.NewHTTPEngineClient(), rdb)
	leaveService := leaverequest.NewService(db, leaveRepo, outboxRepo)
	swapService := shiftswap.NewService(db, swapRepo, scheduleService, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	storeHandler := store.NewHandler(storeService)
	shiftHandler := shift.NewHandler(shiftService)
	employeeHandler := employee.NewHandler(employeeService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	leaveHandler := leaverequest.NewHandler(leaveService)
	swapHandler := shiftswap.NewHandler(swapService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		store.RegisterRoutes(api, storeHandler)
		shift.RegisterRoutes(api, shiftHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService)
		leaverequest.RegisterRoutes(api, leaveHandler, rdb)
		shiftswap.RegisterRoutes(api, swapHandler, rdb)
	}

	rbac.RegisterRoutes(router, rbacHandler)

	return nil
}
