package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/controllers"
	"github.com/servilimp/servilimp-app/middlewares"
	"github.com/servilimp/servilimp-app/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	authCtrl := controllers.NewAuthController(db)
	userCtrl := controllers.NewUserController(db)
	clientCtrl := controllers.NewClientController(db)
	objectiveCtrl := controllers.NewObjectiveController(db)
	sectorCtrl := controllers.NewSectorController(db)
	supplyCtrl := controllers.NewSupplyController(db)
	usageCtrl := controllers.NewSupplyUsageController(db)
	recordCtrl := controllers.NewCleaningRecordController(db)
	observationCtrl := controllers.NewObservationController(db)
	messageCtrl := controllers.NewMessageController(db)

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "ServiLimp API is running"})
	})
	api.POST("/login", middlewares.NewLoginRateLimiter(), authCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/logout", authCtrl.Logout)
	auth.GET("/me", authCtrl.Me)

	adminOnly := middlewares.RequireRoles(models.RoleAdmin)
	adminOrSupervisor := middlewares.RequireRoles(models.RoleAdmin, models.RoleSupervisor)

	// USERS
	auth.GET("/users", adminOrSupervisor, userCtrl.GetAllUsers)
	auth.POST("/users", adminOnly, userCtrl.CreateUser)
	auth.PUT("/users/:user_id", adminOnly, userCtrl.UpdateUser)
	auth.DELETE("/users/:user_id", adminOnly, userCtrl.DeleteUser)

	// CLIENTS
	auth.GET("/clients", clientCtrl.GetAllClients)
	auth.POST("/clients", adminOrSupervisor, clientCtrl.CreateClient)
	auth.PUT("/clients/:client_id", adminOrSupervisor, clientCtrl.UpdateClient)
	auth.DELETE("/clients/:client_id", adminOrSupervisor, clientCtrl.DeleteClient)

	// OBJECTIVES
	auth.GET("/objectives", objectiveCtrl.GetAllObjectives)
	auth.POST("/objectives", adminOrSupervisor, objectiveCtrl.CreateObjective)
	auth.PUT("/objectives/:objective_id", adminOrSupervisor, objectiveCtrl.UpdateObjective)
	auth.DELETE("/objectives/:objective_id", adminOrSupervisor, objectiveCtrl.DeleteObjective)
	auth.GET("/objectives/:objective_id/sectors", objectiveCtrl.GetObjectiveSectors)

	// SECTORS
	auth.GET("/sectors", sectorCtrl.GetAllSectors)
	auth.POST("/sectors", adminOrSupervisor, sectorCtrl.CreateSector)
	auth.PUT("/sectors/:sector_id", adminOrSupervisor, sectorCtrl.UpdateSector)
	auth.DELETE("/sectors/:sector_id", adminOrSupervisor, sectorCtrl.DeleteSector)

	// SUPPLIES
	auth.GET("/supplies", supplyCtrl.GetAllSupplies)
	auth.POST("/supplies", adminOrSupervisor, supplyCtrl.CreateSupply)
	auth.PUT("/supplies/:supply_id", adminOrSupervisor, supplyCtrl.UpdateSupply)
	auth.DELETE("/supplies/:supply_id", adminOrSupervisor, supplyCtrl.DeleteSupply)

	// SUPPLY USAGE (stock ledger)
	auth.GET("/supply-usage", usageCtrl.GetAllSupplyUsage)
	auth.POST("/supply-usage", usageCtrl.CreateSupplyUsage)

	// CLEANING RECORDS (append-only)
	auth.GET("/cleaning-records", recordCtrl.GetAllCleaningRecords)
	auth.POST("/cleaning-records", recordCtrl.CreateCleaningRecord)

	// OBSERVATIONS (append-only)
	auth.GET("/observations", observationCtrl.GetAllObservations)
	auth.POST("/observations", observationCtrl.CreateObservation)

	// MESSAGES
	auth.GET("/messages", messageCtrl.GetMessages)
	auth.POST("/messages", messageCtrl.SendMessage)
	auth.PUT("/messages/:message_id/read", messageCtrl.MarkMessageRead)
	auth.GET("/messages/unread/count", messageCtrl.GetUnreadCount)

	return r
}
