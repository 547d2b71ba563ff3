package main

import (
	"log"
	"strings"
	"time"
	"tripbook/auth"
	"tripbook/config"
	"tripbook/db"
	"tripbook/export"
	"tripbook/utils"
	"tripbook/web"

	"tripbook/handlers"
	"tripbook/models"
	"tripbook/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

func main() {
	db.Init()
	models.Init()
	storage.Init()
	export.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/memoir/export", "/file/"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that
	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	// Bucket handlers
	authRouter.GET("/bucket/list", handlers.BucketList, models.PermissionAdmin)
	authRouter.POST("/bucket/save", handlers.BucketSave, models.PermissionAdmin)
	// User handlers
	router.POST("/user/login", handlers.UserLogin)
	router.POST("/user/create", handlers.UserSignup)
	authRouter.POST("/user/save", handlers.UserSave)
	authRouter.GET("/user/status", handlers.UserGetStatus)
	authRouter.GET("/user/list", handlers.UserList)
	authRouter.POST("/user/logout", handlers.UserLogout)
	// Trip handlers
	authRouter.GET("/trip/list", handlers.TripList, models.PermissionTrips)
	authRouter.POST("/trip/create", handlers.TripCreate, models.PermissionTrips)
	authRouter.GET("/trip/get", handlers.TripGet, models.PermissionTrips)
	authRouter.POST("/trip/save", handlers.TripSave, models.PermissionTrips)
	authRouter.POST("/trip/delete", handlers.TripDelete, models.PermissionTrips)
	authRouter.POST("/trip/cover", handlers.TripCoverUpload, models.PermissionTrips)
	// Collaborator handlers
	authRouter.GET("/collaborator/list", handlers.CollaboratorList, models.PermissionTrips)
	authRouter.POST("/collaborator/add", handlers.CollaboratorAdd, models.PermissionTrips)
	authRouter.POST("/collaborator/role", handlers.CollaboratorRole, models.PermissionTrips)
	authRouter.POST("/collaborator/remove", handlers.CollaboratorRemove, models.PermissionTrips)
	// Itinerary item handlers
	authRouter.GET("/item/list", handlers.ItemList, models.PermissionTrips)
	authRouter.POST("/item/create", handlers.ItemCreate, models.PermissionTrips)
	authRouter.POST("/item/save", handlers.ItemSave, models.PermissionTrips)
	authRouter.POST("/item/delete", handlers.ItemDelete, models.PermissionTrips)
	authRouter.POST("/item/photo/upload", handlers.ItemPhotoUpload, models.PermissionTrips)
	authRouter.POST("/item/photo/delete", handlers.ItemPhotoDelete, models.PermissionTrips)
	// Expense handlers
	authRouter.GET("/expense/list", handlers.ExpenseList, models.PermissionTrips)
	authRouter.POST("/expense/create", handlers.ExpenseCreate, models.PermissionTrips)
	authRouter.POST("/expense/delete", handlers.ExpenseDelete, models.PermissionTrips)
	// Checklist handlers
	authRouter.GET("/checklist/list", handlers.ChecklistList, models.PermissionTrips)
	authRouter.POST("/checklist/create", handlers.ChecklistCreate, models.PermissionTrips)
	authRouter.POST("/checklist/toggle", handlers.ChecklistToggle, models.PermissionTrips)
	authRouter.POST("/checklist/delete", handlers.ChecklistDelete, models.PermissionTrips)
	// Note handlers
	authRouter.GET("/note/get", handlers.NoteGet, models.PermissionTrips)
	authRouter.POST("/note/save", handlers.NoteSave, models.PermissionTrips)
	// Memoir handlers
	authRouter.GET("/memoir/get", handlers.MemoirGet, models.PermissionTrips)
	authRouter.POST("/memoir/regenerate", handlers.MemoirRegenerate, models.PermissionTrips)
	authRouter.POST("/memoir/save", handlers.MemoirSave, models.PermissionTrips)
	authRouter.POST("/memoir/photo", handlers.MemoirPhotoUpload, models.PermissionTrips)
	authRouter.GET("/memoir/export", handlers.MemoirExport, models.PermissionTrips)
	authRouter.POST("/memoir/share", handlers.MemoirShareCreate, models.PermissionTrips)

	/*
	 *	Web interface
	 */
	// Public memoir pages
	router.GET("/w/memoir/:token/", web.MemoirView)
	// Uploaded files (disk buckets)
	router.GET("/file/*path", handlers.FileFetch)
	// Misc
	router.GET("/robots.txt", web.DisallowRobots)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
