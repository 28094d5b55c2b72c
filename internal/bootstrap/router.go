package bootstrap

import (
	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/braetspilscafeen/go-catalog-backend/config"
	httpapi "github.com/braetspilscafeen/go-catalog-backend/internal/api/http"
	apimw "github.com/braetspilscafeen/go-catalog-backend/internal/api/http/middleware"
	authhttp "github.com/braetspilscafeen/go-catalog-backend/internal/auth/http"
	authmw "github.com/braetspilscafeen/go-catalog-backend/internal/auth/middleware"
	authrepo "github.com/braetspilscafeen/go-catalog-backend/internal/auth/repository"
	authservice "github.com/braetspilscafeen/go-catalog-backend/internal/auth/service"
	gameshttp "github.com/braetspilscafeen/go-catalog-backend/internal/games/http"
	gamesrepo "github.com/braetspilscafeen/go-catalog-backend/internal/games/repository"
	gamesservice "github.com/braetspilscafeen/go-catalog-backend/internal/games/service"
	"github.com/braetspilscafeen/go-catalog-backend/internal/stats"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	AuthClient  *fbauth.Client
	Firestore   *firestore.Client
	Redis       *redis.Client
}

// BuildRouter wires repositories, services and handlers into a gin
// engine. It also returns the stats scheduler so the caller owns its
// lifecycle.
func BuildRouter(dep RouterDeps) (*gin.Engine, *stats.Scheduler) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))
	r.Use(apimw.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Firestore, dep.Redis)
	healthHandler.RegisterRoutes(r)

	profileRepo := authrepo.NewProfileRepo(dep.Firestore)
	profileCache := authrepo.NewProfileCache(dep.Redis, dep.Config.Redis.ProfileCacheTTL)
	resolver := authservice.NewResolver(profileRepo, profileCache)

	gameRepo := gamesrepo.NewGameRepo(dep.Firestore)
	gameService := gamesservice.NewGameService(gameRepo)

	optionalUser := authmw.OptionalUser(dep.AuthClient)
	requireUser := authmw.RequireUser(dep.AuthClient)
	requireAdmin := authmw.RequireAdmin(resolver)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(requireUser)
	authhttp.New(resolver).Register(authGroup)

	gameshttp.New(gameService).Register(api, optionalUser, requireUser, requireAdmin)

	statsStore := stats.NewStore(dep.Redis)
	stats.NewHandler(statsStore).Register(api)
	scheduler := stats.NewScheduler(gameRepo, statsStore)

	return r, scheduler
}
