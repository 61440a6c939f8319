package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PerfectPlumbing/plumbing-ops/internal/cache"
	"github.com/PerfectPlumbing/plumbing-ops/internal/config"
	dbpkg "github.com/PerfectPlumbing/plumbing-ops/internal/db"
	"github.com/PerfectPlumbing/plumbing-ops/internal/middleware"
	"github.com/PerfectPlumbing/plumbing-ops/internal/routes"
	"github.com/PerfectPlumbing/plumbing-ops/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	readCache := cache.New(cfg)
	files := storage.NewFileStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, readCache, files, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
