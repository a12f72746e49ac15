package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/barbertime/agenda-api/internal/audit"
	"github.com/barbertime/agenda-api/internal/config"
	dbpkg "github.com/barbertime/agenda-api/internal/db"
	"github.com/barbertime/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// limpeza noturna da auditoria
	auditLogger := audit.New(db)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		removed, err := auditLogger.Prune(cfg.AuditRetentionDay)
		if err != nil {
			log.Printf("audit prune failed: %v", err)
			return
		}
		log.Printf("audit prune removed %d rows", removed)
	}); err != nil {
		log.Fatalf("failed to schedule audit prune: %v", err)
	}
	scheduler.Start()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
