package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"koinonia/internal/database"
	"koinonia/internal/handlers"
	"koinonia/internal/repositories"
	"koinonia/internal/routes"
	"koinonia/internal/services"
)

type Server struct {
	port int
}

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	s := &Server{
		port: port,
	}

	// Dependency injection
	taxonomyRepo := repositories.NewTaxonomyRepository(pool)
	entryRepo := repositories.NewEntryRepository(pool)
	salonRepo := repositories.NewSalonRepository(pool)
	syllabusRepo := repositories.NewSyllabusRepository(pool)

	syllabusService := services.NewSyllabusService(taxonomyRepo, entryRepo, syllabusRepo)
	searchService := services.NewSearchService(salonRepo, taxonomyRepo, entryRepo)

	syllabusHandler := handlers.NewSyllabusHandler(syllabusService)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyRepo)
	readingHandler := handlers.NewReadingHandler(entryRepo)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, syllabusHandler, taxonomyHandler, readingHandler, searchHandler)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
