package main

import (
	"context"
	"database/sql"
	"fmt"

	"dispatch/api"
	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	gormDB := mustOpenDatabase(config)
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	root := cmd.NewCompositionRoot(config, gormDB)
	startWebServer(&root, config)
}

func mustOpenDatabase(config cmd.Config) *gorm.DB {
	sqlDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	if err = sqlDB.Ping(); err != nil {
		log.Fatalf("Cannot reach database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Cannot initialize ORM: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, config cmd.Config) {
	tokens, err := root.CreateTokenService(config)
	if err != nil {
		log.Fatalf("Token service error: %v", err)
	}

	openapiJSON, err := api.JSON(context.Background())
	if err != nil {
		log.Fatalf("OpenAPI document error: %v", err)
	}

	e := echo.New()
	httpin.RegisterRoutes(
		e,
		root.CreateHTTPServer(),
		httpin.NewAuthHandler(tokens, config.AdminUsername, config.AdminPassword),
		tokens,
		openapiJSON,
	)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
