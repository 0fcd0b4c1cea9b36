package database

import (
	"database/sql"
	"fmt"
	"os"

	"shiftly_backend/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// Config holds the connection parameters for the Postgres pool.
type Config struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SchemaPath string
}

// InitDB opens the database connection, verifies it with a ping and applies
// the schema file when one is configured.
func InitDB(cfg Config) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("could not open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	DB = db
	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"host": cfg.Host, "database": cfg.Name})

	if err := applySchema(DB, cfg.SchemaPath); err != nil {
		return err
	}
	return nil
}

// applySchema reads and executes the schema SQL file. The schema uses
// CREATE TABLE IF NOT EXISTS throughout, so re-running it is safe.
func applySchema(db *sql.DB, schemaPath string) error {
	if schemaPath == "" {
		utils.LogInfo("No schema path provided, skipping schema application")
		return nil
	}
	content, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("could not read schema file %s: %w", schemaPath, err)
	}
	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	utils.LogInfo("Database schema applied", map[string]interface{}{"path": schemaPath})
	return nil
}

// GetDB returns the database connection pool.
func GetDB() *sql.DB {
	return DB
}
