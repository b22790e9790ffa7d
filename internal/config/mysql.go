package config

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// MySQLConfig parses dsn and turns parseTime on so DATETIME and TIMESTAMP
// columns scan into time.Time.
func MySQLConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	cfg.ParseTime = true
	return cfg, nil
}
