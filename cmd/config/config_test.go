package config_test

import (
	"strings"
	"testing"

	"github.com/marketsync/seller-hub/cmd/config"
)

func TestConfig_GetDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "db.local"
	cfg.Database.Port = 3306
	cfg.Database.User = "hub"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "sellerhub"

	dsn := cfg.GetDSN()

	if !strings.HasPrefix(dsn, "hub:secret@tcp(db.local:3306)/sellerhub?") {
		t.Fatalf("GetDSN() = %q, wrong address part", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("GetDSN() = %q, missing parseTime", dsn)
	}
	// Matched rows, not changed rows: a no-op UPDATE on an existing
	// inventory record must not read as zero rows affected.
	if !strings.Contains(dsn, "clientFoundRows=true") {
		t.Fatalf("GetDSN() = %q, missing clientFoundRows", dsn)
	}
}
