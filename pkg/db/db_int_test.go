package db

import (
	"os"
	"path/filepath"
	"testing"

	"liyu1981.xyz/logify-service/pkg/common"
	constant "liyu1981.xyz/logify-service/pkg/common"
)

func TestWithFilePath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(constant.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")
	defer func() {
		_ = os.Remove(testPath)
	}()

	instance := GetInstance(UseSqliteDialector(testPath))
	if instance == nil || instance.Conn == nil {
		t.Fatal("Expected non-nil DB connection")
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
