package db

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/logify-service/pkg/models"
	"liyu1981.xyz/logify-service/pkg/common"
	_ "liyu1981.xyz/logify-service/pkg/testing"

	"gorm.io/gorm"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	dialector := UseMemorySqliteDialector()

	instance := GetInstance(dialector)
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{
		"users", "tickets", "comments", "status_changes", "audit_logs",
		"meter_readings", "electricity_meters", "electricity_readings",
	}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instance := GetInstance(UseMemorySqliteDialector())
			instances <- instance
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestUseDialector(t *testing.T) {
	assert.Equal(t, "sqlite", UseDialector("memory", "").Name())
	assert.Equal(t, "sqlite", UseDialector("file", "logify.db").Name())
}

func TestForeignKeysOnEveryConnection(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	sqlDB, err := instance.Conn.DB()
	require.NoError(t, err)

	ctx := context.Background()
	const connCount = 3
	conns := make([]*sql.Conn, 0, connCount)
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	// hold the connections open so the pool has to hand out distinct ones
	for range connCount {
		conn, err := sqlDB.Conn(ctx)
		require.NoError(t, err)
		conns = append(conns, conn)

		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled)
	}

	err = instance.Conn.Create(&models.Comment{
		TicketID: uuid.NewString(),
		AuthorID: uuid.NewString(),
		Message:  "orphan",
	}).Error
	assert.Error(t, err, "comments must reference an existing ticket")
}
