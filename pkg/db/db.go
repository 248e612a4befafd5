package db

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	constant "liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// Models lists every table owned by the service, in dependency order.
var Models = []any{
	&models.User{},
	&models.Ticket{},
	&models.Comment{},
	&models.StatusChange{},
	&models.AuditLog{},
	&models.MeterReading{},
	&models.ElectricityMeter{},
	&models.ElectricityReading{},
}

func GetInstance(dialector gorm.Dialector) *DB {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(Models...)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}
	})
	return instance
}

// sqliteParams turn foreign keys on for every pooled connection, not only the first one.
const sqliteParams = "_foreign_keys=on"

func UseSqliteDialector(dbPath string) gorm.Dialector {
	if dbPath == "" {
		dbPath = "logify.db"
	}
	return sqlite.Open(dbPath + "?" + sqliteParams)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared&" + sqliteParams)
}

// UseDialector picks the dialector matching the configured LOGIFY_DB_TYPE.
func UseDialector(dbType string, dbPath string) gorm.Dialector {
	switch dbType {
	case "memory":
		return UseMemorySqliteDialector()
	default:
		return UseSqliteDialector(dbPath)
	}
}
