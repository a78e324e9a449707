package db

import (
	"path/filepath"

	"supportdesk/config"
	"supportdesk/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

// Connect opens the database (sqlite3 by default) and runs the basic
// automigrate for the chat schema unless disabled via AUTOMIGRATE=0.
func Connect(conf config.Configuration, log *zap.Logger) (*gorm.DB, error) {
	database := conf.Database
	if database == "" {
		database = "sqlite3"
	}

	var (
		db  *gorm.DB
		err error
	)

	if database == "postgres" || database == "postgresql" {
		log.Info("connecting to postgresql")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		log.Info("connecting to sqlite3")
		dir := filepath.Dir("db/chat_support.db")
		db, err = gorm.Open("sqlite3", dir+"/chat_support.db")
	}

	if err != nil {
		log.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	if conf.AutoMigrate {
		db.AutoMigrate(
			&models.Conversation{},
			&models.Message{},
			&models.Ticket{},
		)
	}

	return db, nil
}
