// Основной пакет приложения AINote. Отвечает за запуск приложения, инициализацию базы данных, миграцию моделей и запуск основного сервера приложения.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aisa-it/ainote/ainote.go/internal/ainote"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/config"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/dao"
	"github.com/aisa-it/ainote/ainote.go/internal/ainote/gormlogger"
)

var version string = "DEV"

var models = []any{&dao.Article{}, &dao.ArticleAttachment{}}

// main запускает приложение: читает конфигурацию, подключается к БД,
// мигрирует модели и стартует HTTP-сервер.
//
// Пример запуска: go run main.go --noMigration --trace
func main() {
	paramQueries := flag.Bool("paramQueries", true, "Mask queries params in log")
	noMigration := flag.Bool("noMigration", false, "Turn off DB migration")
	trace := flag.Bool("trace", false, "Verbose logs and sql trace")
	sqlitePath := flag.String("sqlite", "", "Use SQLite file instead of Postgres (dev mode)")
	cleanup := flag.Bool("cleanup", false, "Remove storage files without attachment records and exit")
	flag.Parse()

	cfg := config.ReadConfig()
	dao.Config = cfg

	if *trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Set prod log format
	if version != "DEV" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{})))
	}

	slog.Info("AINote start.")

	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.NewGormLogger(slog.Default(), time.Second*4, *paramQueries),
	}

	var db *gorm.DB
	var err error
	if *sqlitePath != "" {
		db, err = gorm.Open(sqlite.Open(*sqlitePath), gormConfig)
	} else {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseDSN,
			PreferSimpleProtocol: false, // disables implicit prepared statement usage
		}), gormConfig)
	}
	if err != nil {
		slog.Error("Fail init DB connection", "err", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Fail set settings to conn pool", "err", err)
		os.Exit(1)
	}
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute * 15)

	if !*noMigration {
		if err := db.AutoMigrate(models...); err != nil {
			slog.Error("Migration fail", "err", err)
			os.Exit(1)
		}
	}

	if *cleanup {
		storage, err := ainote.NewStorage(cfg)
		if err != nil {
			slog.Error("Fail init file storage", "err", err)
			os.Exit(1)
		}
		dao.FileStorage = storage

		removed, err := dao.CleanOrphanAttachments(db)
		if err != nil {
			slog.Error("Cleanup fail", "err", err)
			os.Exit(1)
		}
		slog.Info("Cleanup done", "removed", removed)
		return
	}

	if cfg.Demo {
		if err := dao.SeedDemo(db); err != nil {
			slog.Error("Demo seed fail", "err", err)
			os.Exit(1)
		}
	}

	ainote.Server(db, cfg, version)
}
