package main

import (
	"fmt"
	"os"

	"evfleet/backend/foundation/web"
	"evfleet/backend/internal/commands"
	"evfleet/backend/internal/pkg/config"
	"evfleet/backend/internal/pkg/logger"
	"evfleet/backend/internal/pkg/repository/postgresql"
	"evfleet/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, commands.ErrHelp) {
			return
		}
		logrus.WithError(err).Fatal("startup failed")
	}
}

func run() error {
	logger.Setup()

	var flags struct {
		Web struct {
			Port string `conf:"default::8080"`
		}
		conf.Version
	}
	flags.Version.SVN = "1.0"
	flags.Version.Desc = "ev fleet backend"

	if err := conf.Parse(os.Args[1:], "EVFLEET", &flags); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage("EVFLEET", &flags)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return commands.ErrHelp
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString("EVFLEET", &flags)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return commands.ErrHelp
		}
		return errors.Wrap(err, "parsing config")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	postgresDB := postgresql.NewDatabase(
		cfg.DBUsername,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DisableTLS,
	)
	defer postgresDB.Close()

	commands.MigrateUP(postgresDB)

	redisDB := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	defer redisDB.Close()

	app := web.NewApp()

	r := router.NewRouter(app, postgresDB, redisDB, flags.Web.Port)

	logrus.WithField("port", flags.Web.Port).Info("starting server")
	return r.Init()
}
