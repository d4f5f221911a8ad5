package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	result, err := storage.RunMigrations(dbStorage.DB)
	if err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}
