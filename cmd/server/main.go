package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"notes-calendar/internal/config"
	"notes-calendar/internal/logger"
	"notes-calendar/internal/server"
)

func main() {
	configFile := pflag.StringP("config", "c", "config.yml", "path to config file")
	pflag.Parse()

	// Загружаем конфигурацию из файла
	appConfig, err := config.InitConfig[config.Config](*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(appConfig.Logger, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// Уровень логирования меняется без перезапуска
	err = config.Watch[config.Config](*configFile, func(c *config.Config) {
		if err := logger.SetLevel(log, c.Logger.Level); err != nil {
			log.WithError(err).Warn("ignoring config change")
			return
		}
		log.WithField("level", c.Logger.Level).Info("config reloaded")
	}, func(err error) {
		log.WithError(err).Warn("failed to reload config")
	})
	if err != nil {
		log.WithError(err).Warn("config watch disabled")
	}

	srv, err := server.NewServer(appConfig, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create server")
	}
	if err := srv.Initialize(); err != nil {
		log.WithError(err).Fatal("failed to initialize server")
	}
	srv.ServeSwagger()

	// Канал для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := srv.Start()

	select {
	case err := <-errChan:
		log.WithError(err).Error("server error")
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("received signal")
	}

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Warn("shutdown finished with error")
	}
	log.WithFields(logrus.Fields{"grpc": srv.GRPCAddr, "http": srv.HTTPAddr}).Info("notes service stopped")
}
