package main

import (
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"notes-calendar/internal/api/http/middleware"
	"notes-calendar/internal/api/swagger"
	notesv1 "notes-calendar/pkg/proto/notes/v1"
)

// Отдельный сервер документации: отдает OpenAPI спецификацию без запуска API
func main() {
	port := pflag.StringP("port", "p", envOr("SWAGGER_PORT", "8082"), "listen port")
	pflag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	mux := http.NewServeMux()
	if err := swagger.ServeSwagger(mux, notesv1.SwaggerFS, notesv1.SwaggerFile, log); err != nil {
		log.WithError(err).Fatal("failed to load spec")
	}

	// Редирект с корня на спецификацию
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/swagger.json", http.StatusMovedPermanently)
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + *port,
		Handler:           middleware.Logging(mux, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithField("url", "http://localhost:"+*port+"/swagger.json").Info("swagger server started")
	if err := srv.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("swagger server stopped")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
