package swagger

import (
	"embed"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ServeSwagger добавляет маршруты OpenAPI спецификации в указанный mux:
//   - GET /swagger.json - основной файл specFile из specs
//   - GET /swagger/specs/ - все файлы из specs
func ServeSwagger(mux *http.ServeMux, specs embed.FS, specFile string, log logrus.FieldLogger) error {
	spec, err := specs.ReadFile(specFile)
	if err != nil {
		return err
	}

	mux.Handle("/swagger/specs/", http.StripPrefix("/swagger/specs", http.FileServer(http.FS(specs))))

	mux.HandleFunc("/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		switch r.Method {
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		case http.MethodGet, http.MethodHead:
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write(spec)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	log.Info("OpenAPI spec available at /swagger.json")
	return nil
}
