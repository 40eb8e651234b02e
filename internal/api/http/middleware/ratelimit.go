package middleware

import (
	"net"
	"net/http"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// maxTrackedClients сколько клиентов держим в памяти одновременно
const maxTrackedClients = 4096

// RateLimit ограничивает количество запросов от одного клиента (по IP).
// rps - запросов в секунду, burst - разрешает кратковременные всплески.
// Лимитеры давно неактивных клиентов вытесняются из LRU.
func RateLimit(next http.Handler, rps int, burst int, log logrus.FieldLogger) http.Handler {
	// Значения по умолчанию если не указаны
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = 10
	}

	limiters, err := lru.New[string, *rate.Limiter](maxTrackedClients)
	if err != nil {
		// размер константный и положительный
		panic(err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)

		limiter, ok := limiters.Get(client)
		if !ok {
			// Параллельный запрос мог успеть добавить свой лимитер
			fresh := rate.NewLimiter(rate.Limit(rps), burst)
			if prev, found, _ := limiters.PeekOrAdd(client, fresh); found {
				limiter = prev
			} else {
				limiter = fresh
			}
		}

		if !limiter.Allow() {
			log.WithFields(logrus.Fields{
				"path":   r.URL.Path,
				"client": client,
			}).Warn("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(1))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
