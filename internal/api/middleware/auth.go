package middleware

import (
	"net/http"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
)

// adminKeyHeader заголовок с админским ключом
const adminKeyHeader = "X-Admin-Key"

// AdminAuth закрывает админские ручки статическим ключом из окружения.
// Пустой сконфигурированный ключ — ошибка эксплуатации: отвечаем 500,
// а не пускаем всех подряд.
func AdminAuth(adminKey string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				log.Error("admin auth: ADMIN_API_KEY is not set, rejecting %s %s", r.Method, r.URL.Path)
				handlers.RespondInternalError(w)
				return
			}

			if r.Header.Get(adminKeyHeader) != adminKey {
				log.Warn("admin auth: invalid key for %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondUnauthorized(w, "invalid admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
