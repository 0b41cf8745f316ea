package middleware

import (
	"context"
	"net/http"

	"github.com/frolovsnails/FSN-BookingService/internal/api/handlers"
)

type contextKey string

const (
	phoneContextKey contextKey = "clientPhone"

	// HeaderClientPhone телефон аутентифицированного клиента,
	// проставляется API-шлюзом после проверки токена
	HeaderClientPhone = "X-Client-Phone"

	// HeaderMasterRole признак мастерской сессии от API-шлюза
	HeaderMasterRole = "X-Master"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgMasterOnly   = "операция доступна только мастеру"
)

// ClientAuth требует телефон клиента в заголовке и кладет его в контекст
func ClientAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		phone := r.Header.Get(HeaderClientPhone)
		if phone == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), phoneContextKey, phone)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MasterAuth пропускает только запросы с мастерской ролью
func MasterAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderMasterRole) != "true" {
			handlers.RespondError(w, http.StatusForbidden, msgMasterOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientPhone извлекает телефон клиента из контекста запроса
func ClientPhone(ctx context.Context) string {
	phone, _ := ctx.Value(phoneContextKey).(string)
	return phone
}
