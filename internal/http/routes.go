package http

import (
	"net/http"
	"strings"

	"libratech/internal/assistant"
	"libratech/internal/httpx"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

// RouterConfig carries everything the handlers need.
type RouterConfig struct {
	Store       *store.Memory
	Ledger      *ledger.Ledger
	Librarian   *assistant.Librarian
	JWTSecret   string
	StarterHash string
}

// NewRouter assembles the full route table. The catalog and settings
// reads are public; everything else wants a bearer token, and the
// management surface wants the admin role on top.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	authHandler := NewAuthHandler(cfg.Store, cfg.Ledger, cfg.JWTSecret)
	bookHandler := NewBookHandler(cfg.Store, cfg.Ledger)
	memberHandler := NewMemberHandler(cfg.Store, cfg.Ledger)
	adminHandler := NewAdminHandler(cfg.Store, cfg.Ledger)
	circulationHandler := NewCirculationHandler(cfg.Ledger)
	reservationHandler := NewReservationHandler(cfg.Store, cfg.Ledger)
	transactionHandler := NewTransactionHandler(cfg.Store, cfg.Ledger)
	notificationHandler := NewNotificationHandler(cfg.Store, cfg.Ledger)
	dashboardHandler := NewDashboardHandler(cfg.Store, cfg.Ledger)
	settingsHandler := NewSettingsHandler(cfg.Store, cfg.Ledger)
	assistantHandler := NewAssistantHandler(cfg.Store, cfg.Librarian)

	withAuth := httpx.AuthMiddleware(cfg.JWTSecret)
	withAdmin := func(h http.Handler) http.Handler {
		return withAuth(httpx.RequireAdmin(h))
	}

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/auth/member/login", MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.MemberLogin),
	}))
	router.Handle("/auth/admin/login", MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.AdminLogin),
	}))
	router.Handle("/auth/register", MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Register),
	}))
	router.Handle("/me", withAuth(MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(authHandler.Me),
	})))

	router.Handle("/books", MethodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(bookHandler.List),
		http.MethodPost: withAdmin(http.HandlerFunc(bookHandler.Create)),
	}))
	router.Handle("/books/", MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/history") {
				withAuth(http.HandlerFunc(bookHandler.History)).ServeHTTP(w, r)
				return
			}
			bookHandler.Get(w, r)
		}),
	}))

	router.Handle("/members", withAdmin(MethodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(memberHandler.List),
		http.MethodPost: memberHandler.Create(cfg.StarterHash),
	})))
	router.Handle("/admins", withAdmin(MethodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(adminHandler.List),
		http.MethodPost: http.HandlerFunc(adminHandler.Create),
	})))

	router.Handle("/circulation/checkout", withAdmin(MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(circulationHandler.Checkout),
	})))
	router.Handle("/circulation/checkin", withAdmin(MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(circulationHandler.Checkin),
	})))

	router.Handle("/reservations", withAuth(MethodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(reservationHandler.List),
		http.MethodPost: http.HandlerFunc(reservationHandler.Create),
	})))
	router.Handle("/transactions", withAuth(MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(transactionHandler.List),
	})))

	router.Handle("/notifications", withAuth(MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(notificationHandler.List),
	})))
	router.Handle("/notifications/", withAuth(MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/notifications/read-all" {
				notificationHandler.MarkAllRead(w, r)
				return
			}
			if strings.HasSuffix(r.URL.Path, "/read") {
				notificationHandler.MarkRead(w, r)
				return
			}
			http.NotFound(w, r)
		}),
	})))

	router.Handle("/dashboard/stats", withAdmin(MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(dashboardHandler.Stats),
	})))

	router.Handle("/settings", MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(settingsHandler.Get),
		http.MethodPut: withAdmin(http.HandlerFunc(settingsHandler.Update)),
	}))

	router.Handle("/assistant/ask", withAuth(MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(assistantHandler.Ask),
	})))

	return router
}
