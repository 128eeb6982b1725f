package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventchat/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth wraps every route that needs a valid bearer token.
func NewRouter(
	users *controllers.UserController,
	events *controllers.EventController,
	messages *controllers.MessageController,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /hello", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello, World!"))
	})

	// Users
	mux.HandleFunc("POST /user/register", users.Register)
	mux.HandleFunc("POST /user/login", users.Login)
	mux.HandleFunc("POST /user/logout", requireAuth(users.Logout))
	mux.HandleFunc("GET /user/{name}", requireAuth(users.GetUser))

	// Events
	mux.HandleFunc("POST /event/create", requireAuth(events.Create))
	mux.HandleFunc("GET /event/all", requireAuth(events.All))
	mux.HandleFunc("GET /event/{name}", requireAuth(events.Get))
	mux.HandleFunc("POST /event/join/{name}", requireAuth(events.Join))
	mux.HandleFunc("POST /event/leave/{name}", requireAuth(events.Leave))

	// Messages
	mux.HandleFunc("POST /event/send/{name}", requireAuth(messages.Send))
	mux.HandleFunc("GET /event/messages/{name}", requireAuth(messages.List))
	mux.HandleFunc("GET /event/message/{name}/{id}", requireAuth(messages.Get))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
