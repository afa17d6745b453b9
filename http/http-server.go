package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/stimmen-archiv/backend/subm"
)

type HttpServer struct {
	submSrvc *subm.Srvc
	router   *chi.Mux
}

func NewHttpServer(submSrvc *subm.Srvc) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("stimmen", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         3000,
	}))

	server := &HttpServer{
		submSrvc: submSrvc,
		router:   router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router, mainly for tests.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/", httpserver.createSubmission)
	r.Get("/responses", httpserver.listResponses)
	r.NotFound(httpserver.methodNotAllowed)
	r.MethodNotAllowed(httpserver.methodNotAllowed)
}

// methodNotAllowed is the catch-all: bare OPTIONS gets an empty preflight
// answer, everything else outside the two endpoints is a 405.
func (httpserver *HttpServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setCorsHeaders(w)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeErrorJson(w, http.StatusMethodNotAllowed, "Method not allowed")
}
