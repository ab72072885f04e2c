package handler

import (
	"net/http"
	"sync"

	"todolist/config"
	"todolist/di"
	"todolist/shared/logger"
	"todolist/shared/timezone"
	todoHTTP "todolist/transport/http"
)

var (
	server *todoHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request only.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		timezone.Load(cfg.App.Timezone)

		server = di.InitializeService()
	})

	server.Adaptor()(w, r)
}
