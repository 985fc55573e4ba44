package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux (no third-party
// router dependency needed for this route surface).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterJSISRoutes wires the submission, upload and report routes.
// The browser form posts cross-origin, so the POST endpoints answer
// CORS preflights.
func (r *Router) RegisterJSISRoutes(submit *SubmitHandler, photo *PhotoHandler, records *RecordsHandler, export *ExportHandler) {
	r.Handle("/api/v1/jsis/submit", withCORS(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		submit.Submit(w, req)
	}))

	r.Handle("/api/v1/jsis/photo", withCORS(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		photo.Upload(w, req)
	}))

	r.Handle("/api/v1/jsis/records/export", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		export.Export(w, req)
	})

	// record-scoped subroutes: {id}/send, {id}/status
	r.Handle("/api/v1/jsis/records/", withCORS(records.ServeHTTP))
}
