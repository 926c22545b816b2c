package routes

import (
	"io/fs"
	"net/http"

	"github.com/Lieutenant23/Construapp/config"
	"github.com/Lieutenant23/Construapp/handlers"
	"github.com/Lieutenant23/Construapp/web"
)

// withCORS allows cross-origin calls from the configured origins only.
func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")
		}

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	expenseHandler *handlers.ExpenseHandler,
	attachmentHandler *handlers.AttachmentHandler,
	reportHandler *handlers.ReportHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	public := func(h http.HandlerFunc) http.Handler {
		return withCORS(cfg.AllowedOrigins, handlers.RecoverWrapper(h))
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return withCORS(cfg.AllowedOrigins, handlers.RecoverWrapper(handlers.RequireAuth(cfg.JWTSecret, h)))
	}

	// Auth routes
	mux.Handle("POST /auth/signup", public(authHandler.Signup))
	mux.Handle("POST /auth/login", public(authHandler.Login))

	// Project routes
	mux.Handle("GET /projects", protected(projectHandler.ListProjects))
	mux.Handle("POST /projects", protected(projectHandler.CreateProject))
	mux.Handle("PUT /projects/{id}", protected(projectHandler.UpdateProject))
	mux.Handle("DELETE /projects/{id}", protected(projectHandler.DeleteProject))

	// Expense routes
	mux.Handle("GET /projects/{id}/expenses", protected(expenseHandler.ListExpenses))
	mux.Handle("POST /projects/{id}/expenses", protected(expenseHandler.CreateExpense))
	mux.Handle("PUT /expenses/{id}", protected(expenseHandler.UpdateExpense))
	mux.Handle("DELETE /expenses/{id}", protected(expenseHandler.DeleteExpense))

	// Attachment routes
	mux.Handle("POST /expenses/{id}/attachments", protected(attachmentHandler.UploadAttachment))
	mux.Handle("DELETE /attachments/{id}", protected(attachmentHandler.DeleteAttachment))

	// Report routes (same aggregation, three encodings)
	mux.Handle("GET /projects/{id}/report", protected(reportHandler.ProjectReportJSON))
	mux.Handle("GET /projects/{id}/report/json", protected(reportHandler.ProjectReportJSON))
	mux.Handle("GET /projects/{id}/report/csv", protected(reportHandler.ProjectReportCSV))
	mux.Handle("GET /projects/{id}/report/pdf", protected(reportHandler.ProjectReportPDF))

	// Preflight for parameterized routes
	mux.Handle("OPTIONS /", withCORS(cfg.AllowedOrigins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// Locally stored attachment files
	if cfg.StorageType == "local" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	// Embedded client UI
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /", http.FileServer(http.FS(staticFS)))

	return mux
}
