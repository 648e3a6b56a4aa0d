package router

import (
	"net/http"

	_ "pet-clinic-rowstore/docs"
	"pet-clinic-rowstore/internal/adapters/storage"
	"pet-clinic-rowstore/internal/adapters/storage/memory"
	"pet-clinic-rowstore/internal/adapters/storage/records"
	"pet-clinic-rowstore/internal/domain/owners"
	"pet-clinic-rowstore/internal/domain/pets"
	"pet-clinic-rowstore/internal/domain/vets"
	"pet-clinic-rowstore/internal/domain/visits"
	"pet-clinic-rowstore/internal/middleware"
	"pet-clinic-rowstore/internal/platform/logger"
	"pet-clinic-rowstore/internal/platform/metrics"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const BasePath = "/petclinic/api"

type Options struct {
	// Sesión ya abierta (storage.Open). Si es nil, in-memory (modo dev/tests).
	Session rowstore.Session

	Logger  logger.Logger
	Metrics *metrics.Collector // nil = sin /metrics

	EnableCORS    bool
	EnableSwagger bool
}

func NewRouter(opts Options) *chi.Mux {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	sess := opts.Session
	if sess == nil {
		sess = storage.Instrument(memory.NewSession(), 0, log, opts.Metrics)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(opts.Metrics))

	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	// DAOs sobre la sesión compartida
	ownerDAO := records.NewOwnerDAO(sess)
	petDAO := records.NewPetDAO(sess)
	visitDAO := records.NewVisitDAO(sess)
	vetDAO := records.NewVetDAO(sess)

	// Services por módulo (visits <- pets <- owners; vets aparte)
	ownersSvc := owners.NewService(ownerDAO, petDAO)
	petsSvc := pets.NewService(petDAO, ownersSvc, visitDAO)
	visitsSvc := visits.NewService(visitDAO, petsSvc)
	vetsSvc := vets.NewService(vetDAO)

	// Rutas por módulo
	r.Route(BasePath, func(api chi.Router) {
		owners.RegisterRoutes(api, ownersSvc)
		pets.RegisterRoutes(api, petsSvc)
		visits.RegisterRoutes(api, visitsSvc)
		vets.RegisterRoutes(api, vetsSvc)
	})

	return r
}
