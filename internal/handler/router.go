package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hr-payroll-api/internal/middleware"
)

// resourceHandler - единый набор CRUD-операций ресурса
type resourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request, id int64)
	Update(w http.ResponseWriter, r *http.Request, id int64)
	Delete(w http.ResponseWriter, r *http.Request, id int64)
}

// Router настраивает маршруты API
type Router struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	regionH *RegionHandler
	orgH    *OrganizationHandler
	empH    *EmployeeHandler
	calcH   *CalculationHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	regionH *RegionHandler,
	orgH *OrganizationHandler,
	empH *EmployeeHandler,
	calcH *CalculationHandler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:     http.NewServeMux(),
		logger:  logger,
		regionH: regionH,
		orgH:    orgH,
		empH:    empH,
		calcH:   calcH,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/api/regions", r.resource("/api/regions", r.regionH))
	r.mux.HandleFunc("/api/regions/", r.resource("/api/regions", r.regionH))
	r.mux.HandleFunc("/api/organizations", r.resource("/api/organizations", r.orgH))
	r.mux.HandleFunc("/api/organizations/", r.resource("/api/organizations", r.orgH))
	r.mux.HandleFunc("/api/employees", r.resource("/api/employees", r.empH))
	r.mux.HandleFunc("/api/employees/", r.resource("/api/employees", r.empH))
	r.mux.HandleFunc("/api/calculations", r.resource("/api/calculations", r.calcH))
	r.mux.HandleFunc("/api/calculations/", r.resource("/api/calculations", r.calcH))

	// Отчёты регистрируются точными путями, они перекрывают
	// поддеревный маршрут /api/calculations/
	r.mux.HandleFunc("/api/calculations/reports/high-salary", r.reportOnly(r.calcH.HighSalaries))
	r.mux.HandleFunc("/api/calculations/reports/region", r.reportOnly(r.calcH.OrganizationSummaries))
	r.mux.HandleFunc("/api/calculations/reports/average-salary", r.reportOnly(r.calcH.AverageSalary))
	r.mux.HandleFunc("/api/calculations/reports/salaries-vacations", r.reportOnly(r.calcH.SalariesAndVacations))

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// resource диспетчеризует запросы коллекции и элемента ресурса
func (r *Router) resource(prefix string, h resourceHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimPrefix(req.URL.Path, prefix)
		path = strings.Trim(path, "/")

		// Коллекция: GET список, POST создание
		if path == "" {
			switch req.Method {
			case http.MethodGet:
				h.List(w, req)
			case http.MethodPost:
				h.Create(w, req)
			default:
				respondError(w, r.logger, http.StatusMethodNotAllowed, "method not allowed")
			}
			return
		}

		if strings.Contains(path, "/") {
			respondError(w, r.logger, http.StatusNotFound, "not found")
			return
		}

		id, err := strconv.ParseInt(path, 10, 64)
		if err != nil || id < 1 {
			respondError(w, r.logger, http.StatusBadRequest, "invalid id")
			return
		}

		switch req.Method {
		case http.MethodGet:
			h.GetByID(w, req, id)
		case http.MethodPut:
			h.Update(w, req, id)
		case http.MethodDelete:
			h.Delete(w, req, id)
		default:
			respondError(w, r.logger, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}

// reportOnly допускает только GET
func (r *Router) reportOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			respondError(w, r.logger, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, req)
	}
}
