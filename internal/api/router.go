package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nightjarhq/nightjar/internal/db"
	"github.com/nightjarhq/nightjar/internal/logger"
	"github.com/nightjarhq/nightjar/internal/middleware"
	"github.com/nightjarhq/nightjar/internal/services"
)

type Router struct {
	store    db.Store
	auth     *services.AuthService
	gateways *services.GatewayService
	schedule *services.ScheduleService
	resps    *services.ResponseService
	journey  *services.JourneyService
	catalog  *services.CatalogService
	validate *validator.Validate
	log      *logger.Logger
}

func NewRouter(store db.Store, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	gw := services.NewGatewayService(store, log)
	return &Router{
		store:    store,
		auth:     services.NewAuthService(store, middleware.SignToken),
		gateways: gw,
		schedule: services.NewScheduleService(store),
		resps:    services.NewResponseService(store, gw, log),
		journey:  services.NewJourneyService(store),
		catalog:  services.NewCatalogService(store),
		validate: validator.New(),
		log:      log,
	}
}

// RegisterAdmin creates an admin account, used by startup bootstrap only.
func (rt *Router) RegisterAdmin(email, password string) (*services.AuthResult, error) {
	return rt.auth.RegisterAdmin(email, password)
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", rt.handleRegister) // POST
	mux.HandleFunc("/api/auth/login", rt.handleLogin)       // POST

	mux.Handle("/api/schedule", middleware.RequireAuth(http.HandlerFunc(rt.handleSchedule)))       // GET
	mux.Handle("/api/responses", middleware.RequireAuth(http.HandlerFunc(rt.handleResponses)))     // GET, POST
	mux.Handle("/api/gateways", middleware.RequireAuth(http.HandlerFunc(rt.handleGateways)))       // GET
	mux.Handle("/api/journey", middleware.RequireAuth(http.HandlerFunc(rt.handleJourney)))         // GET
	mux.Handle("/api/journey/complete", middleware.RequireAuth(http.HandlerFunc(rt.handleCompleteDay))) // POST
	mux.Handle("/api/journey/reset", middleware.RequireAuth(http.HandlerFunc(rt.handleResetJourney)))   // POST

	mux.Handle("/api/admin/days", middleware.RequireAdmin(http.HandlerFunc(rt.handleAdminDays)))            // GET
	mux.Handle("/api/admin/days/", middleware.RequireAdmin(http.HandlerFunc(rt.handleAdminDayScoped)))     // POST/PUT/DELETE .../modules
	mux.Handle("/api/admin/modules/", middleware.RequireAdmin(http.HandlerFunc(rt.handleAdminModuleScoped))) // PUT .../questions
	mux.Handle("/api/admin/export/responses", middleware.RequireAdmin(http.HandlerFunc(rt.handleExportResponses))) // GET
}

// POST /api/auth/register
func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := rt.decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := rt.auth.Register(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": res.Token, "user_id": res.UserID, "role": res.Role})
}

// POST /api/auth/login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := rt.decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": res.Token, "user_id": res.UserID, "role": res.Role})
}

// GET /api/schedule?day=N, defaulting to the user's current day.
func (rt *Router) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	uid, _ := middleware.UserIDFromContext(r.Context())
	day := 0
	if v := r.URL.Query().Get("day"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, services.NewInvalidError("day must be an integer"))
			return
		}
		day = n
	}
	if day == 0 {
		progress, err := rt.journey.Progress(uid)
		if err != nil {
			writeError(w, err)
			return
		}
		day = progress.CurrentDay
	}
	sched, err := rt.schedule.ComposeDay(uid, day)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

// GET /api/responses?day=N | POST /api/responses
func (rt *Router) handleResponses(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserIDFromContext(r.Context())
	switch r.Method {
	case http.MethodGet:
		day, err := strconv.Atoi(r.URL.Query().Get("day"))
		if err != nil {
			writeError(w, services.NewInvalidError("day query parameter required"))
			return
		}
		out, err := rt.resps.ListForDay(uid, day)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"day_number": day, "responses": out})
	case http.MethodPost:
		var req struct {
			QuestionID        string   `json:"question_id" validate:"required"`
			DayNumber         int      `json:"day_number" validate:"required,min=1"`
			StringValue       *string  `json:"string_value"`
			NumberValue       *float64 `json:"number_value"`
			ArrayValue        []string `json:"array_value"`
			AnsweredInSeconds int      `json:"answered_in_seconds"`
		}
		if err := rt.decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}
		resp, err := rt.resps.Save(services.SaveResponseRequest{
			UserID:            uid,
			QuestionID:        req.QuestionID,
			DayNumber:         req.DayNumber,
			StringValue:       req.StringValue,
			NumberValue:       req.NumberValue,
			ArrayValue:        req.ArrayValue,
			AnsweredInSeconds: req.AnsweredInSeconds,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/gateways
func (rt *Router) handleGateways(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	uid, _ := middleware.UserIDFromContext(r.Context())
	states, err := rt.gateways.States(uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"gateway_states": states})
}

// GET /api/journey
func (rt *Router) handleJourney(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	uid, _ := middleware.UserIDFromContext(r.Context())
	progress, err := rt.journey.Progress(uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

// POST /api/journey/complete
func (rt *Router) handleCompleteDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	uid, _ := middleware.UserIDFromContext(r.Context())
	var req struct {
		DayNumber int `json:"day_number" validate:"required,min=1"`
	}
	if err := rt.decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := rt.journey.CompleteDay(uid, req.DayNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /api/journey/reset
func (rt *Router) handleResetJourney(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	uid, _ := middleware.UserIDFromContext(r.Context())
	if err := rt.journey.Reset(uid); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/admin/days
func (rt *Router) handleAdminDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	days, err := rt.catalog.Days()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": days})
}

// POST/PUT /api/admin/days/{n}/modules, DELETE /api/admin/days/{n}/modules/{moduleID}
func (rt *Router) handleAdminDayScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/days/")
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[1] != "modules" {
		http.NotFound(w, r)
		return
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		writeError(w, services.NewInvalidError("day must be an integer"))
		return
	}
	switch {
	case r.Method == http.MethodPost && len(parts) == 2:
		var req struct {
			ModuleID string `json:"module_id" validate:"required"`
			Position *int   `json:"position"`
		}
		if err := rt.decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}
		position := -1
		if req.Position != nil {
			position = *req.Position
		}
		cfg, err := rt.catalog.AssignModuleToDay(day, req.ModuleID, position)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	case r.Method == http.MethodPut && len(parts) == 2:
		var req struct {
			ModuleIDs []string `json:"module_ids" validate:"required,min=1"`
		}
		if err := rt.decodeBody(r, &req); err != nil {
			writeError(w, err)
			return
		}
		cfg, err := rt.catalog.ReorderDayModules(day, req.ModuleIDs)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	case r.Method == http.MethodDelete && len(parts) == 3:
		cfg, err := rt.catalog.RemoveModuleFromDay(day, parts[2])
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// PUT /api/admin/modules/{id}/questions
func (rt *Router) handleAdminModuleScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/modules/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "questions" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		QuestionIDs []string `json:"question_ids" validate:"required,min=1"`
	}
	if err := rt.decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	mod, err := rt.catalog.ReorderModuleQuestions(parts[0], req.QuestionIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mod)
}

// GET /api/admin/export/responses?user_id=...
func (rt *Router) handleExportResponses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, services.NewInvalidError("user_id required"))
		return
	}
	rs, err := rt.store.ListResponsesByUser(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := services.ExportResponsesCSV(rs)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=responses.csv")
	_, _ = w.Write(b)
}
