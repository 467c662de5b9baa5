package main

import (
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/samsoftwaredev/inriservices-sub002/internal/config"
	"github.com/samsoftwaredev/inriservices-sub002/internal/db"
	"github.com/samsoftwaredev/inriservices-sub002/internal/estimate"
	"github.com/samsoftwaredev/inriservices-sub002/internal/migrations"
	"github.com/samsoftwaredev/inriservices-sub002/internal/seed"
)

type server struct {
	auth   *authService
	db     *sql.DB
	logger *zap.Logger
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

type loginViewData struct {
	baseViewData
}

type rateConfig struct {
	CoverageRate      float64
	WallSpeed         float64
	CeilingSpeed      float64
	TrimSpeed         float64
	Efficiency        float64
	HoursPerDay       float64
	DefaultHourlyRate float64
	TaxPercent        float64
	Currency          string
}

type ratesViewData struct {
	baseViewData
	RateConfig rateConfig
}

type client struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	Notes  string
	Active bool
}

type clientsViewData struct {
	baseViewData
	Clients []client
}

type property struct {
	ID       int64
	ClientID int64
	Address  string
	City     string
	Notes    string
	Active   bool
}

type propertiesViewData struct {
	baseViewData
	Properties []property
	Clients    []client
}

type project struct {
	ID         int64
	PropertyID int64
	Name       string
	Status     string
	Notes      string
	Active     bool
}

type projectsViewData struct {
	baseViewData
	Projects   []project
	Properties []property
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database); err != nil {
			logger.Fatal("failed to run database migrations", zap.Error(err))
		}
	}

	stats, err := seed.Run(database, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		logger.Fatal("failed to run startup seed", zap.Error(err))
	}
	logger.Info("startup seed finished", zap.Int("inserts", stats.Inserts))

	auth := newAuthService(database, cfg.SessionSecret)
	srv := &server{auth: auth, db: database, logger: logger}

	r := chi.NewRouter()
	r.Use(srv.authMiddleware)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	r.Get("/", srv.handleHome)
	r.Get("/login", srv.handleLoginForm)
	r.Post("/login", srv.handleLoginSubmit)
	r.Post("/logout", srv.handleLogout)
	r.Get("/admin/rates", srv.handleAdminRatesForm)
	r.Post("/admin/rates", srv.handleAdminRatesSubmit)
	r.Get("/clients", srv.handleClientsList)
	r.Post("/clients", srv.handleClientsCreate)
	r.Post("/clients/{id}", srv.handleClientsUpdate)
	r.Get("/properties", srv.handlePropertiesList)
	r.Post("/properties", srv.handlePropertiesCreate)
	r.Post("/properties/{id}", srv.handlePropertiesUpdate)
	r.Get("/projects", srv.handleProjectsList)
	r.Post("/projects", srv.handleProjectsCreate)
	r.Post("/projects/{id}", srv.handleProjectsUpdate)
	r.Get("/estimates", srv.handleEstimatesList)
	r.Get("/estimates/new", srv.handleEstimateBuilder)
	r.Post("/estimates", srv.handleEstimateSave)
	r.Get("/estimates/{id}", srv.handleEstimateDetail)
	r.Get("/estimates/{id}/text", srv.handleEstimateText)
	r.Get("/api/catalog/{trade}", srv.handleCatalog)
	r.Post("/api/catalog/price", srv.handleCatalogPrice)
	r.Post("/api/estimates/calc", srv.handleEstimateCalc)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsDev() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "home.html", baseViewData{})
}

func (s *server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if isAuthenticated(r, s.auth) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.renderTemplate(w, "login.html", loginViewData{})
}

func (s *server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	valid, err := s.auth.validateCredentials(email, password)
	if err != nil {
		s.logger.Error("validate credentials", zap.Error(err))
		http.Error(w, "authentication error", http.StatusInternalServerError)
		return
	}
	if !valid {
		w.WriteHeader(http.StatusUnauthorized)
		s.renderTemplate(w, "login.html", loginViewData{baseViewData: baseViewData{ErrorMessage: "Credenciales inválidas. Intenta de nuevo."}})
		return
	}

	s.auth.setSessionCookie(w, email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *server) handleAdminRatesForm(w http.ResponseWriter, r *http.Request) {
	rates, err := s.getRateConfig()
	if err != nil {
		s.logger.Error("load rate config", zap.Error(err))
		http.Error(w, "failed to load rate config", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "admin_rates.html", ratesViewData{RateConfig: rates})
}

func (s *server) handleAdminRatesSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rates, validationErr := parseRateConfigForm(r)
	if validationErr != nil {
		w.WriteHeader(http.StatusBadRequest)
		s.renderTemplate(w, "admin_rates.html", ratesViewData{
			baseViewData: baseViewData{ErrorMessage: validationErr.Error()},
			RateConfig:   rates,
		})
		return
	}

	if err := s.updateRateConfig(rates); err != nil {
		s.logger.Error("save rate config", zap.Error(err))
		http.Error(w, "failed to save rate config", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "admin_rates.html", ratesViewData{
		baseViewData: baseViewData{SuccessMessage: "Configuración guardada correctamente."},
		RateConfig:   rates,
	})
}

func (s *server) handleClientsList(w http.ResponseWriter, r *http.Request) {
	clients, err := s.listClients()
	if err != nil {
		s.logger.Error("load clients", zap.Error(err))
		http.Error(w, "failed to load clients", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "clients.html", clientsViewData{
		baseViewData: baseViewData{
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Clients: clients,
	})
}

func (s *server) handleClientsCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	c, err := parseClientForm(r)
	if err != nil {
		http.Redirect(w, r, "/clients?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO clients (name, email, phone, notes, active)
		VALUES (?, ?, ?, ?, TRUE)
	`, c.Name, c.Email, c.Phone, c.Notes)
	if err != nil {
		s.logger.Error("create client", zap.Error(err))
		http.Error(w, "failed to create client", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/clients?success=Cliente+creado+correctamente", http.StatusSeeOther)
}

func (s *server) handleClientsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	c, err := parseClientForm(r)
	if err != nil {
		http.Redirect(w, r, "/clients?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	c.Active = r.FormValue("active") == "1"

	result, err := s.db.Exec(`
		UPDATE clients
		SET
			name = ?,
			email = ?,
			phone = ?,
			notes = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, c.Name, c.Email, c.Phone, c.Notes, c.Active, id)
	if err != nil {
		s.logger.Error("update client", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "failed to update client", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		http.Error(w, "failed to update client", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/clients?success=Cliente+actualizado+correctamente", http.StatusSeeOther)
}

func (s *server) handlePropertiesList(w http.ResponseWriter, r *http.Request) {
	properties, err := s.listProperties()
	if err != nil {
		s.logger.Error("load properties", zap.Error(err))
		http.Error(w, "failed to load properties", http.StatusInternalServerError)
		return
	}
	clients, err := s.listClients()
	if err != nil {
		s.logger.Error("load clients", zap.Error(err))
		http.Error(w, "failed to load clients", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "properties.html", propertiesViewData{
		baseViewData: baseViewData{
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Properties: properties,
		Clients:    clients,
	})
}

func (s *server) handlePropertiesCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p, err := parsePropertyForm(r)
	if err != nil {
		http.Redirect(w, r, "/properties?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO properties (client_id, address, city, notes, active)
		VALUES (?, ?, ?, ?, ?)
	`, p.ClientID, p.Address, p.City, p.Notes, p.Active)
	if err != nil {
		s.logger.Error("create property", zap.Error(err))
		http.Error(w, "failed to create property", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/properties?success=Propiedad+creada+correctamente", http.StatusSeeOther)
}

func (s *server) handlePropertiesUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid property id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p, err := parsePropertyForm(r)
	if err != nil {
		http.Redirect(w, r, "/properties?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	result, err := s.db.Exec(`
		UPDATE properties
		SET
			client_id = ?,
			address = ?,
			city = ?,
			notes = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.ClientID, p.Address, p.City, p.Notes, p.Active, id)
	if err != nil {
		s.logger.Error("update property", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "failed to update property", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		http.Error(w, "failed to update property", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/properties?success=Propiedad+actualizada+correctamente", http.StatusSeeOther)
}

func (s *server) handleProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.listProjects()
	if err != nil {
		s.logger.Error("load projects", zap.Error(err))
		http.Error(w, "failed to load projects", http.StatusInternalServerError)
		return
	}
	properties, err := s.listProperties()
	if err != nil {
		s.logger.Error("load properties", zap.Error(err))
		http.Error(w, "failed to load properties", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "projects.html", projectsViewData{
		baseViewData: baseViewData{
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Projects:   projects,
		Properties: properties,
	})
}

func (s *server) handleProjectsCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p, err := parseProjectForm(r)
	if err != nil {
		http.Redirect(w, r, "/projects?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	_, err = s.db.Exec(`
		INSERT INTO projects (property_id, name, status, notes, active)
		VALUES (?, ?, ?, ?, ?)
	`, p.PropertyID, p.Name, p.Status, p.Notes, p.Active)
	if err != nil {
		s.logger.Error("create project", zap.Error(err))
		http.Error(w, "failed to create project", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/projects?success=Proyecto+creado+correctamente", http.StatusSeeOther)
}

func (s *server) handleProjectsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	p, err := parseProjectForm(r)
	if err != nil {
		http.Redirect(w, r, "/projects?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	result, err := s.db.Exec(`
		UPDATE projects
		SET
			property_id = ?,
			name = ?,
			status = ?,
			notes = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.PropertyID, p.Name, p.Status, p.Notes, p.Active, id)
	if err != nil {
		s.logger.Error("update project", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "failed to update project", http.StatusInternalServerError)
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		http.Error(w, "failed to update project", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, "/projects?success=Proyecto+actualizado+correctamente", http.StatusSeeOther)
}

func (s *server) listClients() ([]client, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''), active
		FROM clients
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	clients := make([]client, 0)
	for rows.Next() {
		var c client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Notes, &c.Active); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clients: %w", err)
	}

	return clients, nil
}

func (s *server) listProperties() ([]property, error) {
	rows, err := s.db.Query(`
		SELECT id, client_id, address, COALESCE(city, ''), COALESCE(notes, ''), active
		FROM properties
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]property, 0)
	for rows.Next() {
		var p property
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Address, &p.City, &p.Notes, &p.Active); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}

	return properties, nil
}

func (s *server) listProjects() ([]project, error) {
	rows, err := s.db.Query(`
		SELECT id, property_id, name, status, COALESCE(notes, ''), active
		FROM projects
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project, 0)
	for rows.Next() {
		var p project
		if err := rows.Scan(&p.ID, &p.PropertyID, &p.Name, &p.Status, &p.Notes, &p.Active); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

func (s *server) getRateConfig() (rateConfig, error) {
	var rc rateConfig
	err := s.db.QueryRow(`
		SELECT coverage_rate, wall_speed, ceiling_speed, trim_speed, efficiency, hours_per_day, default_hourly_rate, tax_percent, currency
		FROM rate_config
		WHERE id = 1
	`).Scan(
		&rc.CoverageRate,
		&rc.WallSpeed,
		&rc.CeilingSpeed,
		&rc.TrimSpeed,
		&rc.Efficiency,
		&rc.HoursPerDay,
		&rc.DefaultHourlyRate,
		&rc.TaxPercent,
		&rc.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rateConfig{}, fmt.Errorf("rate_config singleton not found")
		}
		return rateConfig{}, fmt.Errorf("query rate_config: %w", err)
	}
	return rc, nil
}

func (s *server) updateRateConfig(rc rateConfig) error {
	_, err := s.db.Exec(`
		UPDATE rate_config
		SET
			coverage_rate = ?,
			wall_speed = ?,
			ceiling_speed = ?,
			trim_speed = ?,
			efficiency = ?,
			hours_per_day = ?,
			default_hourly_rate = ?,
			tax_percent = ?,
			currency = 'USD',
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`,
		rc.CoverageRate,
		rc.WallSpeed,
		rc.CeilingSpeed,
		rc.TrimSpeed,
		rc.Efficiency,
		rc.HoursPerDay,
		rc.DefaultHourlyRate,
		rc.TaxPercent,
	)
	if err != nil {
		return fmt.Errorf("update rate_config: %w", err)
	}

	return nil
}

// calculator builds the estimate calculator from the saved rate config,
// falling back to the shipped defaults when no row exists yet.
func (s *server) calculator() estimate.Calculator {
	calc := estimate.NewCalculator()

	rc, err := s.getRateConfig()
	if err != nil {
		s.logger.Warn("rate config unavailable, using defaults", zap.Error(err))
		return calc
	}

	if rc.CoverageRate > 0 {
		calc.CoverageRate = rc.CoverageRate
	}
	if rc.WallSpeed > 0 {
		calc.WallSpeed = rc.WallSpeed
	}
	if rc.CeilingSpeed > 0 {
		calc.CeilingSpeed = rc.CeilingSpeed
	}
	if rc.TrimSpeed > 0 {
		calc.TrimSpeed = rc.TrimSpeed
	}
	if rc.Efficiency > 0 {
		calc.Efficiency = rc.Efficiency
	}
	if rc.HoursPerDay > 0 {
		calc.HoursPerDay = rc.HoursPerDay
	}
	return calc
}

func parseRateConfigForm(r *http.Request) (rateConfig, error) {
	rates := rateConfig{Currency: "USD"}

	var err error
	if rates.CoverageRate, err = parsePositiveFloat(r.FormValue("coverage_rate"), "coverage_rate"); err != nil {
		return rates, err
	}
	if rates.WallSpeed, err = parsePositiveFloat(r.FormValue("wall_speed"), "wall_speed"); err != nil {
		return rates, err
	}
	if rates.CeilingSpeed, err = parsePositiveFloat(r.FormValue("ceiling_speed"), "ceiling_speed"); err != nil {
		return rates, err
	}
	if rates.TrimSpeed, err = parsePositiveFloat(r.FormValue("trim_speed"), "trim_speed"); err != nil {
		return rates, err
	}
	if rates.Efficiency, err = parsePositiveFloat(r.FormValue("efficiency"), "efficiency"); err != nil {
		return rates, err
	}
	if rates.HoursPerDay, err = parsePositiveFloat(r.FormValue("hours_per_day"), "hours_per_day"); err != nil {
		return rates, err
	}
	if rates.DefaultHourlyRate, err = parseNonNegativeFloat(r.FormValue("default_hourly_rate"), "default_hourly_rate"); err != nil {
		return rates, err
	}
	if rates.TaxPercent, err = parsePercent(r.FormValue("tax_percent"), "tax_percent"); err != nil {
		return rates, err
	}

	return rates, nil
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser numérico", field)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s debe ser mayor o igual a 0", field)
	}
	return value, nil
}

func parsePercent(raw, field string) (float64, error) {
	value, err := parseNonNegativeFloat(raw, field)
	if err != nil {
		return 0, err
	}
	if value > 100 {
		return 0, fmt.Errorf("%s debe estar entre 0 y 100", field)
	}
	return value, nil
}

func parsePositiveFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser numérico", field)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s debe ser mayor a 0", field)
	}
	return value, nil
}

func parseClientForm(r *http.Request) (client, error) {
	c := client{
		Name:  strings.TrimSpace(r.FormValue("name")),
		Email: strings.TrimSpace(r.FormValue("email")),
		Phone: strings.TrimSpace(r.FormValue("phone")),
		Notes: strings.TrimSpace(r.FormValue("notes")),
	}

	if c.Name == "" {
		return c, fmt.Errorf("name es requerido")
	}

	return c, nil
}

func parsePropertyForm(r *http.Request) (property, error) {
	p := property{
		Address: strings.TrimSpace(r.FormValue("address")),
		City:    strings.TrimSpace(r.FormValue("city")),
		Notes:   strings.TrimSpace(r.FormValue("notes")),
		Active:  r.FormValue("active") == "1",
	}

	if p.Address == "" {
		return p, fmt.Errorf("address es requerido")
	}

	clientID, err := strconv.ParseInt(r.FormValue("client_id"), 10, 64)
	if err != nil || clientID <= 0 {
		return p, fmt.Errorf("client_id debe ser un id válido")
	}
	p.ClientID = clientID

	return p, nil
}

var projectStatuses = map[string]bool{
	"lead":       true,
	"quoted":     true,
	"scheduled":  true,
	"inprogress": true,
	"done":       true,
}

func parseProjectForm(r *http.Request) (project, error) {
	p := project{
		Name:   strings.TrimSpace(r.FormValue("name")),
		Status: strings.TrimSpace(r.FormValue("status")),
		Notes:  strings.TrimSpace(r.FormValue("notes")),
		Active: r.FormValue("active") == "1",
	}

	if p.Name == "" {
		return p, fmt.Errorf("name es requerido")
	}
	if p.Status == "" {
		p.Status = "lead"
	}
	if !projectStatuses[p.Status] {
		return p, fmt.Errorf("status debe ser lead, quoted, scheduled, inprogress o done")
	}

	propertyID, err := strconv.ParseInt(r.FormValue("property_id"), 10, 64)
	if err != nil || propertyID <= 0 {
		return p, fmt.Errorf("property_id debe ser un id válido")
	}
	p.PropertyID = propertyID

	return p, nil
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.ParseFiles(
		"web/templates/layout.html",
		"web/templates/"+page,
	)
	if err != nil {
		s.logger.Error("parse template", zap.Error(err), zap.String("page", page))
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("render template", zap.Error(err), zap.String("page", page))
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}

func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" || r.URL.Path == "/static" || strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		if !isAuthenticated(r, s.auth) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isAuthenticated(r *http.Request, auth *authService) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}

	_, ok := auth.verifySessionValue(cookie.Value)
	return ok
}
