package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samsoftwaredev/inriservices-sub002/internal/catalog"
	"github.com/samsoftwaredev/inriservices-sub002/internal/estimate"
	"github.com/samsoftwaredev/inriservices-sub002/internal/invoice"
)

const maxJSONBody = 1 << 20 // 1 MB

type estimateListItem struct {
	ID        int64
	Reference string
	CreatedAt string
	Title     string
	Total     float64
}

type estimatesViewData struct {
	baseViewData
	Query     string
	Estimates []estimateListItem
}

type estimateBuilderViewData struct {
	baseViewData
	Projects []project
	Painting catalog.Catalog
	Drywall  catalog.Catalog
}

type estimateDetail struct {
	ID               int64
	Reference        string
	CreatedAt        string
	Title            string
	Notes            string
	IncludeMaterials bool
	Summary          invoice.Summary
	Items            []invoice.LineItem
	Features         []estimate.RoomFeature
}

type estimateDetailViewData struct {
	baseViewData
	Estimate estimateDetail
}

type surfacesInput struct {
	WallSqFt     float64 `json:"wallSqFt"`
	CeilingSqFt  float64 `json:"ceilingSqFt"`
	TrimLinearFt float64 `json:"trimLinearFt"`
	WallCoats    float64 `json:"wallCoats"`
	CeilingCoats float64 `json:"ceilingCoats"`
	TrimCoats    float64 `json:"trimCoats"`
}

type calcRequest struct {
	Features         []estimate.RoomFeature `json:"features"`
	IncludeMaterials *bool                  `json:"includeMaterials"`
	Surfaces         *surfacesInput         `json:"surfaces"`
}

type calcResponse struct {
	Summary            invoice.Summary    `json:"summary"`
	Items              []invoice.LineItem `json:"items"`
	GallonsBySection   map[string]float64 `json:"gallonsBySection"`
	GallonsByPaintBase map[string]float64 `json:"gallonsByPaintBase"`
	EstimatedHours     float64            `json:"estimatedHours,omitempty"`
	EstimatedDays      int                `json:"estimatedDays,omitempty"`
}

type saveEstimateRequest struct {
	Title            string                 `json:"title"`
	Notes            string                 `json:"notes"`
	ProjectID        int64                  `json:"projectId"`
	Features         []estimate.RoomFeature `json:"features"`
	IncludeMaterials *bool                  `json:"includeMaterials"`
}

type priceRequest struct {
	Trade string   `json:"trade"`
	Band  string   `json:"band"`
	IDs   []string `json:"ids"`
}

type priceResponse struct {
	Price      float64 `json:"price"`
	PriceCents int64   `json:"priceCents"`
	SKU        string  `json:"sku"`
}

func (s *server) handleEstimatesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	estimates, err := s.listEstimates(query)
	if err != nil {
		s.logger.Error("load estimates", zap.Error(err))
		http.Error(w, "failed to load estimates", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "estimates.html", estimatesViewData{
		Query:     query,
		Estimates: estimates,
	})
}

func (s *server) listEstimates(query string) ([]estimateListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			id,
			reference,
			created_at,
			COALESCE(title, ''),
			total_cents
		FROM estimates
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estimates := make([]estimateListItem, 0)
	for rows.Next() {
		var item estimateListItem
		var totalCents int64
		if err := rows.Scan(&item.ID, &item.Reference, &item.CreatedAt, &item.Title, &totalCents); err != nil {
			return nil, err
		}
		item.Total = invoice.Dollars(totalCents)
		estimates = append(estimates, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return estimates, nil
}

func (s *server) handleEstimateBuilder(w http.ResponseWriter, r *http.Request) {
	projects, err := s.listProjects()
	if err != nil {
		s.logger.Error("load projects", zap.Error(err))
		http.Error(w, "failed to load projects", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "estimate_new.html", estimateBuilderViewData{
		Projects: projects,
		Painting: catalog.Painting,
		Drywall:  catalog.Drywall,
	})
}

func (s *server) handleEstimateCalc(w http.ResponseWriter, r *http.Request) {
	var req calcRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	includeMaterials := true
	if req.IncludeMaterials != nil {
		includeMaterials = *req.IncludeMaterials
	}

	calc := s.calculator()

	summary, items, err := invoice.Build(calc, req.Features, includeMaterials)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	bySection, err := estimate.GallonsBySection(calc, req.Features)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}
	byBase, err := estimate.GallonsByPaintBase(calc, req.Features)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}

	resp := calcResponse{
		Summary:            summary,
		Items:              items,
		GallonsBySection:   bySection,
		GallonsByPaintBase: byBase,
	}

	if req.Surfaces != nil {
		hours := estimate.EstimateHours(estimate.HoursInput{
			WallSqFt:     req.Surfaces.WallSqFt,
			CeilingSqFt:  req.Surfaces.CeilingSqFt,
			TrimLinearFt: req.Surfaces.TrimLinearFt,
			WallCoats:    req.Surfaces.WallCoats,
			CeilingCoats: req.Surfaces.CeilingCoats,
			TrimCoats:    req.Surfaces.TrimCoats,
			WallSpeed:    calc.WallSpeed,
			CeilingSpeed: calc.CeilingSpeed,
			TrimSpeed:    calc.TrimSpeed,
			Efficiency:   calc.Efficiency,
		})
		resp.EstimatedHours = hours
		resp.EstimatedDays = estimate.HoursToDays(hours, calc.HoursPerDay)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleEstimateSave(w http.ResponseWriter, r *http.Request) {
	var req saveEstimateRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	includeMaterials := true
	if req.IncludeMaterials != nil {
		includeMaterials = *req.IncludeMaterials
	}

	calc := s.calculator()
	summary, items, err := invoice.Build(calc, req.Features, includeMaterials)
	if err != nil {
		s.writeCalcError(w, err)
		return
	}

	featuresJSON, err := json.Marshal(req.Features)
	if err != nil {
		s.logger.Error("marshal features", zap.Error(err))
		http.Error(w, "failed to save estimate", http.StatusInternalServerError)
		return
	}
	totalsJSON, err := json.Marshal(summary)
	if err != nil {
		s.logger.Error("marshal totals", zap.Error(err))
		http.Error(w, "failed to save estimate", http.StatusInternalServerError)
		return
	}
	breakdownJSON, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("marshal breakdown", zap.Error(err))
		http.Error(w, "failed to save estimate", http.StatusInternalServerError)
		return
	}

	reference := uuid.NewString()
	var projectID any
	if req.ProjectID > 0 {
		var exists bool
		if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM projects WHERE id = ?)`, req.ProjectID).Scan(&exists); err != nil {
			s.logger.Error("check project", zap.Error(err), zap.Int64("project_id", req.ProjectID))
			http.Error(w, "failed to save estimate", http.StatusInternalServerError)
			return
		}
		if !exists {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "projectId no existe"})
			return
		}
		projectID = req.ProjectID
	}

	result, err := s.db.Exec(`
		INSERT INTO estimates (
			reference, project_id, title, notes, include_materials,
			total_cents, features_json, totals_json, breakdown_json
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		reference,
		projectID,
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Notes),
		includeMaterials,
		invoice.Cents(summary.TotalCost),
		string(featuresJSON),
		string(totalsJSON),
		string(breakdownJSON),
	)
	if err != nil {
		s.logger.Error("insert estimate", zap.Error(err))
		http.Error(w, "failed to save estimate", http.StatusInternalServerError)
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		s.logger.Error("estimate id", zap.Error(err))
		http.Error(w, "failed to save estimate", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"id":        id,
		"reference": reference,
		"summary":   summary,
	})
}

func (s *server) handleEstimateDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid estimate id", http.StatusBadRequest)
		return
	}

	detail, err := s.getEstimateDetail(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("load estimate detail", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "failed to load estimate", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "estimate_detail.html", estimateDetailViewData{Estimate: detail})
}

func (s *server) handleEstimateText(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid estimate id", http.StatusBadRequest)
		return
	}

	detail, err := s.getEstimateDetail(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.Error("load estimate detail", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "failed to load estimate", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(renderEstimateText(detail)))
}

// getEstimateDetail reads the stored snapshot. Totals and line items come
// back exactly as saved; nothing is recalculated.
func (s *server) getEstimateDetail(id int64) (estimateDetail, error) {
	var detail estimateDetail
	var totalsJSON, breakdownJSON, featuresJSON string

	err := s.db.QueryRow(`
		SELECT
			id,
			reference,
			created_at,
			COALESCE(title, ''),
			COALESCE(notes, ''),
			include_materials,
			totals_json,
			breakdown_json,
			features_json
		FROM estimates
		WHERE id = ?
	`, id).Scan(
		&detail.ID,
		&detail.Reference,
		&detail.CreatedAt,
		&detail.Title,
		&detail.Notes,
		&detail.IncludeMaterials,
		&totalsJSON,
		&breakdownJSON,
		&featuresJSON,
	)
	if err != nil {
		return estimateDetail{}, err
	}

	if err := json.Unmarshal([]byte(totalsJSON), &detail.Summary); err != nil {
		return estimateDetail{}, fmt.Errorf("decode totals snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(breakdownJSON), &detail.Items); err != nil {
		return estimateDetail{}, fmt.Errorf("decode breakdown snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(featuresJSON), &detail.Features); err != nil {
		return estimateDetail{}, fmt.Errorf("decode features snapshot: %w", err)
	}

	return detail, nil
}

func renderEstimateText(detail estimateDetail) string {
	var b strings.Builder

	title := detail.Title
	if title == "" {
		title = "Estimado"
	}
	fmt.Fprintf(&b, "%s (%s)\n", title, detail.Reference)
	fmt.Fprintf(&b, "Fecha: %s\n\n", detail.CreatedAt)

	b.WriteString("Detalle:\n")
	for _, item := range detail.Items {
		fmt.Fprintf(&b, "  - %s: %.2f x %.2f = %.2f\n", item.Description, item.Quantity, item.Rate, item.Amount)
	}
	if len(detail.Items) == 0 {
		b.WriteString("  (sin tareas seleccionadas)\n")
	}

	b.WriteString("\nResumen:\n")
	fmt.Fprintf(&b, "  Mano de obra: %.2f USD\n", detail.Summary.TotalLaborCost)
	fmt.Fprintf(&b, "  Materiales: %.2f USD\n", detail.Summary.TotalMaterialCost)
	fmt.Fprintf(&b, "  Galones de pintura: %.2f\n", detail.Summary.TotalGallons)
	fmt.Fprintf(&b, "  Horas: %.2f (%d dias)\n", detail.Summary.TotalHours, detail.Summary.TotalDays)
	fmt.Fprintf(&b, "Total: %.2f USD\n", detail.Summary.TotalCost)

	if detail.Notes != "" {
		fmt.Fprintf(&b, "\nNotas: %s\n", detail.Notes)
	}

	return b.String()
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	trade := chi.URLParam(r, "trade")
	c, ok := catalog.ByTrade(trade)
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *server) handleCatalogPrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	c, ok := catalog.ByTrade(req.Trade)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "trade debe ser painting o drywall"})
		return
	}

	price := c.PriceFor(req.Band, req.IDs...)
	sku := req.Band + strings.Join(req.IDs, "")

	s.writeJSON(w, http.StatusOK, priceResponse{
		Price:      price,
		PriceCents: invoice.Cents(price),
		SKU:        sku,
	})
}

func (s *server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "cuerpo JSON inválido"})
		return false
	}
	return true
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode json response", zap.Error(err))
	}
}

// writeCalcError maps calculator failures onto HTTP statuses: a bad unit is
// the client's mistake, anything else is ours.
func (s *server) writeCalcError(w http.ResponseWriter, err error) {
	var unitErr *estimate.UnsupportedUnitError
	if errors.As(err, &unitErr) {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": unitErr.Error()})
		return
	}
	s.logger.Error("estimate calculation", zap.Error(err))
	http.Error(w, "failed to calculate estimate", http.StatusInternalServerError)
}
