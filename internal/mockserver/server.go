package mockserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultPerPage = 10

// Server holds the mock dataset. Regions are mutable; everything else is
// read-only after New.
type Server struct {
	mu            sync.RWMutex
	notifications []wireNotification
	personEvents  []wirePersonEvent
	regions       []wireRegion
	deployments   []wireDeployment
	operationLogs []wireOperationLog
	companions    []wireCompanion

	log logrus.FieldLogger
	now func() time.Time
}

func New(log logrus.FieldLogger) *Server {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = l
	}
	return &Server{
		notifications: seedNotifications(),
		personEvents:  seedPersonEvents(),
		regions:       seedRegions(),
		deployments:   seedDeployments(),
		operationLogs: seedOperationLogs(),
		companions:    seedCompanions(),
		log:           log.WithField("component", "mockserver"),
		now:           time.Now,
	}
}

// Handler returns the routes of the backend.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/api/message-center", s.listNotifications)

	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Get("/person_event_logs", s.listPersonEvents)
		r.Get("/person_event_logs/{id}", s.getPersonEvent)

		r.Get("/regions", s.listRegions)
		r.Post("/regions", s.createRegion)
		r.Get("/regions/{id}", s.getRegion)
		r.Patch("/regions/{id}", s.updateRegion)
		r.Delete("/regions/{id}", s.deleteRegion)

		r.Get("/device_deployments", s.listDeployments)
		r.Get("/operation_logs", s.listOperationLogs)
		r.Get("/companion_records", s.listCompanions)
	})
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("mock request")
	})
}

func (s *Server) listNotifications(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": s.notifications})
}

func (s *Server) listPersonEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var matched []wirePersonEvent
	for _, e := range s.personEvents {
		if !matches(q.Get("person_tag"), e.PersonTag) ||
			!matches(q.Get("person_type"), e.PersonType) ||
			!matches(q.Get("campus_id"), e.CampusID) ||
			!inRange(e.Timestamp, q.Get("start_date"), q.Get("end_date")) {
			continue
		}
		if name := q.Get("name"); name != "" && !strings.Contains(e.Name, name) {
			continue
		}
		matched = append(matched, e)
	}

	records, p := paginate(matched, r)
	writeOK(w, map[string]any{
		"total":        p.total,
		"current_page": p.page,
		"total_pages":  p.totalPages,
		"per_page":     p.perPage,
		"records":      records,
	})
}

func (s *Server) getPersonEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, e := range s.personEvents {
		if e.ID == id {
			writeOK(w, e)
			return
		}
	}
	writeFail(w, http.StatusNotFound, "person event log not found")
}

func (s *Server) listRegions(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := r.URL.Query()
	var matched []wireRegion
	for _, reg := range s.regions {
		if !matches(q.Get("region_type"), reg.RegionType) {
			continue
		}
		if kw := q.Get("keyword"); kw != "" && !strings.Contains(reg.Name, kw) {
			continue
		}
		matched = append(matched, reg)
	}

	records, p := paginate(matched, r)
	writeOK(w, map[string]any{
		"regions":  records,
		"total":    p.total,
		"page":     p.page,
		"per_page": p.perPage,
	})
}

type regionBody struct {
	Name        *string `json:"name"`
	RegionType  *string `json:"region_type"`
	Description *string `json:"description"`
}

func (s *Server) createRegion(w http.ResponseWriter, r *http.Request) {
	var body regionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Name == nil || *body.Name == "" || body.RegionType == nil || !validRegionType(*body.RegionType) {
		writeFail(w, http.StatusUnprocessableEntity, "name and region_type are required")
		return
	}

	ts := s.now().UTC().Format(time.RFC3339)
	reg := wireRegion{
		ID:          uuid.NewString(),
		Name:        *body.Name,
		RegionType:  *body.RegionType,
		Description: body.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	s.mu.Lock()
	s.regions = append(s.regions, reg)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "data": reg})
}

func (s *Server) getRegion(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.regionIndex(chi.URLParam(r, "id")); i >= 0 {
		writeOK(w, s.regions[i])
		return
	}
	writeFail(w, http.StatusNotFound, "region not found")
}

func (s *Server) updateRegion(w http.ResponseWriter, r *http.Request) {
	var body regionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.RegionType != nil && !validRegionType(*body.RegionType) {
		writeFail(w, http.StatusUnprocessableEntity, "invalid region_type")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.regionIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeFail(w, http.StatusNotFound, "region not found")
		return
	}
	reg := &s.regions[i]
	if body.Name != nil {
		reg.Name = *body.Name
	}
	if body.RegionType != nil {
		reg.RegionType = *body.RegionType
	}
	if body.Description != nil {
		reg.Description = body.Description
	}
	reg.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	writeOK(w, *reg)
}

func (s *Server) deleteRegion(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.regionIndex(chi.URLParam(r, "id"))
	if i < 0 {
		writeFail(w, http.StatusNotFound, "region not found")
		return
	}
	s.regions = append(s.regions[:i], s.regions[i+1:]...)
	writeOK(w, struct{}{})
}

// regionIndex must be called with mu held.
func (s *Server) regionIndex(id string) int {
	for i, reg := range s.regions {
		if reg.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) listDeployments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var matched []wireDeployment
	for _, d := range s.deployments {
		if matches(q.Get("device_type"), d.DeviceType) &&
			matches(q.Get("region_id"), d.RegionID) &&
			matches(q.Get("status"), d.Status) {
			matched = append(matched, d)
		}
	}
	writePage(w, r, matched)
}

func (s *Server) listOperationLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var matched []wireOperationLog
	for _, l := range s.operationLogs {
		if matches(q.Get("operator"), l.OperatorName) &&
			matches(q.Get("action"), l.Action) &&
			inRange(l.CreatedAt, q.Get("start_date"), q.Get("end_date")) {
			matched = append(matched, l)
		}
	}
	writePage(w, r, matched)
}

func (s *Server) listCompanions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var matched []wireCompanion
	for _, c := range s.companions {
		if matches(q.Get("person_id"), c.PersonID) &&
			matches(q.Get("record_type"), c.CompanionType) &&
			inRange(c.OccurredAt, q.Get("start_date"), q.Get("end_date")) {
			matched = append(matched, c)
		}
	}
	writePage(w, r, matched)
}

type pageInfo struct {
	total, page, totalPages, perPage int
}

func paginate[T any](all []T, r *http.Request) ([]T, pageInfo) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}

	p := pageInfo{
		total:      len(all),
		page:       page,
		perPage:    perPage,
		totalPages: (len(all) + perPage - 1) / perPage,
	}

	start := (page - 1) * perPage
	if start >= len(all) {
		return []T{}, p
	}
	end := min(start+perPage, len(all))
	return all[start:end], p
}

// writePage answers with the person-event style paging envelope.
func writePage[T any](w http.ResponseWriter, r *http.Request, all []T) {
	records, p := paginate(all, r)
	writeOK(w, map[string]any{
		"total":        p.total,
		"current_page": p.page,
		"total_pages":  p.totalPages,
		"per_page":     p.perPage,
		"records":      records,
	})
}

func matches(filter, value string) bool {
	return filter == "" || filter == value
}

// inRange compares the date prefix of an ISO timestamp with YYYY-MM-DD bounds.
func inRange(ts, start, end string) bool {
	if len(ts) < 10 {
		return start == "" && end == ""
	}
	day := ts[:10]
	return (start == "" || day >= start) && (end == "" || day <= end)
}

func validRegionType(t string) bool {
	return t == "checkpoint" || t == "site"
}

func writeOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

func writeFail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "message": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
