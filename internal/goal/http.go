package goal

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"goalforge/internal/model"
	"goalforge/internal/plan"
	"goalforge/internal/telemetry"
)

type Handler struct {
	repo     Repo
	events   telemetry.Repository
	planning plan.PlanningConfig
	clock    plan.Clock
}

func NewHandler(repo Repo, events telemetry.Repository, planning plan.PlanningConfig, clock plan.Clock) *Handler {
	if clock == nil {
		clock = plan.RealClock{}
	}
	return &Handler{repo: repo, events: events, planning: planning, clock: clock}
}

// Register mounts the goal API onto mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/goals", h.Create)
	mux.HandleFunc("GET /api/goals", h.List)
	mux.HandleFunc("GET /api/goals/{id}", h.Get)
	mux.HandleFunc("DELETE /api/goals/{id}", h.Delete)
	mux.HandleFunc("POST /api/goals/{id}/plan", h.GeneratePlan)
	mux.HandleFunc("POST /api/goals/{id}/adjust", h.AdjustPlan)
	mux.HandleFunc("GET /api/goals/{id}/progress", h.Progress)
	mux.HandleFunc("GET /api/goals/{id}/suggestions", h.Suggest)
	mux.HandleFunc("GET /api/goals/{id}/calendar.ics", h.CalendarICS)
	mux.HandleFunc("POST /api/goals/{id}/tasks/{taskId}/complete", h.CompleteTask)
	mux.HandleFunc("POST /api/goals/{id}/tasks/{taskId}/incomplete", h.ReopenTask)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// engineErrStatus maps engine sentinels onto HTTP status codes. Validation
// failures are the client's problem; the rate limit maps to 429.
func engineErrStatus(err error) int {
	switch {
	case errors.Is(err, plan.ErrInsufficientAvailability), errors.Is(err, plan.ErrInvalidTargetDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, plan.ErrTooSoonToAdjust):
		return http.StatusTooManyRequests
	case errors.Is(err, plan.ErrNoExistingSchedule):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// nowFor returns the request's effective time. Read-only endpoints accept a
// ?now=RFC3339 override so clients can render historical views.
func (h *Handler) nowFor(r *http.Request) time.Time {
	if v := strings.TrimSpace(r.URL.Query().Get("now")); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return h.clock.Now()
}

func (h *Handler) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if h.events == nil {
		return
	}
	_ = h.events.RecordEvent(t, h.clock.Now(), meta)
}

func (h *Handler) goalFromRequest(w http.ResponseWriter, r *http.Request) (model.Goal, bool) {
	id := model.GoalID(r.PathValue("id"))
	g, ok, err := h.repo.Get(r.Context(), id)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return model.Goal{}, false
	}
	if !ok {
		writeErr(w, http.StatusNotFound, "goal not found")
		return model.Goal{}, false
	}
	return g, true
}

type createGoalRequest struct {
	Title                string  `json:"title"`
	Category             string  `json:"category"`
	TargetDate           *string `json:"targetDate,omitempty"`
	WeeklyAvailableHours float64 `json:"weeklyAvailableHours"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeErr(w, http.StatusBadRequest, "title is required")
		return
	}

	g := model.Goal{
		Title:                strings.TrimSpace(req.Title),
		Category:             model.Category(req.Category).Normalize(),
		WeeklyAvailableHours: req.WeeklyAvailableHours,
	}
	if g.WeeklyAvailableHours == 0 {
		g.WeeklyAvailableHours = h.planning.DefaultWeeklyHours
	}
	if req.TargetDate != nil {
		t, err := time.Parse(time.RFC3339, *req.TargetDate)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "targetDate must be RFC3339")
			return
		}
		g.TargetDate = &t
	}

	created, err := h.repo.Create(r.Context(), g)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.record(telemetry.EventGoalCreated, telemetry.EventMetadata{"goal_id": string(created.ID)})
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.repo.List(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GoalID(r.PathValue("id"))
	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			writeErr(w, http.StatusNotFound, "goal not found")
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.record(telemetry.EventGoalDeleted, telemetry.EventMetadata{"goal_id": string(id)})
	writeJSON(w, http.StatusOK, map[string]any{"deleted": string(id)})
}

// GeneratePlan builds the goal's initial schedule. An existing schedule is
// not silently replaced; pass {"force":true} to regenerate from scratch.
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}

	var body struct {
		Force bool `json:"force"`
	}
	if err := decodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if g.Schedule != nil && !body.Force {
		writeErr(w, http.StatusConflict, "goal already has a schedule")
		return
	}

	now := h.clock.Now()
	sched, err := plan.Generate(g, h.planning, now)
	if err != nil {
		writeErr(w, engineErrStatus(err), err.Error())
		return
	}

	g.Schedule = sched
	if _, err := h.repo.Update(r.Context(), g); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.record(telemetry.EventPlanGenerated, telemetry.EventMetadata{
		"goal_id": string(g.ID),
		"phases":  len(sched.Phases),
		"tasks":   sched.TotalTasks(),
	})
	writeJSON(w, http.StatusCreated, sched)
}

// AdjustPlan re-flows the remaining work while keeping completed tasks.
func (h *Handler) AdjustPlan(w http.ResponseWriter, r *http.Request) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}

	now := h.clock.Now()
	sched, err := plan.Adjust(g, h.planning, now)
	if err != nil {
		writeErr(w, engineErrStatus(err), err.Error())
		return
	}

	g.Schedule = sched
	if _, err := h.repo.Update(r.Context(), g); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.record(telemetry.EventPlanAdjusted, telemetry.EventMetadata{
		"goal_id": string(g.ID),
		"phases":  len(sched.Phases),
	})
	writeJSON(w, http.StatusOK, sched)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, plan.Analyze(g.Schedule, h.nowFor(r)))
}

func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}
	analysis := plan.Analyze(g.Schedule, h.nowFor(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": plan.Suggestions(analysis),
	})
}

// CalendarICS exports the goal's schedule as an iCalendar feed.
func (h *Handler) CalendarICS(w http.ResponseWriter, r *http.Request) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}
	doc, err := BuildScheduleICS(g, h.nowFor(r))
	if err != nil {
		writeErr(w, http.StatusConflict, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	h.setTaskCompletion(w, r, true)
}

func (h *Handler) ReopenTask(w http.ResponseWriter, r *http.Request) {
	h.setTaskCompletion(w, r, false)
}

func (h *Handler) setTaskCompletion(w http.ResponseWriter, r *http.Request, done bool) {
	g, ok := h.goalFromRequest(w, r)
	if !ok {
		return
	}

	taskID := model.TaskID(r.PathValue("taskId"))
	var changed bool
	if done {
		changed = plan.MarkComplete(&g, taskID, h.clock.Now())
	} else {
		changed = plan.MarkIncomplete(&g, taskID)
	}
	if !changed {
		writeErr(w, http.StatusNotFound, "task not found")
		return
	}

	if _, err := h.repo.Update(r.Context(), g); err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	event := telemetry.EventTaskCompleted
	if !done {
		event = telemetry.EventTaskReopened
	}
	h.record(event, telemetry.EventMetadata{
		"goal_id": string(g.ID),
		"task_id": string(taskID),
	})

	phaseIdx, task := g.Schedule.FindTask(taskID)
	writeJSON(w, http.StatusOK, map[string]any{
		"task":          task,
		"phaseProgress": g.Schedule.Phases[phaseIdx].Progress(),
	})
}
