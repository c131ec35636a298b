package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"nockpoint/internal/domain"
)

// RecordedRequest is a request observed by ClubServer.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	Body          []byte
}

type cannedResponse struct {
	status int
	body   string
}

// ClubServer is an in-process fake of the club service API rooted at /api.
type ClubServer struct {
	server *httptest.Server

	mu           sync.Mutex
	passwords    map[string]string
	profiles     map[string]domain.UserProfile
	tokens       map[string]string
	events       []domain.Event
	competitions []domain.Competition
	scores       map[int][]domain.RecordedScore
	canned       map[string]cannedResponse
	requests     []RecordedRequest
}

// NewClubServer starts a fake club service that is closed with the test.
func NewClubServer(t testing.TB) *ClubServer {
	t.Helper()
	s := &ClubServer{
		passwords: make(map[string]string),
		profiles:  make(map[string]domain.UserProfile),
		tokens:    make(map[string]string),
		scores:    make(map[int][]domain.RecordedScore),
		canned:    make(map[string]cannedResponse),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/verify", s.handleVerify)
	mux.HandleFunc("GET /api/events", s.authenticated(s.handleListEvents))
	mux.HandleFunc("GET /api/events/{id}", s.authenticated(s.handleGetEvent))
	mux.HandleFunc("POST /api/events/{id}/register", s.authenticated(s.handleRegister))
	mux.HandleFunc("DELETE /api/events/{id}/unregister", s.authenticated(s.handleUnregister))
	mux.HandleFunc("GET /api/competitions", s.authenticated(s.handleListCompetitions))
	mux.HandleFunc("GET /api/competitions/{id}", s.authenticated(s.handleGetCompetition))
	mux.HandleFunc("POST /api/competitions/{id}/scores", s.authenticated(s.handleSubmitScore))
	mux.HandleFunc("POST /api/competitions/{id}/scores/batch", s.authenticated(s.handleSubmitBatch))

	s.server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.server.Close)
	return s
}

// URL returns the API base URL.
func (s *ClubServer) URL() string {
	return s.server.URL + "/api"
}

// Close stops the server, making every later call a network failure.
func (s *ClubServer) Close() {
	s.server.Close()
}

// AddUser registers an account.
func (s *ClubServer) AddUser(profile domain.UserProfile, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passwords[profile.Username] = password
	s.profiles[profile.Username] = profile
}

// IssueToken mints a valid token for username without a login call.
func (s *ClubServer) IssueToken(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.tokens[token] = username
	return token
}

// RevokeTokens invalidates every issued token.
func (s *ClubServer) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

// AddEvent adds an event to the listing.
func (s *ClubServer) AddEvent(event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// AddCompetition adds a competition to the listing.
func (s *ClubServer) AddCompetition(competition domain.Competition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.competitions = append(s.competitions, competition)
}

// Respond makes method and path (relative to /api) answer with a fixed
// status and body, bypassing authentication.
func (s *ClubServer) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canned[method+" /api"+path] = cannedResponse{status: status, body: body}
}

// Requests returns every request received so far.
func (s *ClubServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestsTo returns the requests received for method and path (relative to /api).
func (s *ClubServer) RequestsTo(method, path string) []RecordedRequest {
	var matched []RecordedRequest
	for _, req := range s.Requests() {
		if req.Method == method && req.Path == "/api"+path {
			matched = append(matched, req)
		}
	}
	return matched
}

func (s *ClubServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.Query(),
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})
		canned, ok := s.canned[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			_, _ = io.WriteString(w, canned.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *ClubServer) authenticated(next func(http.ResponseWriter, *http.Request, domain.UserProfile)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.userForRequest(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Token is invalid"})
			return
		}
		next(w, r, user)
	}
}

func (s *ClubServer) userForRequest(r *http.Request) (domain.UserProfile, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return domain.UserProfile{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.tokens[token]
	if !ok {
		return domain.UserProfile{}, false
	}
	return s.profiles[username], true
}

func (s *ClubServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Username and password required"})
		return
	}

	s.mu.Lock()
	password, ok := s.passwords[creds.Username]
	s.mu.Unlock()
	if !ok || password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	}

	token := s.IssueToken(creds.Username)
	s.mu.Lock()
	user := s.profiles[creds.Username]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"user":       user,
		"expires_in": 86400,
	})
}

func (s *ClubServer) handleVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := s.userForRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "user": user})
}

func (s *ClubServer) handleListEvents(w http.ResponseWriter, _ *http.Request, _ domain.UserProfile) {
	s.mu.Lock()
	events := append([]domain.Event{}, s.events...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *ClubServer) findEvent(r *http.Request) (domain.Event, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return domain.Event{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, event := range s.events {
		if event.ID == id {
			return event, true
		}
	}
	return domain.Event{}, false
}

func (s *ClubServer) handleGetEvent(w http.ResponseWriter, r *http.Request, _ domain.UserProfile) {
	event, ok := s.findEvent(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Event not found"})
		return
	}
	writeJSON(w, http.StatusOK, domain.EventDetail{Event: event, Participants: []domain.Participant{}})
}

func (s *ClubServer) handleRegister(w http.ResponseWriter, r *http.Request, user domain.UserProfile) {
	event, ok := s.findEvent(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Event not found"})
		return
	}
	writeJSON(w, http.StatusCreated, domain.RegistrationResult{
		Message: "Successfully registered for event",
		EventID: event.ID,
		UserID:  user.ID,
	})
}

func (s *ClubServer) handleUnregister(w http.ResponseWriter, r *http.Request, user domain.UserProfile) {
	event, ok := s.findEvent(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Event not found"})
		return
	}
	writeJSON(w, http.StatusOK, domain.RegistrationResult{
		Message: "Successfully unregistered from event",
		EventID: event.ID,
		UserID:  user.ID,
	})
}

func (s *ClubServer) handleListCompetitions(w http.ResponseWriter, _ *http.Request, _ domain.UserProfile) {
	s.mu.Lock()
	competitions := append([]domain.Competition{}, s.competitions...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"competitions": competitions})
}

func (s *ClubServer) competitionID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, competition := range s.competitions {
		if competition.ID == id {
			return id, true
		}
	}
	return 0, false
}

func (s *ClubServer) handleGetCompetition(w http.ResponseWriter, r *http.Request, _ domain.UserProfile) {
	id, ok := s.competitionID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Competition not found"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var detail domain.CompetitionDetail
	for _, competition := range s.competitions {
		if competition.ID == id {
			detail.Competition = competition
		}
	}
	detail.UserScores = append([]domain.RecordedScore{}, s.scores[id]...)
	writeJSON(w, http.StatusOK, detail)
}

func (s *ClubServer) storeScore(id int, score domain.ArrowScore) int {
	s.scores[id] = append(s.scores[id], domain.RecordedScore{
		ID:          len(s.scores[id]) + 1,
		RoundNumber: score.RoundNumber,
		ArrowNumber: score.ArrowNumber,
		Score:       score.Score,
		IsX:         score.IsX,
	})
	return s.totalLocked(id)
}

func (s *ClubServer) totalLocked(id int) int {
	total := 0
	for _, recorded := range s.scores[id] {
		total += recorded.Score
	}
	return total
}

func (s *ClubServer) handleSubmitScore(w http.ResponseWriter, r *http.Request, _ domain.UserProfile) {
	id, ok := s.competitionID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Competition not found"})
		return
	}
	var score domain.ArrowScore
	if err := json.NewDecoder(r.Body).Decode(&score); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid score data"})
		return
	}
	if score.Score < 0 || score.Score > 10 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid score %d", score.Score)})
		return
	}

	s.mu.Lock()
	total := s.storeScore(id, score)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, domain.ScoreSubmission{
		Message:     "Score submitted successfully",
		RoundNumber: score.RoundNumber,
		ArrowNumber: score.ArrowNumber,
		Score:       score.Score,
		IsX:         score.IsX,
		TotalScore:  total,
	})
}

func (s *ClubServer) handleSubmitBatch(w http.ResponseWriter, r *http.Request, _ domain.UserProfile) {
	id, ok := s.competitionID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Competition not found"})
		return
	}
	var batch struct {
		Scores []domain.ArrowScore `json:"scores"`
	}
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid score data"})
		return
	}

	s.mu.Lock()
	for _, score := range batch.Scores {
		s.storeScore(id, score)
	}
	total := s.totalLocked(id)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, domain.BatchScoreSubmission{
		Message:         fmt.Sprintf("Successfully submitted %d scores", len(batch.Scores)),
		SubmittedScores: append([]domain.ArrowScore{}, batch.Scores...),
		TotalScore:      total,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
