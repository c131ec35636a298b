package domain

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// Event is a club shooting event as listed by the service.
type Event struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	EventDate        string   `json:"event_date"`
	EventType        string   `json:"event_type"`
	Location         string   `json:"location"`
	MaxParticipants  *int     `json:"max_participants"`
	AvailableSpots   *int     `json:"available_spots"`
	IsFree           bool     `json:"is_free"`
	ChargeAmount     *float64 `json:"charge_amount"`
	UserRegistered   bool     `json:"user_registered"`
	UserAttended     bool     `json:"user_attended"`
	RegistrationOpen bool     `json:"registration_open"`
	CanRegister      bool     `json:"can_register"`
}

// Participant is a member registered for an event.
type Participant struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Attended bool   `json:"attended"`
}

// Student is a beginners course attendee.
type Student struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         *int   `json:"age"`
	Gender      string `json:"gender"`
	Orientation string `json:"orientation"`
}

// EventDetail is a single event with its participants.
type EventDetail struct {
	Event

	Participants []Participant `json:"participants"`
	Students     []Student     `json:"students"`
}

// RegistrationResult is returned by register/unregister calls.
type RegistrationResult struct {
	Message string `json:"message"`
	EventID int    `json:"event_id"`
	UserID  int    `json:"user_id"`
}

// Competition is a scored competition linked to an event.
type Competition struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	Location             string  `json:"location"`
	CompetitionType      string  `json:"competition_type"`
	Status               string  `json:"status"`
	MaxParticipants      *int    `json:"max_participants"`
	RegistrationDeadline *string `json:"registration_deadline"`
	UserRegistered       bool    `json:"user_registered"`
	UserCanSubmitScores  bool    `json:"user_can_submit_scores"`
}

// RecordedScore is an arrow score already stored by the service.
type RecordedScore struct {
	ID          int  `json:"id"`
	RoundNumber int  `json:"round_number"`
	ArrowNumber int  `json:"arrow_number"`
	Score       int  `json:"score"`
	IsX         bool `json:"is_x"`
}

// CompetitionGroup is a grouping of competitors.
type CompetitionGroup struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompetitionDetail is a single competition with the caller's scores.
type CompetitionDetail struct {
	Competition

	Rounds         int                `json:"rounds"`
	ArrowsPerRound int                `json:"arrows_per_round"`
	ScoringType    string             `json:"scoring_type"`
	UserScores     []RecordedScore    `json:"user_scores"`
	Groups         []CompetitionGroup `json:"groups"`
}

// ArrowScore is one arrow to submit.
type ArrowScore struct {
	RoundNumber int  `json:"round_number" yaml:"round_number"`
	ArrowNumber int  `json:"arrow_number" yaml:"arrow_number"`
	Score       int  `json:"score"        yaml:"score"`
	IsX         bool `json:"is_x"         yaml:"is_x"`
}

// ScoreSubmission is the service's answer to a single score submission.
type ScoreSubmission struct {
	Message     string `json:"message"`
	RoundNumber int    `json:"round_number"`
	ArrowNumber int    `json:"arrow_number"`
	Score       int    `json:"score"`
	IsX         bool   `json:"is_x"`
	TotalScore  int    `json:"total_score"`
}

// BatchScoreSubmission is the service's answer to a batch submission.
type BatchScoreSubmission struct {
	Message         string       `json:"message"`
	SubmittedScores []ArrowScore `json:"submitted_scores"`
	TotalScore      int          `json:"total_score"`
}

const queryDateLayout = "2006-01-02"

// EventQuery filters the events listing. Zero dates and an empty type are omitted.
type EventQuery struct {
	UpcomingOnly bool
	Type         string
	FromDate     time.Time
	ToDate       time.Time
}

// Values encodes the query for the events endpoint.
func (q EventQuery) Values() url.Values {
	values := url.Values{}
	values.Set("upcoming_only", strconv.FormatBool(q.UpcomingOnly))
	if q.Type != "" {
		values.Set("type", q.Type)
	}
	if !q.FromDate.IsZero() {
		values.Set("from_date", q.FromDate.Format(queryDateLayout))
	}
	if !q.ToDate.IsZero() {
		values.Set("to_date", q.ToDate.Format(queryDateLayout))
	}
	return values
}

// ClubAPI is the set of authenticated business calls.
type ClubAPI interface {
	ListUpcomingEvents(ctx context.Context) ([]Event, error)
	ListEvents(ctx context.Context, query EventQuery) ([]Event, error)
	GetEvent(ctx context.Context, eventID int) (*EventDetail, error)
	RegisterForEvent(ctx context.Context, eventID int) (*RegistrationResult, error)
	UnregisterFromEvent(ctx context.Context, eventID int) (*RegistrationResult, error)
	ListCompetitions(ctx context.Context, upcomingOnly bool) ([]Competition, error)
	GetCompetition(ctx context.Context, competitionID int) (*CompetitionDetail, error)
	SubmitScore(ctx context.Context, competitionID int, score ArrowScore) (*ScoreSubmission, error)
	SubmitScoresBatch(ctx context.Context, competitionID int, scores []ArrowScore) (*BatchScoreSubmission, error)
}

// EventFilter determines whether an event should be hidden from listings.
type EventFilter interface {
	ShouldExclude(name string) bool
}

// Dashboard is the welcome screen data.
type Dashboard struct {
	Events       []Event
	Competitions []Competition
}

// DashboardLoader fetches the welcome screen data.
type DashboardLoader interface {
	Load(ctx context.Context, filter EventFilter) (*Dashboard, error)
}
