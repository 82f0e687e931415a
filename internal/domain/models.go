package domain

import (
	"time"
)

// HistoryAction is what a caregiver recorded for a medication slot.
type HistoryAction string

const (
	ActionTaken   HistoryAction = "taken"
	ActionSkipped HistoryAction = "skipped"
)

// Mood levels for wellness check-ins.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

// EnergyLevel for wellness check-ins.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// PainLevel for wellness check-ins.
type PainLevel string

const (
	PainNone     PainLevel = "none"
	PainMild     PainLevel = "mild"
	PainModerate PainLevel = "moderate"
	PainSevere   PainLevel = "severe"
)

// RefillStatus tracks a pharmacy refill request.
type RefillStatus string

const (
	RefillPending    RefillStatus = "pending"
	RefillProcessing RefillStatus = "processing"
	RefillReady      RefillStatus = "ready"
	RefillCompleted  RefillStatus = "completed"
)

// TextSize is the accessibility text scale.
type TextSize string

const (
	TextSmall  TextSize = "small"
	TextMedium TextSize = "medium"
	TextLarge  TextSize = "large"
	TextXLarge TextSize = "xlarge"
)

// HistoryEntry is one taken/skipped record in a medication's log.
type HistoryEntry struct {
	Timestamp time.Time     `json:"timestamp"`
	Action    HistoryAction `json:"action"`
	User      string        `json:"user"`
}

// LastTaken marks the most recent taken dose.
type LastTaken struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
}

// Medication represents a tracked prescription.
type Medication struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Dose             string         `json:"dose"`
	Frequency        string         `json:"frequency"`
	Times            []string       `json:"times"` // "HH:MM" schedule slots
	RefillsRemaining int            `json:"refillsRemaining"`
	Pharmacy         string         `json:"pharmacy"`
	LastTaken        *LastTaken     `json:"lastTaken,omitempty"`
	History          []HistoryEntry `json:"history"`
}

// Appointment is a single-occurrence calendar entry.
type Appointment struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"` // ISO calendar date "YYYY-MM-DD"
	Time     string `json:"time"` // "HH:MM"
	Location string `json:"location"`
	Provider string `json:"provider"`
}

// RefillRequest is a 3-step pharmacy refill workflow. MedicationName and
// Pharmacy are snapshots taken at creation time and do not follow later
// medication edits.
type RefillRequest struct {
	ID             string       `json:"id"`
	MedicationID   string       `json:"medicationId"`
	MedicationName string       `json:"medicationName"`
	Status         RefillStatus `json:"status"`
	RequestDate    time.Time    `json:"requestDate"`
	Pharmacy       string       `json:"pharmacy"`
	Step           int          `json:"step"` // 1..3
}

// WellnessEntry is a daily self-reported check-in.
type WellnessEntry struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Mood   Mood        `json:"mood"`
	Energy EnergyLevel `json:"energy"`
	Pain   PainLevel   `json:"pain"`
	Notes  string      `json:"notes,omitempty"`
}

// AppSettings holds user preferences.
type AppSettings struct {
	LeftHandMode         bool     `json:"leftHandMode"`
	BiometricEnabled     bool     `json:"biometricEnabled"`
	NotificationLeadTime int      `json:"notificationLeadTime"` // minutes
	SessionTimeout       int      `json:"sessionTimeout"`       // minutes
	TextSize             TextSize `json:"textSize"`
	HighContrast         bool     `json:"highContrast"`
}

// Contact is static care-team reference data.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone,omitempty"`
}

// MessageTemplate is a canned caregiver message.
type MessageTemplate struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}
