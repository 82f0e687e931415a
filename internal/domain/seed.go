package domain

// Seed data shown before any persisted state has loaded. The UI renders
// these immediately; the initial load replaces them wholesale when stored
// data exists.

// DefaultSettings returns the out-of-box preference values.
func DefaultSettings() AppSettings {
	return AppSettings{
		LeftHandMode:         false,
		BiometricEnabled:     true,
		NotificationLeadTime: 30,
		SessionTimeout:       15,
		TextSize:             TextMedium,
		HighContrast:         false,
	}
}

// SeedMedications returns the built-in sample medications.
func SeedMedications() []Medication {
	return []Medication{
		{
			ID:               "1",
			Name:             "Lisinopril",
			Dose:             "10mg",
			Frequency:        "Once daily",
			Times:            []string{"09:00"},
			RefillsRemaining: 2,
			Pharmacy:         "CVS Pharmacy - Main St",
			History:          []HistoryEntry{},
		},
		{
			ID:               "2",
			Name:             "Metformin",
			Dose:             "500mg",
			Frequency:        "Twice daily",
			Times:            []string{"08:00", "20:00"},
			RefillsRemaining: 1,
			Pharmacy:         "CVS Pharmacy - Main St",
			History:          []HistoryEntry{},
		},
	}
}

// SeedAppointments returns the built-in sample appointments.
func SeedAppointments() []Appointment {
	return []Appointment{
		{
			ID:       "1",
			Title:    "Dr. Smith - Follow-up",
			Date:     "2026-02-20",
			Time:     "14:00",
			Location: "City Medical Center",
			Provider: "Dr. Sarah Smith",
		},
		{
			ID:       "2",
			Title:    "Physical Therapy",
			Date:     "2026-02-21",
			Time:     "10:30",
			Location: "Rehab Center",
			Provider: "John Davis, PT",
		},
	}
}

// SeedFavorites returns the default favorite navigation paths.
func SeedFavorites() []string {
	return []string{"/medications", "/appointments"}
}

// Contacts returns the static care-team directory. Not persisted, not
// mutable through the store.
func Contacts() []Contact {
	return []Contact{
		{ID: "1", Name: "Dr. Sarah Smith", Role: "Primary Care", Phone: "555-0100"},
		{ID: "2", Name: "John Davis, PT", Role: "Physical Therapist", Phone: "555-0200"},
		{ID: "3", Name: "Care Coordinator", Role: "Support", Phone: "555-0300"},
	}
}

// MessageTemplates returns the static canned caregiver messages.
func MessageTemplates() []MessageTemplate {
	return []MessageTemplate{
		{ID: "1", Text: "Running late, will be there in 15 minutes", Category: "appointment"},
		{ID: "2", Text: "Medication taken as scheduled", Category: "update"},
		{ID: "3", Text: "Need to reschedule appointment", Category: "appointment"},
		{ID: "4", Text: "Feeling better today", Category: "wellness"},
		{ID: "5", Text: "Not feeling well, need assistance", Category: "urgent"},
	}
}
