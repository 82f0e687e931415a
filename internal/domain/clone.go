package domain

// Clone returns a deep copy so no shared mutable slices escape the store.
func (m Medication) Clone() Medication {
	out := m
	if m.Times != nil {
		out.Times = append([]string(nil), m.Times...)
	}
	if m.History != nil {
		out.History = append([]HistoryEntry(nil), m.History...)
	}
	if m.LastTaken != nil {
		lt := *m.LastTaken
		out.LastTaken = &lt
	}
	return out
}

// CloneMedications deep-copies a medication collection.
func CloneMedications(meds []Medication) []Medication {
	if meds == nil {
		return nil
	}
	out := make([]Medication, len(meds))
	for i, m := range meds {
		out[i] = m.Clone()
	}
	return out
}

// CloneAppointments copies an appointment collection.
func CloneAppointments(appts []Appointment) []Appointment {
	if appts == nil {
		return nil
	}
	return append([]Appointment(nil), appts...)
}

// CloneRefillRequests copies a refill request collection.
func CloneRefillRequests(reqs []RefillRequest) []RefillRequest {
	if reqs == nil {
		return nil
	}
	return append([]RefillRequest(nil), reqs...)
}

// CloneWellnessEntries copies a wellness entry collection.
func CloneWellnessEntries(entries []WellnessEntry) []WellnessEntry {
	if entries == nil {
		return nil
	}
	return append([]WellnessEntry(nil), entries...)
}

// CloneStrings copies a string sequence (favorites, schedule slots).
func CloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
