package domain

// Patch types carry partial updates. Nil fields are left untouched by the
// store's shallow merge.

// SettingsPatch is a partial AppSettings update.
type SettingsPatch struct {
	LeftHandMode         *bool
	BiometricEnabled     *bool
	NotificationLeadTime *int
	SessionTimeout       *int
	TextSize             *TextSize
	HighContrast         *bool
}

// MedicationPatch is a partial Medication update.
type MedicationPatch struct {
	Name             *string
	Dose             *string
	Frequency        *string
	Times            *[]string
	RefillsRemaining *int
	Pharmacy         *string
}

// AppointmentPatch is a partial Appointment update.
type AppointmentPatch struct {
	Title    *string
	Date     *string
	Time     *string
	Location *string
	Provider *string
}

// RefillRequestPatch is a partial RefillRequest update.
type RefillRequestPatch struct {
	Status *RefillStatus
	Step   *int
}
