package entities

// Intent represents a detected message intent category.
type Intent string

const (
	IntentSymptomInquiry  Intent = "symptom_inquiry"  // e.g., "I have a headache"
	IntentDiseaseInfo     Intent = "disease_info"     // e.g., "what is diabetes"
	IntentMedicationQuery Intent = "medication_query" // e.g., "dosage of paracetamol"
	IntentEmergency       Intent = "emergency"        // e.g., "severe chest pain"
	IntentGeneralHealth   Intent = "general_health"   // everything else
)

// ValidIntents returns all valid intent values.
func ValidIntents() []Intent {
	return []Intent{IntentSymptomInquiry, IntentDiseaseInfo, IntentMedicationQuery, IntentEmergency, IntentGeneralHealth}
}

// IsValid checks if the intent value is one of the defined constants.
func (i Intent) IsValid() bool {
	switch i {
	case IntentSymptomInquiry, IntentDiseaseInfo, IntentMedicationQuery, IntentEmergency, IntentGeneralHealth:
		return true
	}
	return false
}
