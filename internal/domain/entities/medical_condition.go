package entities

// MedicalCondition is one knowledge-base entry, keyed by its canonical
// lowercase name. Loaded once at startup, never mutated.
type MedicalCondition struct {
	Name        string   `json:"name"`
	Symptoms    []string `json:"symptoms"`
	Causes      []string `json:"causes"`
	Treatments  []string `json:"treatments"`
	Precautions []string `json:"precautions"`
	Emergency   bool     `json:"emergency"`
}
