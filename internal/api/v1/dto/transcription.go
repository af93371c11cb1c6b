package dto

// TranscriptionResponse is the success payload of POST /transcribe
type TranscriptionResponse struct {
	Success             bool    `json:"success"`
	Text                string  `json:"text"`
	Language            string  `json:"language"`
	LanguageProbability float64 `json:"language_probability"`
	Duration            float64 `json:"duration"`
}

// HealthResponse is the payload of GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	ModelLoaded   bool   `json:"model_loaded"`
	CUDAAvailable bool   `json:"cuda_available"`
}

// ServiceInfoResponse is the payload of GET /
type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Model     string            `json:"model"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}
