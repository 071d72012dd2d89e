package dto

type WelcomeResponse struct {
	Message string `json:"message"`
	Info    string `json:"info"`
	Author  string `json:"author"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

type InfoResponse struct {
	Server    string            `json:"server"`
	Framework string            `json:"framework"`
	Version   string            `json:"version"`
	GoVersion string            `json:"go_version"`
	Features  []string          `json:"features"`
	Endpoints map[string]string `json:"endpoints"`
}
