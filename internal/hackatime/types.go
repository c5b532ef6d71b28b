package hackatime

type statsResponse struct {
	Data statsData `json:"data"`
}

type statsData struct {
	Status   string         `json:"status"`
	Projects []projectStats `json:"projects"`
}

type projectStats struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}
