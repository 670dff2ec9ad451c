package api

type LogEntry struct {
	ID        int64  `json:"id"`
	Time      string `json:"time"`
	Event     string `json:"event"`
	Action    string `json:"action"`
	ShutterID int64  `json:"shutterID"`
}

type GetDailyShutterResponse struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	CameraID  string     `json:"cameraID"`
	OpenTime  *string    `json:"openTime"`
	CloseTime *string    `json:"closeTime"`
	Events    []LogEntry `json:"events"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
