package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

type logEntry struct {
	ID     int64  `json:"id"`
	Time   string `json:"time"`
	Event  string `json:"event"`
	Action string `json:"action"`
}

type dailyShutter struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	CameraID  string     `json:"cameraID"`
	OpenTime  *string    `json:"openTime"`
	CloseTime *string    `json:"closeTime"`
	Events    []logEntry `json:"events"`
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	camera := flag.String("camera", "1_1", "camera id")
	date := flag.String("date", time.Now().Format("2006-01-02"), "day to query")
	flag.Parse()

	getURL := fmt.Sprintf("%s/shutters/%s?date=%s", *baseURL, url.PathEscape(*camera), url.QueryEscape(*date))
	resp, err := http.Get(getURL)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("GET %s status: %s %s", getURL, resp.Status, body)
		os.Exit(1)
	}

	var result dailyShutter
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		panic(err)
	}
	fmt.Printf("camera %s on %s: open=%s close=%s\n", result.CameraID, result.Date, orDash(result.OpenTime), orDash(result.CloseTime))
	for _, e := range result.Events {
		fmt.Printf("  #%d %s %s\n", e.ID, e.Time, e.Event)
	}
}
