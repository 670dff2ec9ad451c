package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"shutter-monitor/internal/api"
	"shutter-monitor/internal/kafka"
)

// Compares the events mirrored to Kafka for one camera and day against the
// log served by the API. Both must list the same events in the same order.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated broker list")
	topic := flag.String("topic", "shutter_events", "event topic")
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	camera := flag.String("camera", "1_1", "camera id")
	date := flag.String("date", time.Now().Format("2006-01-02"), "day to compare")
	idle := flag.Duration("idle", 10*time.Second, "stop reading after this long without messages")
	flag.Parse()

	reader := kafka.NewReader(strings.Split(*brokers, ","), *topic, "")
	defer reader.Close()

	var mirrored []kafka.ShutterEvent
	for {
		ctx, cancel := context.WithTimeout(context.Background(), *idle)
		err := kafka.Consume(ctx, reader, func(ev kafka.ShutterEvent) error {
			if ev.CameraID == *camera && ev.Date == *date {
				mirrored = append(mirrored, ev)
			}
			cancel()
			return nil
		})
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded)
		cancel()
		if err != nil {
			panic(err)
		}
		if timedOut {
			break
		}
	}
	fmt.Printf("Read %d events for camera %s on %s from %s\n", len(mirrored), *camera, *date, *topic)

	resp, err := http.Get(fmt.Sprintf("%s/shutters/%s?date=%s", *baseURL, *camera, *date))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("API status: %s\n", resp.Status)
		os.Exit(1)
	}
	var daily api.GetDailyShutterResponse
	if err := json.NewDecoder(resp.Body).Decode(&daily); err != nil {
		panic(err)
	}

	if len(daily.Events) != len(mirrored) {
		fmt.Printf("MISMATCH: api has %d events, kafka has %d\n", len(daily.Events), len(mirrored))
		os.Exit(1)
	}
	for i, e := range daily.Events {
		m := mirrored[i]
		if e.Event != string(m.Event) || e.Time != m.Time || e.ShutterID != m.ShutterID {
			fmt.Printf("MISMATCH at %d: api=%s@%s kafka=%s@%s\n", i, e.Event, e.Time, m.Event, m.Time)
			os.Exit(1)
		}
	}
	fmt.Println("OK: api and kafka agree")
}
