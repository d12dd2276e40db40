// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

type AnalysisEvent struct {
	UserID     string    `json:"user_id"`
	SpotID     *string   `json:"spot_id,omitempty"`
	Type       string    `json:"type"`
	Confidence float64   `json:"confidence"`
	Difficulty string    `json:"difficulty"`
	Source     string    `json:"source"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6380", "Redis address for streams")
	listenAddr := flag.String("listen", ":9999", "local webhook address to catch the worker delivery")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Test event (ledge spot in Barcelona, MACBA)
	event := AnalysisEvent{
		UserID:     "test-user",
		SpotID:     ptr("macba-ledge-1"),
		Type:       "ledge",
		Confidence: 0.87,
		Difficulty: "medium",
		Source:     "primary",
		AnalyzedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:analysis:events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:analysis:events\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   User ID: %s\n", event.UserID)
	fmt.Printf("   Type: %s (%.2f)\n", event.Type, event.Confidence)

	// Catch the worker delivery. Run cmd/worker with
	// WORKER_NOTIFIER_URL=http://localhost:9999/ pointed here.
	fmt.Printf("\n⏳ Waiting for the notification worker to deliver on %s ...\n", *listenAddr)

	delivered := make(chan []byte, 1)
	srv := &http.Server{Addr: *listenAddr}
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		select {
		case delivered <- body:
		default:
		}
	})
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Webhook listener failed: %v", err)
		}
	}()
	defer srv.Shutdown(ctx)

	select {
	case <-time.After(30 * time.Second):
		fmt.Println("❌ Timeout waiting for delivery")
	case body := <-delivered:
		var response map[string]interface{}
		if err := json.Unmarshal(body, &response); err != nil {
			fmt.Printf("⚠️  Delivery received but body is not JSON: %s\n", body)
			return
		}
		fmt.Printf("\n✅ Delivery received!\n")
		prettyJSON, _ := json.MarshalIndent(response, "", "  ")
		fmt.Printf("%s\n", prettyJSON)
	}
}
