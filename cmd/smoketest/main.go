// Command smoketest exercises a live Skybase deployment end to end:
// register, create a project, track an event, read it back. It is a manual
// testing aid, not part of the SDK surface.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	skybase "github.com/skybase/client-go"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))

	baseURL := os.Getenv("SKYBASE_URL")
	if baseURL == "" {
		fatal("SKYBASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := skybase.New(
		skybase.WithBaseURL(baseURL),
		skybase.WithLogger(logger),
		skybase.WithOnTokenRefresh(func(token string) {
			logger.Info("session token rotated", "token_len", len(token))
		}),
	)
	if err != nil {
		fatal("create client: %v", err)
	}

	email := fmt.Sprintf("smoketest+%s@example.com", uuid.NewString()[:8])
	auth, err := client.Register(ctx, skybase.RegisterParams{
		Email:    email,
		Password: uuid.NewString(),
		Name:     "Smoke Test",
	})
	if err != nil {
		fatal("register: %v", err)
	}
	logger.Info("registered", "user_id", auth.User.ID, "email", email)

	created, err := client.CreateProject(ctx, skybase.CreateProjectParams{
		Name:        "smoketest",
		Description: "created by cmd/smoketest",
	})
	if err != nil {
		fatal("create project: %v", err)
	}
	logger.Info("project created", "project_id", created.Project.ID)

	result, err := client.TrackEvent(ctx, skybase.TrackEventParams{
		UserID: auth.User.ID,
		Event:  "smoketest_ran",
		Meta:   map[string]any{"source": "cmd/smoketest"},
	})
	if err != nil {
		fatal("track event: %v", err)
	}
	logger.Info("event tracked", "event_id", result.EventID)

	events, err := client.Events(ctx, auth.User.ID)
	if err != nil {
		fatal("list events: %v", err)
	}
	logger.Info("events listed", "count", len(events))

	fmt.Println("smoketest passed")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
