package main

import (
	"context"
	"log"
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
