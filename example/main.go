// Example program demonstrating the releaseable library API.
//
// Run from the root of a package repository to preview its release:
//
//	go run github.com/MyCarrier-DevOps/go-releaseable/example
//
// Set RELEASE=1 to perform the release instead of a dry run.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/MyCarrier-DevOps/go-releaseable/pkg/releaseable"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rel, err := releaseable.New(ctx, releaseable.Options{
		Path: ".",
		Overrides: &releaseable.Config{
			DryRun: releaseable.Bool(os.Getenv("RELEASE") != "1"),
			Silent: releaseable.Bool(false),
		},
		BuildCommitMessage: func(version string) string {
			return fmt.Sprintf("chore(release): %s [skip ci]", version)
		},
	})
	if err != nil {
		log.Fatalf("preparing release failed: %v", err)
	}

	printPlan(rel)

	if err := rel.Run(ctx); err != nil {
		log.Fatalf("release failed: %v", err)
	}
}

func printPlan(rel *releaseable.Release) {
	fmt.Printf("=== Release %s ===\n", rel.Version())
	for i, step := range rel.Plan() {
		if step.Skipped {
			fmt.Printf("%2d. %-16s (skipped: %s)\n", i+1, step.Name, step.Reason)
			continue
		}
		fmt.Printf("%2d. %-16s %s\n", i+1, step.Name, step.Description)
	}
	fmt.Println()
}
