package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"pomodorotimer/quotes"
	"pomodorotimer/stats"
	"pomodorotimer/storage"
	"pomodorotimer/ui"
)

func main() {
	// Check for command-line arguments
	if len(os.Args) > 1 {
		handleCommandLineArgs()
		return
	}

	// Normal GUI mode
	log.Println("Starting Pomodoro Timer...")
	app := ui.NewMainWindow()
	app.ShowAndRun()
}

// handleCommandLineArgs processes command-line arguments
func handleCommandLineArgs() {
	args := os.Args[1:]

	switch args[0] {
	case "-stats", "--stats":
		printStats()
	case "-quote", "--quote":
		printQuote()
	case "-reset-stats", "--reset-stats":
		resetStats()
	case "-help", "--help", "-h", "--h":
		showUsage()
	default:
		fmt.Printf("Unknown option: %s\n", args[0])
		showUsage()
	}
}

// printStats prints the weekly session counts
func printStats() {
	store := storage.NewManager()
	data := store.Load()

	aggregator := stats.NewAggregator(data, store)
	counts := aggregator.WeeklyCounts()
	if len(counts) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println("Completed work sessions per week:")
	fmt.Println("=================================")
	for _, week := range counts {
		fmt.Printf("%s  %d\n", week.Label, week.Count)
	}
	fmt.Printf("\nTotal: %d sessions\n", aggregator.Total())
}

// printQuote fetches and prints one motivational quote
func printQuote() {
	ctx, cancel := context.WithTimeout(context.Background(), quotes.FetchTimeout)
	defer cancel()

	quote := quotes.NewService().Fetch(ctx)
	fmt.Println(quote.String())
}

// resetStats clears the session history on disk
func resetStats() {
	store := storage.NewManager()
	data := store.Load()

	aggregator := stats.NewAggregator(data, store)
	if err := aggregator.Clear(); err != nil {
		fmt.Printf("Error clearing statistics: %v\n", err)
		return
	}
	fmt.Println("Session history cleared.")
}

// showUsage displays command-line usage information
func showUsage() {
	fmt.Println("Pomodoro Timer - Command Line Usage")
	fmt.Println("===================================")
	fmt.Println()
	fmt.Println("GUI Mode (default):")
	fmt.Println("  pomodorotimer")
	fmt.Println()
	fmt.Println("Command Line Options:")
	fmt.Println("  -stats             Print completed sessions per week")
	fmt.Println("  -quote             Print one motivational quote")
	fmt.Println("  -reset-stats       Clear the session history")
	fmt.Println("  -help              Show this help message")
}
