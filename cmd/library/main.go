package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"magicwriting/internal/config"
	"magicwriting/internal/logger"
	"magicwriting/internal/models"
	"magicwriting/internal/service"
	"magicwriting/internal/validation"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)

	// Export flags
	exportFormat := exportCmd.String("format", service.FormatJSON, "Output format: json or yaml")
	exportTheme := exportCmd.String("theme", "", "Only export entries for this theme")
	exportOutput := exportCmd.String("output", "", "Output file path (default: stdout)")

	// Search flags
	searchTopic := searchCmd.String("topic", "", "Writing topic, e.g. \"My Pet\" (required)")
	searchFormat := searchCmd.String("format", service.FormatYAML, "Output format: json or yaml")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	appLogger, err := logger.New(cfg.AppEnv, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	exportService := service.NewExportService(appLogger)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(exportService, *exportFormat, *exportTheme, *exportOutput)

	case "search":
		searchCmd.Parse(os.Args[2:])
		if err := validation.ValidateTopic(*searchTopic); err != nil {
			fmt.Println("Error: -topic flag is required")
			searchCmd.PrintDefaults()
			os.Exit(1)
		}
		handleSearch(exportService, strings.TrimSpace(*searchTopic), *searchFormat)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(exportService *service.ExportService, format, themeName, outputPath string) {
	var theme models.Theme
	if themeName != "" {
		t, err := validation.ValidateTheme(themeName)
		if err != nil {
			log.Fatalf("Unknown theme %q", themeName)
		}
		theme = t
	}

	if outputPath == "" {
		if err := exportService.ExportToWriter(os.Stdout, format, theme); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	if err := exportService.Export(outputPath, format, theme); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fileInfo, err := os.Stat(outputPath)
	if err == nil {
		log.Printf("Export complete! File size: %.1f KB", float64(fileInfo.Size())/1024)
	}
}

func handleSearch(exportService *service.ExportService, topic, format string) {
	if err := service.Encode(os.Stdout, format, exportService.Search(topic)); err != nil {
		log.Fatalf("Search failed: %v", err)
	}
}

func printUsage() {
	fmt.Println("Magic Writing content library tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  library export [-format json|yaml] [-theme animals] [-output file]")
	fmt.Println("  library search -topic \"My Pet\" [-format json|yaml]")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  library export -format yaml -output content.yaml")
	fmt.Println("  library export -theme school")
	fmt.Println("  library search -topic \"My School Life\"")
}
