/*
main.go - Application entry point

PURPOSE:
  Runs the turboSAP payroll configuration generator: loads a company
  profile, derives the minimal payroll area set, validates it, and writes
  the SAP configuration files.

PIPELINE:
  1. Parse command-line flags (and .env, if present)
  2. Load the profile (JSON file or canned scenario)
  3. Derive payroll areas
  4. Validate coverage, union calendars, and code uniqueness
  5. Write the requested export files plus a manifest

COMMAND-LINE FLAGS:
  -profile   Path to an intake profile JSON file
  -scenario  Canned scenario ID instead of a profile file (default: single-weekly)
  -out       Output directory (default: ./out)
  -years     Years of period and pay-date rows (default: 1)
  -format    Comma-separated outputs: csv, json, xlsx (default: csv,json)
  -list      List available scenarios and export files, then exit

EXAMPLES:
  # Derive from a client intake document
  ./turbosap -profile=./client.json -out=./client-config

  # Demo run with the union scenario, two years of calendars
  ./turbosap -scenario=union-shop -years=2 -format=csv,xlsx

ENVIRONMENT:
  Read from .env via godotenv when present. TURBOSAP_OUT overrides the
  default output directory.

SEE ALSO:
  - payroll/reducer.go: Derivation rules
  - export/files.go:    What gets written
  - scenarios:          Canned profiles
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/reachnett/payroll-engine/export"
	"github.com/reachnett/payroll-engine/factory"
	"github.com/reachnett/payroll-engine/payroll"
	"github.com/reachnett/payroll-engine/scenarios"
)

func main() {
	// Optional .env; absence is not an error
	_ = godotenv.Load()

	profilePath := flag.String("profile", "", "intake profile JSON file")
	scenarioID := flag.String("scenario", "single-weekly", "canned scenario ID")
	outDir := flag.String("out", defaultOutDir(), "output directory")
	years := flag.Int("years", 1, "years of period and pay-date rows")
	formats := flag.String("format", "csv,json", "outputs to write: csv, json, xlsx")
	list := flag.Bool("list", false, "list scenarios and export files")
	flag.Parse()

	if *list {
		printCatalog()
		return
	}

	profile, err := loadProfile(*profilePath, *scenarioID)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	areas := payroll.DeriveAreas(profile)
	result := payroll.Validate(profile, areas)

	log.Printf("Derived %d payroll areas covering %d of %d employees",
		len(areas), result.EmployeesCovered, result.TotalEmployees)
	for _, w := range result.Warnings {
		log.Printf("Warning: %s", w)
	}
	for _, e := range result.Errors {
		log.Printf("Error: %s", e)
	}
	if !result.IsValid {
		log.Fatal("Configuration invalid, not exporting")
	}

	exporter := export.NewExporter()
	exporter.Years = *years

	written, err := writeOutputs(exporter, profile, areas, *outDir, *formats)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	manifest, err := writeManifest(*outDir, written)
	if err != nil {
		log.Fatalf("Failed to write manifest: %v", err)
	}
	log.Printf("Export %s complete: %d files in %s", manifest, len(written), *outDir)
	for _, name := range written {
		log.Printf("  %s", name)
	}
}

// writeManifest records the export run id, timestamp, and file list next to
// the exported files. Returns the run id.
func writeManifest(outDir string, files []string) (string, error) {
	id := uuid.NewString()
	doc := map[string]any{
		"exportId":   id,
		"exportedAt": time.Now().UTC().Format(time.RFC3339),
		"files":      files,
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(outDir, "manifest.json"), raw, 0o644); err != nil {
		return "", err
	}
	return id, nil
}

func defaultOutDir() string {
	if dir := os.Getenv("TURBOSAP_OUT"); dir != "" {
		return dir
	}
	return "./out"
}

func loadProfile(profilePath, scenarioID string) (payroll.CompanyProfile, error) {
	if profilePath != "" {
		raw, err := os.ReadFile(profilePath)
		if err != nil {
			return payroll.CompanyProfile{}, err
		}
		return factory.NewProfileFactory().ParseProfile(string(raw))
	}

	profile, ok := scenarios.Load(scenarioID)
	if !ok {
		return payroll.CompanyProfile{}, fmt.Errorf("unknown scenario %q", scenarioID)
	}
	return profile, nil
}

func writeOutputs(e export.Exporter, profile payroll.CompanyProfile, areas []payroll.PayrollArea, outDir, formats string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	wantCSV, wantJSON, wantXLSX := parseFormats(formats)
	var written []string

	for _, def := range export.FileDefs {
		switch def.ID {
		case "workbook":
			if !wantXLSX {
				continue
			}
			raw, err := e.WorkbookBytes(profile, areas)
			if err != nil {
				return nil, err
			}
			if err := os.WriteFile(filepath.Join(outDir, def.Filename), raw, 0o644); err != nil {
				return nil, err
			}
		case "full-config":
			if !wantJSON {
				continue
			}
			if err := writeTextFile(e, def, profile, areas, outDir); err != nil {
				return nil, err
			}
		default:
			if !wantCSV {
				continue
			}
			if err := writeTextFile(e, def, profile, areas, outDir); err != nil {
				return nil, err
			}
		}
		written = append(written, def.Filename)
	}
	return written, nil
}

func writeTextFile(e export.Exporter, def export.FileDef, profile payroll.CompanyProfile, areas []payroll.PayrollArea, outDir string) error {
	content, err := e.FileContent(def.ID, profile, areas)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, def.Filename), []byte(content), 0o644)
}

func parseFormats(formats string) (wantCSV, wantJSON, wantXLSX bool) {
	for _, f := range strings.Split(formats, ",") {
		switch strings.TrimSpace(strings.ToLower(f)) {
		case "csv":
			wantCSV = true
		case "json":
			wantJSON = true
		case "xlsx":
			wantXLSX = true
		}
	}
	return
}

func printCatalog() {
	fmt.Println("Scenarios:")
	for _, s := range scenarios.All {
		fmt.Printf("  %-16s %s\n", s.ID, s.Description)
	}
	fmt.Println("Export files:")
	for _, def := range export.FileDefs {
		fmt.Printf("  %-24s %s\n", def.Filename, def.Label)
	}
}
