package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hvackit/loadcalc/internal/climate"
	"github.com/hvackit/loadcalc/internal/engine"
	"github.com/hvackit/loadcalc/internal/engine/batch"
	"github.com/hvackit/loadcalc/internal/validate"
)

const reportWidth = 72

// newPrinter returns a message printer that groups thousands, so BTU totals
// read as 36,500 rather than 36500.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
}

func sectionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
}

func warnStyle(severity validate.Severity) lipgloss.Style {
	switch severity {
	case validate.SeverityError:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	case validate.SeverityWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}
}

// RenderResult renders a full building load report.
//
//nolint:funlen // Sequential report sections.
func RenderResult(result *engine.BuildingLoadResult) string {
	p := newPrinter()
	var b strings.Builder

	b.WriteString(titleStyle().Render("LOAD CALCULATION REPORT"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("═", reportWidth))
	b.WriteString("\n\n")

	b.WriteString(p.Sprintf("  Climate zone      %s (heating %0.f°F / cooling %0.f°F design)\n",
		result.Design.ClimateZone, result.Design.OutdoorHeatingF, result.Design.OutdoorCoolingF))
	b.WriteString(p.Sprintf("  Heating total     %d BTU/hr\n", result.HeatingTotalBTU))
	b.WriteString(p.Sprintf("  Cooling total     %d BTU/hr (%d sensible / %d latent)\n",
		result.CoolingTotalBTU, result.CoolingSensibleBTU, result.CoolingLatentBTU))
	b.WriteString(p.Sprintf("  Infiltration      %.2f ACH natural (%s)\n",
		result.Infiltration.ACHNatural, result.Infiltration.Method))
	b.WriteString("\n")

	b.WriteString(sectionStyle().Render("ROOMS"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-18s %10s %12s %12s %6s %5s\n",
		"Room", "Area", "Heating", "Cooling", "CFM", "Duct"))
	for i := range result.Zones {
		z := &result.Zones[i]
		b.WriteString(p.Sprintf("  %-18s %7.0f sf %8.0f BTU %8.0f BTU %6.0f %4d\"\n",
			truncate(z.RoomName, 18), z.AreaSqFt, z.HeatingBTU, z.CoolingBTU, z.CFMRequired, z.DuctSizeIn))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle().Render("DESIGN FACTORS"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  diversity %.2f   duct %.2f/%.2f (heat/cool)   area correction %.2f",
		result.Design.DiversityFactor,
		result.Design.DuctHeatingFactor, result.Design.DuctCoolingFactor,
		result.Design.AreaCorrectionFactor))
	if result.Design.AreaDiscrepancyPct > 0.10 {
		b.WriteString(fmt.Sprintf(" (%.0f%% area discrepancy)", result.Design.AreaDiscrepancyPct*100))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle().Render("EQUIPMENT"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s, calculated load %.2f tons (Manual S range %s)\n",
		result.Equipment.SystemType, result.Equipment.CalculatedLoadTons, result.Equipment.ManualSRange))
	for _, opt := range result.Equipment.SizeOptions {
		b.WriteString(p.Sprintf("    %.1f ton (%.0f BTU)  ratio %.2f  %4.0f sqft/ton  %s\n",
			opt.CapacityTons, opt.CapacityBTU, opt.Ratio, opt.SqFtPerTon, opt.Rating))
	}
	if result.Equipment.DensityConcern != "" {
		b.WriteString("  " + warnStyle(validate.SeverityWarning).Render(result.Equipment.DensityConcern))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	renderValidation(&b, &result.Validation)

	if len(result.NeedsConfirmation) > 0 {
		b.WriteString(sectionStyle().Render("NEEDS CONFIRMATION"))
		b.WriteString("\n")
		fields := append([]string{}, result.NeedsConfirmation...)
		sort.Strings(fields)
		b.WriteString("  " + strings.Join(fields, ", ") + "\n")
	}

	return b.String()
}

func renderValidation(b *strings.Builder, report *validate.Report) {
	b.WriteString(sectionStyle().Render("VALIDATION"))
	b.WriteString("\n")

	status := "PASS"
	if !report.IsValid {
		status = "NEEDS REVIEW"
	}
	b.WriteString(fmt.Sprintf("  %s (%d findings)\n", status, len(report.Warnings)))

	for _, w := range report.Warnings {
		b.WriteString("  " + warnStyle(w.Severity).Render(fmt.Sprintf("[%s] %s", w.Severity, w.Message)))
		b.WriteString("\n")
		if w.SuggestedFix != "" {
			b.WriteString("      fix: " + w.SuggestedFix + "\n")
		}
	}
	b.WriteString("\n")
}

// RenderClimate renders one climate record.
func RenderClimate(record climate.Record) string {
	var b strings.Builder

	b.WriteString(titleStyle().Render("CLIMATE DESIGN CONDITIONS"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Location          %s\n", record.Location))
	b.WriteString(fmt.Sprintf("  Climate zone      %s\n", record.Zone))
	b.WriteString(fmt.Sprintf("  Heating design    %.0f°F (99%%)\n", record.HeatingDesignTempF))
	b.WriteString(fmt.Sprintf("  Cooling design    %.0f°F (1%%)\n", record.CoolingDesignTempF))
	b.WriteString(fmt.Sprintf("  Grain difference  %.0f gr/lb\n", record.GrainDifference))
	b.WriteString(fmt.Sprintf("  Latitude          %.1f°\n", record.LatitudeDeg))
	if !record.Found {
		b.WriteString(warnStyle(validate.SeverityWarning).
			Render("  location not matched, default zone assumed"))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderBatchSummary renders the per-building outcome table for a batch run.
func RenderBatchSummary(outcomes []batch.Outcome) string {
	p := newPrinter()
	var b strings.Builder

	b.WriteString(titleStyle().Render("BATCH SUMMARY"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %-24s %12s %12s %8s\n", "Building", "Heating", "Cooling", "Status"))

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
			b.WriteString(fmt.Sprintf("  %-24s %12s %12s %8s\n",
				truncate(outcome.Name, 24), "-", "-", "failed"))
			continue
		}
		b.WriteString(p.Sprintf("  %-24s %8d BTU %8d BTU %8s\n",
			truncate(outcome.Name, 24),
			outcome.Result.HeatingTotalBTU, outcome.Result.CoolingTotalBTU, "ok"))
	}

	b.WriteString(fmt.Sprintf("\n  %d buildings, %d failed\n", len(outcomes), failed))
	return b.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 1 {
		return s[:limit]
	}
	return s[:limit-1] + "…"
}
