package utils

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"foundryos/backend/models"
	"foundryos/backend/scoring"
)

const (
	recordSheet  = "Record"
	metricsSheet = "Purpose Score"
)

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// DashboardWorkbook exports a finalized record and its derived scores as an
// XLSX workbook with one sheet each.
func DashboardWorkbook(rec models.OnboardingRecord, cov models.Covenant, m scoring.Metrics) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	p, s, mt, ms := rec.FounderProfile, rec.StartupDetails, rec.MissionTracker, rec.MarketplaceSettings
	completedAt := ""
	if rec.CompletedAt != nil {
		completedAt = rec.CompletedAt.Format("2006-01-02 15:04:05")
	}
	intention := cov.IntentionLabel
	if intention == "" {
		intention = "Intention"
	}
	steps := make([]string, 0, len(rec.CompletedSteps))
	for _, st := range rec.CompletedSteps {
		steps = append(steps, strconv.Itoa(st))
	}
	recordRows := [][]any{
		{"Field", "Value"},
		{"Founder ID", rec.FounderID},
		{"Name", p.Name},
		{"Email", p.Email},
		{"Country", p.Country},
		{"Region", p.Region},
		{"Faith Tradition", p.FaithTradition},
		{"Bio", p.Bio},
		{"Calling", p.Calling},
		{"Covenant", cov.Name},
		{"Project Name", s.ProjectName},
		{"Mission Statement", s.MissionStatement},
		{"Impact Type", s.ImpactType},
		{"Region of Operation", s.RegionOfOperation},
		{"Stage", s.Stage},
		{"Readiness", s.Readiness},
		{"Weekly Focus", mt.WeeklyFocus},
		{"Reflection", mt.Reflection},
		{intention, mt.PrayerIntention},
		{"Public Profile", ms.IsPublic},
		{"Investor Contact", ms.AllowInvestorContact},
		{"Funding Stage", ms.FundingStage},
		{"Funding Amount", ms.FundingAmount},
		{"Digital Signature", rec.DigitalSignature},
		{"Completed Steps", strings.Join(steps, ",")},
		{"Completed At", completedAt},
	}
	if err := writeRows(f, recordSheet, recordRows); err != nil {
		return nil, fmt.Errorf("write record sheet: %w", err)
	}

	if _, err := f.NewSheet(metricsSheet); err != nil {
		return nil, fmt.Errorf("add metrics sheet: %w", err)
	}
	metricRows := [][]any{
		{"Metric", "Score"},
		{"Clarity", m.Clarity},
		{"Covenant Depth", m.CovenantDepth},
		{"Execution", m.Execution},
		{"Consistency", m.Consistency},
		{"Social Proof", m.SocialProof},
		{"Overall", m.Overall},
		{"Label", m.Label},
		{"Days Since Joining", m.DaysSinceJoining},
	}
	if err := writeRows(f, metricsSheet, metricRows); err != nil {
		return nil, fmt.Errorf("write metrics sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}
