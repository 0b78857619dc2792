// Package report renders waste records as an XML document for export.
package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/Dan9191/waste-service/internal/models"
)

// WasteReport is the content of one export
type WasteReport struct {
	UserID      int64 // 0 for every user
	Start       time.Time
	End         time.Time
	GeneratedAt time.Time
	Records     []models.WasteRecord
	Statistics  models.WasteStatistics
	Impact      models.ImpactMetrics
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Document builds the XML tree
func (r WasteReport) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("WasteReport")
	root.CreateAttr("generatedAt", r.GeneratedAt.UTC().Format(time.RFC3339))
	if r.UserID != 0 {
		root.CreateAttr("userId", strconv.FormatInt(r.UserID, 10))
	}

	period := root.CreateElement("Period")
	if !r.Start.IsZero() {
		period.CreateAttr("start", r.Start.UTC().Format(time.RFC3339))
	}
	if !r.End.IsZero() {
		period.CreateAttr("end", r.End.UTC().Format(time.RFC3339))
	}

	summary := root.CreateElement("Summary")
	summary.CreateElement("TotalWaste").SetText(formatFloat(r.Statistics.TotalWaste))
	summary.CreateElement("RecordCount").SetText(strconv.Itoa(len(r.Records)))

	types := make([]string, 0, len(r.Statistics.WasteByType))
	for t := range r.Statistics.WasteByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	byType := summary.CreateElement("ByType")
	for _, t := range types {
		wt := models.WasteType(t)
		el := byType.CreateElement("Type")
		el.CreateAttr("name", t)
		el.CreateAttr("amount", formatFloat(r.Statistics.WasteByType[wt]))
		el.CreateAttr("percentage", formatFloat(r.Statistics.PercentagesByType[wt]))
	}

	impact := root.CreateElement("EnvironmentalImpact")
	impact.CreateElement("CarbonSaved").SetText(formatFloat(r.Impact.CarbonSaved))
	impact.CreateElement("WaterSaved").SetText(formatFloat(r.Impact.WaterSaved))
	impact.CreateElement("TreesEquivalent").SetText(formatFloat(r.Impact.TreesEquivalent))

	records := root.CreateElement("Records")
	for _, rec := range r.Records {
		el := records.CreateElement("Record")
		el.CreateAttr("id", strconv.FormatInt(rec.ID, 10))
		el.CreateAttr("userId", strconv.FormatInt(rec.UserID, 10))
		el.CreateElement("WasteType").SetText(string(rec.WasteType))
		el.CreateElement("Amount").SetText(formatFloat(rec.Amount))
		el.CreateElement("Date").SetText(rec.Date.UTC().Format(time.RFC3339))
	}

	doc.Indent(2)
	return doc
}

// XML renders the report
func (r WasteReport) XML() ([]byte, error) {
	return r.Document().WriteToBytes()
}
