package report

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/waste-service/internal/models"
)

func TestWasteReport_XML(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	r := WasteReport{
		UserID:      1,
		Start:       day.AddDate(0, 0, -7),
		End:         day,
		GeneratedAt: day,
		Records: []models.WasteRecord{
			{ID: 1, UserID: 1, WasteType: models.WasteRecycling, Amount: 3, Date: day},
			{ID: 2, UserID: 1, WasteType: models.WasteGeneral, Amount: 1, Date: day.Add(-time.Hour)},
		},
		Statistics: models.WasteStatistics{
			TotalWaste:        4,
			WasteByType:       map[models.WasteType]float64{models.WasteRecycling: 3, models.WasteGeneral: 1},
			PercentagesByType: map[models.WasteType]float64{models.WasteRecycling: 75, models.WasteGeneral: 25},
		},
		Impact: models.ImpactMetrics{CarbonSaved: 6.5, WaterSaved: 18, TreesEquivalent: 0.3178},
	}

	raw, err := r.XML()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))

	root := doc.SelectElement("WasteReport")
	require.NotNil(t, root)
	assert.Equal(t, "1", root.SelectAttrValue("userId", ""))
	assert.Equal(t, "2025-03-10T12:00:00Z", root.SelectAttrValue("generatedAt", ""))

	assert.Equal(t, "4.00", doc.FindElement("//Summary/TotalWaste").Text())
	assert.Equal(t, "2", doc.FindElement("//Summary/RecordCount").Text())

	types := doc.FindElements("//Summary/ByType/Type")
	require.Len(t, types, 2)
	assert.Equal(t, "general", types[0].SelectAttrValue("name", ""), "types are sorted by name")
	assert.Equal(t, "75.00", types[1].SelectAttrValue("percentage", ""))

	assert.Equal(t, "6.50", doc.FindElement("//EnvironmentalImpact/CarbonSaved").Text())

	records := doc.FindElements("//Records/Record")
	require.Len(t, records, 2)
	assert.Equal(t, "recycling", records[0].FindElement("./WasteType").Text())
	assert.Equal(t, "2025-03-10T11:00:00Z", records[1].FindElement("./Date").Text())
}

func TestWasteReport_OpenPeriod(t *testing.T) {
	raw, err := WasteReport{GeneratedAt: time.Unix(0, 0)}.XML()
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))
	period := doc.FindElement("//Period")
	require.NotNil(t, period)
	assert.Nil(t, period.SelectAttr("start"))
	assert.Nil(t, doc.Root().SelectAttr("userId"))
	assert.Empty(t, doc.FindElements("//Records/Record"))
}
