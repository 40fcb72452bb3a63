package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/model"
	"go.uber.org/zap"
)

// PDFGenerator renders advice results as printable reports
type PDFGenerator struct {
	logger *zap.Logger
}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator(logger *zap.Logger) *PDFGenerator {
	return &PDFGenerator{
		logger: logger,
	}
}

// ReportData contains all data needed for report generation
type ReportData struct {
	Title       string
	Author      string
	GeneratedAt time.Time
	Metrics     model.HealthMetrics
	Advice      model.AdviceResult
}

// Generate creates a PDF report from the provided data
func (g *PDFGenerator) Generate(data *ReportData) ([]byte, error) {
	g.logger.Info("generating PDF report",
		zap.String("title", data.Title),
		zap.String("category", data.Advice.BMI.Category.String()),
	)

	// Create new PDF
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(data.Title, true)
	pdf.SetAuthor(data.Author, true)
	pdf.SetCreationDate(data.GeneratedAt)

	// Add page
	pdf.AddPage()

	g.addTitle(pdf, data.Title, data.GeneratedAt)
	g.addMetrics(pdf, data.Metrics)
	g.addBMI(pdf, data.Advice.BMI)
	g.addEnergy(pdf, data.Advice)
	g.addPlan(pdf, "Fitness Plan", data.Advice.FitnessPlan)
	g.addPlan(pdf, "Diet Plan", data.Advice.DietPlan)
	g.addDisclaimer(pdf, data.Advice.Disclaimer)

	// Generate PDF bytes
	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		g.logger.Error("failed to generate PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	g.logger.Info("PDF report generated successfully",
		zap.Int("size_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

// addTitle adds the report title and header information
func (g *PDFGenerator) addTitle(pdf *gofpdf.Fpdf, title string, generatedAt time.Time) {
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(10)
}

// addSectionHeader adds a section header
func (g *PDFGenerator) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

func (g *PDFGenerator) addMetrics(pdf *gofpdf.Fpdf, m model.HealthMetrics) {
	g.addSectionHeader(pdf, "Your Health Metrics")

	rows := [][2]string{
		{"Weight", fmt.Sprintf("%.1f kg", m.Weight)},
		{"Height", fmt.Sprintf("%.0f cm", m.Height)},
		{"Age", fmt.Sprintf("%d years", m.Age)},
		{"Gender", string(m.Gender)},
		{"Activity level", string(m.ActivityLevel)},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addBMI(pdf *gofpdf.Fpdf, bmi model.BMIResult) {
	g.addSectionHeader(pdf, "Body Mass Index")

	r, gr, b := severityColor(bmi.Severity)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(30, 10, fmt.Sprintf("%.1f", bmi.Value), "", 0, "L", false, 0, "")
	pdf.SetTextColor(r, gr, b)
	pdf.CellFormat(0, 10, bmi.Category.String(), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "BMI = weight(kg) / (height(m))^2", "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func (g *PDFGenerator) addEnergy(pdf *gofpdf.Fpdf, advice model.AdviceResult) {
	g.addSectionHeader(pdf, "Daily Calorie Needs")

	pdf.CellFormat(0, 6, fmt.Sprintf("Basal metabolic rate: %.0f kcal", advice.BMR), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total daily energy expenditure: %d kcal", advice.CalorieNeeds), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Recommended daily intake: %d kcal", advice.AdjustedCalories), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

// addPlan renders a plan as a numbered list
func (g *PDFGenerator) addPlan(pdf *gofpdf.Fpdf, title string, plan model.Plan) {
	g.addSectionHeader(pdf, title)

	if len(plan) == 0 {
		pdf.CellFormat(0, 8, "No recommendations available.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	for i, item := range plan {
		pdf.CellFormat(8, 6, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, item, "", "L", false)
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addDisclaimer(pdf *gofpdf.Fpdf, disclaimer string) {
	if disclaimer == "" {
		return
	}
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Note: "+disclaimer, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
}

func severityColor(s model.Severity) (int, int, int) {
	switch s {
	case model.SeverityWarning:
		return 202, 138, 4
	case model.SeverityDanger:
		return 200, 30, 30
	default:
		return 22, 140, 60
	}
}
