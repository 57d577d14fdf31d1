package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"

	"github.com/arjun-pixel/payforge/config"
	"github.com/arjun-pixel/payforge/models"
	"github.com/arjun-pixel/payforge/utils"
)

// recentPayments loads the transaction listing backing both export formats.
func recentPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := config.DB.Order("created_at DESC").Limit(100).Find(&payments).Error
	return payments, err
}

// methodDetail renders the instrument column: masked card or VPA.
func methodDetail(p models.Payment) string {
	if p.Method == models.PaymentMethodCard {
		return fmt.Sprintf("%s ****%s", p.CardNetwork, p.CardLast4)
	}
	return p.VPA
}

// GET /api/v1/transactions/export/excel
func DownloadTransactionsExcel(c *gin.Context) {
	utils.LogInfo("DownloadTransactionsExcel called")

	payments, err := recentPayments()
	if err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}
	utils.LogDebug("Exporting %d payments to Excel", len(payments))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("PAYFORGE - Transactions Report")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"Payment ID", "Order ID", "Merchant ID", "Amount", "Currency", "Method", "Detail", "Status", "Error Code", "Created At"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.OrderID)
		row.AddCell().SetInt(int(p.MerchantID))
		row.AddCell().SetInt64(p.Amount)
		row.AddCell().SetString(p.Currency)
		row.AddCell().SetString(p.Method)
		row.AddCell().SetString(methodDetail(p))
		row.AddCell().SetString(p.Status)
		row.AddCell().SetString(p.ErrorCode)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=transactions.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
	}
}

// GET /api/v1/transactions/export/pdf
func DownloadTransactionsPDF(c *gin.Context) {
	utils.LogInfo("DownloadTransactionsPDF called")

	payments, err := recentPayments()
	if err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.ServerError(c, "Internal server error")
		return
	}
	utils.LogDebug("Exporting %d payments to PDF", len(payments))

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "PAYFORGE - Transactions Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	headers := []string{"Payment ID", "Order ID", "Amount", "Currency", "Method", "Detail", "Status", "Created At"}
	colWidths := []float64{42, 42, 22, 18, 16, 45, 22, 36}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	fill := false
	for _, p := range payments {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, p.ID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, p.OrderID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d", p.Amount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, p.Currency, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 8, p.Method, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[5], 8, methodDetail(p), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[6], 8, p.Status, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[7], 8, p.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=transactions.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
	}
}
