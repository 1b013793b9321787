package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kajanthann/E-COM-FOREVER/store"
	"github.com/tealeg/xlsx"
)

// GET /api/order/export (admin)
func ExportOrdersToExcel(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "UserID", "Items", "Amount", "PaymentMethod",
			"PaymentReceived", "Status", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(order.ID)
			row.AddCell().SetValue(order.UserID)

			var lines []string
			for _, item := range order.Items {
				lines = append(lines, fmt.Sprintf("%s/%s x%d @ %.2f", item.ProductID, item.Size, item.Quantity, item.Price))
			}
			row.AddCell().SetValue(strings.Join(lines, "; "))

			row.AddCell().SetValue(order.Amount)
			row.AddCell().SetValue(order.PaymentMethod)
			row.AddCell().SetValue(order.Payment)
			row.AddCell().SetValue(string(order.Status))
			row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
			return
		}
	}
}
