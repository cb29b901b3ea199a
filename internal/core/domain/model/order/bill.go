package order

import (
	"fmt"
	"strings"
)

const (
	billItemWidth = 25
	billColWidth  = 10
	billRule      = "------------------------------"
)

// RenderBill formats a fixed-width receipt for the order: a header with the order id,
// customer and status, one Item/Qty/Price/Subtotal row per line, and the total.
//
// Example output:
//
//	=========== BILL ===========
//	Order ID : 1
//	Customer : Alice
//	Status   : Pending
//	------------------------------
//	Item                     Qty       Price     Subtotal
//	------------------------------
//	Burger                   2         5.00      10.00
//	------------------------------
//	Total: Rs. 10.00
//	==============================
func RenderBill(s Snapshot) string {
	var b strings.Builder

	b.WriteString("=========== BILL ===========\n")
	fmt.Fprintf(&b, "Order ID : %d\n", s.ID)
	fmt.Fprintf(&b, "Customer : %s\n", s.CustomerName)
	fmt.Fprintf(&b, "Status   : %s\n", s.Status)
	b.WriteString(billRule + "\n")
	fmt.Fprintf(&b, "%-*s%-*s%-*s%-*s\n",
		billItemWidth, "Item", billColWidth, "Qty", billColWidth, "Price", billColWidth, "Subtotal")
	b.WriteString(billRule + "\n")
	for _, line := range s.Lines {
		fmt.Fprintf(&b, "%-*s%-*d%-*s%-*s\n",
			billItemWidth, line.Item().Name(),
			billColWidth, line.Quantity(),
			billColWidth, line.Item().Price().String(),
			billColWidth, line.Subtotal().String())
	}
	b.WriteString(billRule + "\n")
	fmt.Fprintf(&b, "Total: Rs. %s\n", s.Total)
	b.WriteString("==============================")

	return b.String()
}
