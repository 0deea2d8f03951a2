package cli

import (
	"fmt"
	"strings"

	"github.com/paisatrail/paisa-trail/internal/model"
)

// RenderTransaction formats a parsed transaction as a bordered summary box.
func RenderTransaction(txn *model.ParsedTransaction) string {
	amountStyle := DebitStyle
	sign := "-"
	if txn.Direction == model.DirectionCredit {
		amountStyle = CreditStyle
		sign = "+"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n",
		amountStyle.Render(fmt.Sprintf("%s₹%.2f", sign, txn.Amount)),
		BoldStyle.Render(txn.Description))
	fmt.Fprintf(&b, "%s · %s\n",
		string(txn.Direction), string(txn.Category))
	fmt.Fprintf(&b, "%s\n", txn.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "%s", SubtleStyle.Render("fingerprint "+txn.Fingerprint))

	return BoxStyle.Render(b.String())
}

// RenderNoMatch formats the rejection outcome.
func RenderNoMatch() string {
	return WarningStyle.Render("No transaction found in message") + "\n" +
		SubtleStyle.Render("The text has no currency-marked amount, no directional verb, or matches the noise denylist.")
}

// RenderIngestSummary formats a batch result line.
func RenderIngestSummary(received, parsed, rejected, duplicates, stored int) string {
	return fmt.Sprintf("%s  %s",
		SuccessStyle.Render(fmt.Sprintf("✓ %d stored", stored)),
		SubtleStyle.Render(fmt.Sprintf("(%d received, %d parsed, %d rejected, %d duplicates)",
			received, parsed, rejected, duplicates)))
}
