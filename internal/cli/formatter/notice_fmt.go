package formatter

import (
	"fmt"

	"github.com/alexanderramin/wam/internal/domain"
	"github.com/alexanderramin/wam/internal/service"
)

// FormatNotice renders a reconciliation notice as a console message.
func FormatNotice(n service.Notice) string {
	pct := domain.FormatFloat(domain.Round(n.TotalWeight*100, 4))
	switch n.Kind {
	case service.NoticeUnderWeight:
		return "\n" + Warn(fmt.Sprintf("Total weight is under 100%%. Total weight: %s%%.", pct)) + "\n"
	case service.NoticeOverWeight:
		return "\n" + Warn(fmt.Sprintf("Total weight is over 100%%. Total weight: %s%%.", pct)) + "\n"
	case service.NoticeRescaling:
		return Dim("Recalculating as if total weight is 100%.") + "\n\n"
	case service.NoticeEntryRejected:
		return Error(fmt.Sprintf("Grade not added: %v", n.Err)) + "\n"
	default:
		return ""
	}
}

// NoFileSelected is printed when the file picker returns nothing.
const NoFileSelected = "No file selected."
