package telegram

import (
	"fmt"
	"strings"

	"golang-trading-dashboard/internal/dashboard/dto"
)

const dateLayout = "2006-01-02 15:04 MST"

// FormatDashboardDigest renders a dashboard snapshot as a Markdown P&L digest.
// Sections that failed to load are reported instead of silently omitted.
func FormatDashboardDigest(snap *dto.DashboardSnapshot) string {
	if snap == nil {
		return "No dashboard snapshot is available yet."
	}

	var sb strings.Builder
	sb.WriteString("📊 *Trading P&L Digest*\n")
	sb.WriteString(fmt.Sprintf("_%s_\n\n", snap.RefreshedAt.UTC().Format(dateLayout)))

	switch {
	case snap.AccountError != "":
		sb.WriteString(fmt.Sprintf("⚠️ Account unavailable: %s\n", EscapeMarkdown(snap.AccountError)))
	case snap.Account == nil || snap.Account.Account == nil:
		sb.WriteString("ℹ️ No account has been recorded yet.\n")
	default:
		acc := snap.Account
		sb.WriteString(fmt.Sprintf("💰 *Balance:* %s\n", formatMoney(acc.Account.CurrentBalance)))
		if acc.AccountGrowth != nil {
			sb.WriteString(fmt.Sprintf("%s *Growth:* %s\n", trendIcon(*acc.AccountGrowth), formatPercent(*acc.AccountGrowth)))
		}
		sb.WriteString(fmt.Sprintf("✅ *Realized P&L:* %s\n", formatSigned(acc.RealizedPnl)))
		sb.WriteString(fmt.Sprintf("⏳ *Unrealized P&L:* %s\n", formatSigned(acc.UnrealizedPnl)))
		sb.WriteString(fmt.Sprintf("📂 *Open Positions:* %d\n", acc.OpenPositions))
		if acc.TotalTrades != nil {
			sb.WriteString(fmt.Sprintf("🔁 *Total Trades:* %d\n", *acc.TotalTrades))
		}
	}

	sb.WriteString("\n")
	if snap.StatsError != "" {
		sb.WriteString(fmt.Sprintf("⚠️ Stats unavailable: %s\n", EscapeMarkdown(snap.StatsError)))
	} else if snap.Stats != nil {
		sb.WriteString(fmt.Sprintf("🚀 *Max Profit:* %s\n", formatSigned(snap.Stats.MaxProfit)))
		sb.WriteString(fmt.Sprintf("🩸 *Max Loss:* %s\n", formatSigned(snap.Stats.MaxLoss)))
	}

	if snap.ClosedPositions != nil && len(snap.ClosedPositions.Positions) > 0 {
		sb.WriteString("\n*Latest Closed*\n")
		for _, p := range snap.ClosedPositions.Positions {
			sb.WriteString(fmt.Sprintf("%s `%s` %s %s\n", trendIcon(p.PnL), strings.ReplaceAll(p.Symbol, "`", "'"), EscapeMarkdown(p.PositionType), formatSigned(p.PnL)))
		}
	}

	return sb.String()
}

func trendIcon(v float64) string {
	switch {
	case v > 0:
		return "📈"
	case v < 0:
		return "📉"
	default:
		return "➖"
	}
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatSigned(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+$%.2f", v)
	}
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return "$0.00"
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}
