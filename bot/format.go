package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"betcheck/models"
)

// SportIcon returns the emoji used for a sport in rendered messages
func SportIcon(sport string) string {
	switch models.FamilyOf(sport) {
	case models.FamilyBasketball:
		return "🏀"
	case models.FamilyFootball:
		return "⚽"
	}
	return "🎯"
}

func verdictIcon(status models.VerdictStatus) string {
	switch status {
	case models.VerdictWon:
		return "✅"
	case models.VerdictLost:
		return "❌"
	}
	return "⏳"
}

func verdictLabel(status models.VerdictStatus) string {
	switch status {
	case models.VerdictWon:
		return "VINTA"
	case models.VerdictLost:
		return "PERSA"
	}
	return "DA VERIFICARE"
}

// FormatMoney renders a decimal amount with a trailing euro sign
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2) + "€"
}

// FormatVerdict renders the full analysis message for a resolved wager
func FormatVerdict(record *models.WagerRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s **%s**\n", SportIcon(record.Sport), record.Match)
	fmt.Fprintf(&b, "Scommessa: %s", record.BetType)
	if record.Player != "" {
		fmt.Fprintf(&b, " (%s)", record.Player)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Quota %s | Giocata %s | Vincita potenziale %s\n\n",
		record.Odds.String(), FormatMoney(record.Stake), FormatMoney(record.PotentialPayout))

	fmt.Fprintf(&b, "%s **%s**", verdictIcon(record.Verdict.Status), verdictLabel(record.Verdict.Status))
	if record.Verdict.Result != "" {
		fmt.Fprintf(&b, "\n%s", record.Verdict.Result)
	}
	if record.Verdict.Detail != "" {
		fmt.Fprintf(&b, "\n_%s_", record.Verdict.Detail)
	}
	if record.Verdict.ProfitLoss != nil {
		fmt.Fprintf(&b, "\n\nProfitto/Perdita: **%s**", formatSigned(*record.Verdict.ProfitLoss))
	}
	return b.String()
}

// FormatSummary renders the /stats reply across all sports
func FormatSummary(summary *models.StatsSummary) string {
	if summary.TotalBets == 0 {
		return "📊 Nessuna scommessa registrata. Inviami una schedina per iniziare!"
	}

	var b strings.Builder
	b.WriteString("📊 **Statistiche scommesse**\n\n")

	for _, line := range summary.Sports {
		agg := line.Aggregate
		fmt.Fprintf(&b, "%s **%s**\n", SportIcon(line.Sport), line.Sport)
		fmt.Fprintf(&b, "Giocate: %d | Vinte: %d | Perse: %d | In sospeso: %d\n",
			agg.TotalBets, agg.Won, agg.Lost, agg.Pending)
		fmt.Fprintf(&b, "Totale giocato: %s | Bilancio: %s", FormatMoney(agg.TotalStaked), formatSigned(agg.TotalProfitLoss))
		if roi, ok := agg.ROI(); ok {
			fmt.Fprintf(&b, " | ROI: %+.1f%%", roi)
		}
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "**Totale**: %d scommesse | Giocato %s | Bilancio %s",
		summary.TotalBets, FormatMoney(summary.TotalStaked), formatSigned(summary.TotalProfit))
	if roi, ok := summary.TotalROI(); ok {
		fmt.Fprintf(&b, " | ROI %+.1f%%", roi)
	}
	return b.String()
}

// FormatExtractionFailure renders the retry hint shown when a slip image
// cannot be parsed
func FormatExtractionFailure() string {
	return strings.Join([]string{
		"❌ Non sono riuscito a leggere la schedina.",
		"",
		"Suggerimenti:",
		"• Invia uno screenshot nitido e completo",
		"• Inquadra tutta la schedina, incluse quota e importo",
		"• Evita foto sfocate o ritagliate",
	}, "\n")
}

// FormatReset renders the /reset reply
func FormatReset(result *models.ResetResult) string {
	if result.Cleared == 0 {
		return "Il registro è già vuoto, nessun backup creato."
	}
	return fmt.Sprintf("🗑️ Registro azzerato: %d scommesse archiviate in `%s`.", result.Cleared, result.BackupPath)
}

func formatSigned(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + FormatMoney(d)
	}
	return FormatMoney(d)
}
