package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"lobbyrank/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxDisplayLobbyists caps the console listing only; the JSON artifact keeps
// the full lobbyist list.
const maxDisplayLobbyists = 5

func banner(w io.Writer, title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", line, title, line)
}

// Header prints the run banner.
func Header(w io.Writer, year int) {
	banner(w, fmt.Sprintf("LDA FILINGS ANALYSIS - FY %d", year))
	fmt.Fprintln(w)
}

// Print writes the ranked report block: one numbered entry per record with
// the formatted amount, client, firm, a capped lobbyist list, and the date.
func Print(w io.Writer, records []model.RankedFiling) {
	banner(w, "TOP FILINGS (includes ties)")
	for i, record := range records {
		fmt.Fprintf(w, "\n%d. $%s\n", i+1, formatAmount(record.Amount))
		fmt.Fprintf(w, "   %s (%s) -> %s\n", record.Client, record.Ticker, record.Firm)
		fmt.Fprintf(w, "   Lobbyists: %s\n", displayLobbyists(record.Lobbyists))
		fmt.Fprintf(w, "   Date: %s\n", record.Date)
	}
}

func formatAmount(amount float64) string {
	return humanize.Comma(int64(math.Round(amount)))
}

func displayLobbyists(names []string) string {
	if len(names) == 0 {
		return "N/A"
	}
	if len(names) > maxDisplayLobbyists {
		names = names[:maxDisplayLobbyists]
	}
	return strings.Join(names, ", ")
}

// WriteJSON serializes the full result set as an indented array, overwriting
// any existing file at path.
func WriteJSON(path string, records []model.RankedFiling) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
