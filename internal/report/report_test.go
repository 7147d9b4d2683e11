package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"lobbyrank/internal/model"
	"lobbyrank/internal/report"
)

func TestPrint(t *testing.T) {
	Convey("Given a selection with a long lobbyist list", t, func() {
		records := []model.RankedFiling{
			{
				Ticker: "AAPL",
				Client: "Apple",
				Firm:   "Capitol Partners",
				Amount: 2406250.4,
				Date:   "2024-04-19",
				Lobbyists: []string{
					"One", "Two", "Three", "Four", "Five", "Six", "Seven",
				},
			},
			{
				Ticker: "MSFT",
				Client: "Microsoft",
				Firm:   "?",
				Amount: 500000,
				Date:   "2024-01-02",
			},
		}

		var buf bytes.Buffer
		report.Print(&buf, records)
		out := buf.String()

		Convey("Amounts are thousands-separated without decimals", func() {
			So(out, ShouldContainSubstring, "1. $2,406,250")
			So(out, ShouldContainSubstring, "2. $500,000")
		})

		Convey("Entity, ticker and firm appear on one line", func() {
			So(out, ShouldContainSubstring, "Apple (AAPL) -> Capitol Partners")
		})

		Convey("The console listing caps lobbyists at 5", func() {
			So(out, ShouldContainSubstring, "Lobbyists: One, Two, Three, Four, Five\n")
			So(out, ShouldNotContainSubstring, "Six")
		})

		Convey("An empty lobbyist list prints N/A", func() {
			So(out, ShouldContainSubstring, "Lobbyists: N/A")
		})

		Convey("Dates are printed verbatim", func() {
			So(out, ShouldContainSubstring, "Date: 2024-04-19")
		})
	})
}

func TestWriteJSON(t *testing.T) {
	Convey("Given a selection to persist", t, func() {
		records := []model.RankedFiling{
			{
				Ticker: "AAPL",
				Client: "Apple",
				Firm:   "Capitol Partners",
				Amount: 2406250,
				Date:   "2024-04-19",
				Lobbyists: []string{
					"One", "Two", "Three", "Four", "Five", "Six", "Seven",
				},
			},
		}
		path := filepath.Join(t.TempDir(), "top_filings.json")

		So(report.WriteJSON(path, records), ShouldBeNil)
		data, err := os.ReadFile(path)
		So(err, ShouldBeNil)

		Convey("The artifact is an indented array with the expected keys", func() {
			So(string(data), ShouldContainSubstring, "  {\n")
			So(string(data), ShouldContainSubstring, `"ticker": "AAPL"`)
			So(string(data), ShouldContainSubstring, `"client": "Apple"`)
			So(string(data), ShouldContainSubstring, `"firm": "Capitol Partners"`)
			So(string(data), ShouldContainSubstring, `"amount": 2406250`)
			So(string(data), ShouldContainSubstring, `"date": "2024-04-19"`)
		})

		Convey("The lobbyist list is not capped in the artifact", func() {
			var decoded []model.RankedFiling
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded, ShouldHaveLength, 1)
			So(decoded[0].Lobbyists, ShouldHaveLength, 7)
			So(decoded[0].Lobbyists[6], ShouldEqual, "Seven")
		})

		Convey("Re-writing the same selection is byte-identical", func() {
			So(report.WriteJSON(path, records), ShouldBeNil)
			again, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(again), ShouldEqual, string(data))
		})

		Convey("An existing file is overwritten", func() {
			So(os.WriteFile(path, []byte("stale"), 0o644), ShouldBeNil)
			So(report.WriteJSON(path, records), ShouldBeNil)
			fresh, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(fresh), ShouldNotContainSubstring, "stale")
		})
	})
}
