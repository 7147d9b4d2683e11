package model

// Entity is one tracked public company: its ticker and the client name used
// when searching the LDA registry.
type Entity struct {
	Ticker string
	Name   string
}

// Filing is a single disclosure document as returned by the LDA API. Only the
// fields consumed downstream are decoded.
type Filing struct {
	Income     string     `json:"income"`
	Registrant Registrant `json:"registrant"`
	DtPosted   string     `json:"dt_posted"`
	Lobbyists  []Lobbyist `json:"lobbyists"`
}

type Registrant struct {
	Name string `json:"name"`
}

type Lobbyist struct {
	Name string `json:"name"`
}

// RankedFiling is the output projection of a qualifying filing. Created once,
// never mutated.
type RankedFiling struct {
	Ticker    string   `json:"ticker"`
	Client    string   `json:"client"`
	Firm      string   `json:"firm"`
	Amount    float64  `json:"amount"`
	Date      string   `json:"date"`
	Lobbyists []string `json:"lobbyists"`
}
