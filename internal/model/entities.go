package model

// entities is the fixed set of tracked companies, in report order. The name
// is the client_name search term understood by the LDA registry, which does
// not always match the legal name on the exchange.
var entities = []Entity{
	{Ticker: "TCMD", Name: "Tactile Medical"},
	{Ticker: "AORT", Name: "Artivion"},
	{Ticker: "PODD", Name: "Insulet"},
	{Ticker: "NEE", Name: "NextEra Energy"},
	{Ticker: "AAPL", Name: "Apple"},
	{Ticker: "ABT", Name: "Abbott"},
	{Ticker: "ADBE", Name: "Adobe"},
	{Ticker: "AMAT", Name: "Applied Materials"},
	{Ticker: "AMD", Name: "Advanced Micro Devices"},
	{Ticker: "AMZN", Name: "Amazon"},
	{Ticker: "AXON", Name: "Axon"},
	{Ticker: "AXP", Name: "American Express"},
	{Ticker: "AZO", Name: "AutoZone"},
	{Ticker: "BLK", Name: "BlackRock"},
	{Ticker: "BMI", Name: "Badger Meter"},
	{Ticker: "BRK.B", Name: "Berkshire Hathaway"},
	{Ticker: "BSX", Name: "Boston Scientific"},
	{Ticker: "CAT", Name: "Caterpillar"},
	{Ticker: "CELH", Name: "Celsius Holdings"},
	{Ticker: "CMG", Name: "Chipotle"},
	{Ticker: "CMCSA", Name: "Comcast"},
	{Ticker: "COP", Name: "ConocoPhillips"},
	{Ticker: "COST", Name: "Costco"},
	{Ticker: "CRM", Name: "Salesforce"},
	{Ticker: "CSX", Name: "CSX"},
	{Ticker: "CTVA", Name: "Corteva"},
	{Ticker: "CVX", Name: "Chevron"},
	{Ticker: "CYBR", Name: "CyberArk"},
	{Ticker: "DE", Name: "Deere"},
	{Ticker: "ELF", Name: "e.l.f. Beauty"},
	{Ticker: "ELV", Name: "Elevance Health"},
	{Ticker: "EMR", Name: "Emerson"},
	{Ticker: "ETN", Name: "Eaton"},
	{Ticker: "EW", Name: "Edwards Lifesciences"},
	{Ticker: "EXLS", Name: "ExlService"},
	{Ticker: "FCFS", Name: "FirstCash"},
	{Ticker: "FI", Name: "Fiserv"},
	{Ticker: "FN", Name: "Fabrinet"},
	{Ticker: "FRPT", Name: "Freshpet"},
	{Ticker: "GS", Name: "Goldman Sachs"},
	{Ticker: "GOOGL", Name: "Google"},
	{Ticker: "HD", Name: "Home Depot"},
	{Ticker: "HLT", Name: "Hilton"},
	{Ticker: "HON", Name: "Honeywell"},
	{Ticker: "HUBB", Name: "Hubbell"},
	{Ticker: "ICE", Name: "Intercontinental Exchange"},
	{Ticker: "INST", Name: "Instructure"},
	{Ticker: "IQV", Name: "IQVIA"},
	{Ticker: "JPM", Name: "JPMorgan"},
	{Ticker: "KO", Name: "Coca-Cola"},
	{Ticker: "LLY", Name: "Eli Lilly"},
	{Ticker: "LRCX", Name: "Lam Research"},
	{Ticker: "LRN", Name: "Stride"},
	{Ticker: "MA", Name: "Mastercard"},
	{Ticker: "META", Name: "Meta"},
	{Ticker: "MSFT", Name: "Microsoft"},
	{Ticker: "NKE", Name: "Nike"},
	{Ticker: "NVDA", Name: "NVIDIA"},
	{Ticker: "OLLI", Name: "Ollie's"},
	{Ticker: "PANW", Name: "Palo Alto Networks"},
	{Ticker: "PEP", Name: "PepsiCo"},
	{Ticker: "PG", Name: "Procter & Gamble"},
	{Ticker: "PH", Name: "Parker Hannifin"},
	{Ticker: "PYPL", Name: "PayPal"},
	{Ticker: "RTX", Name: "RTX"},
	{Ticker: "SBUX", Name: "Starbucks"},
	{Ticker: "SFM", Name: "Sprouts Farmers Market"},
	{Ticker: "SHOP", Name: "Shopify"},
	{Ticker: "SHW", Name: "Sherwin-Williams"},
	{Ticker: "SPGI", Name: "S&P Global"},
	{Ticker: "STZ", Name: "Constellation Brands"},
	{Ticker: "TJX", Name: "TJX"},
	{Ticker: "TMO", Name: "Thermo Fisher"},
	{Ticker: "TXN", Name: "Texas Instruments"},
	{Ticker: "UNH", Name: "UnitedHealth"},
	{Ticker: "UNP", Name: "Union Pacific"},
	{Ticker: "VLTO", Name: "Veralto"},
	{Ticker: "ZTS", Name: "Zoetis"},
	{Ticker: "CEQP", Name: "Crestwood Equity"},
	{Ticker: "DDOG", Name: "Datadog"},
	{Ticker: "ETRN", Name: "Equitrans"},
	{Ticker: "LSXMK", Name: "Liberty Media"},
	{Ticker: "FWONK", Name: "Liberty Media"},
	{Ticker: "LINE", Name: "Lineage"},
	{Ticker: "BATRK", Name: "Liberty Media"},
}

// Entities returns a copy of the tracked-company table so callers cannot
// mutate the run's configuration.
func Entities() []Entity {
	copied := make([]Entity, len(entities))
	copy(copied, entities)
	return copied
}
