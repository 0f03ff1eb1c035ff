package models

// Currency codes offered by the converter tool.
const (
	RUB = "RUB"
	USD = "USD"
	EUR = "EUR"
	CNY = "CNY"
	GBP = "GBP"
	CHF = "CHF"
	JPY = "JPY"
	TRY = "TRY"
)

// SupportedCurrencies lists the codes advertised to tool clients.
var SupportedCurrencies = []string{RUB, USD, EUR, CNY, GBP, CHF, JPY, TRY}
