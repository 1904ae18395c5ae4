package services

// Incoterm is a standardized international trade delivery-term code.
type Incoterm string

const (
	IncotermEXW Incoterm = "EXW"
	IncotermFCA Incoterm = "FCA"
	IncotermCPT Incoterm = "CPT"
	IncotermCIP Incoterm = "CIP"
	IncotermDAP Incoterm = "DAP"
	IncotermDDP Incoterm = "DDP"
)

// IncotermOptions is the list of Incoterm options offered by the form.
var IncotermOptions = []Incoterm{
	IncotermEXW,
	IncotermFCA,
	IncotermCPT,
	IncotermCIP,
	IncotermDAP,
	IncotermDDP,
}

// Valid reports whether i is one of the declared Incoterm literals.
func (i Incoterm) Valid() bool {
	for _, opt := range IncotermOptions {
		if i == opt {
			return true
		}
	}
	return false
}

// Currency is the quotation currency code.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyAED Currency = "AED"
	CurrencyINR Currency = "INR"
)

// CurrencyOptions is the list of currency options offered by the form.
var CurrencyOptions = []Currency{
	CurrencyEUR,
	CurrencyUSD,
	CurrencyGBP,
	CurrencyAED,
	CurrencyINR,
}

// Valid reports whether c is one of the declared currency literals.
func (c Currency) Valid() bool {
	for _, opt := range CurrencyOptions {
		if c == opt {
			return true
		}
	}
	return false
}

// ShippingPreference selects how the finished parts should be shipped.
type ShippingPreference string

const (
	ShippingBestAvailable ShippingPreference = "BestAvailable"
	ShippingExpress       ShippingPreference = "Express"
	ShippingEconomy       ShippingPreference = "Economy"
	ShippingPickup        ShippingPreference = "Pickup"
)

// ShippingOptions is the list of shipping preference options.
var ShippingOptions = []ShippingPreference{
	ShippingBestAvailable,
	ShippingExpress,
	ShippingEconomy,
	ShippingPickup,
}

// Valid reports whether p is one of the declared shipping literals.
func (p ShippingPreference) Valid() bool {
	for _, opt := range ShippingOptions {
		if p == opt {
			return true
		}
	}
	return false
}
