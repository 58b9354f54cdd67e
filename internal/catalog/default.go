package catalog

const logoBaseURL = "https://cryptologos.cc/logos/"

func defaultEntries() []Entry {
	return []Entry{
		{Name: "Bitcoin", Symbol: "BTC", Icon: "₿", IconColor: "F7931A", LogoURL: logoBaseURL + "bitcoin-btc-logo.png"},
		{Name: "Ethereum", Symbol: "ETH", Icon: "Ξ", IconColor: "627EEA", LogoURL: logoBaseURL + "ethereum-eth-logo.png"},
		{Name: "Tether", Symbol: "USDT", Icon: "₮", IconColor: "26A17B", LogoURL: logoBaseURL + "tether-usdt-logo.png"},
		{Name: "Ripple", Symbol: "XRP", Icon: "✕", IconColor: "23292F", LogoURL: logoBaseURL + "xrp-xrp-logo.png"},
		{Name: "Solana", Symbol: "SOL", Icon: "◎", IconColor: "00FFA3", LogoURL: logoBaseURL + "solana-sol-logo.png"},
		{Name: "Binance Coin", Symbol: "BNB", Icon: "B", IconColor: "F3BA2F", LogoURL: logoBaseURL + "bnb-bnb-logo.png"},
		{Name: "Cardano", Symbol: "ADA", Icon: "A", IconColor: "0033AD", LogoURL: logoBaseURL + "cardano-ada-logo.png"},
		{Name: "Dogecoin", Symbol: "DOGE", Icon: "D", IconColor: "C2A633", LogoURL: logoBaseURL + "dogecoin-doge-logo.png"},
		{Name: "Polkadot", Symbol: "DOT", Icon: "●", IconColor: "E6007A", LogoURL: logoBaseURL + "polkadot-new-dot-logo.png"},
		{Name: "Polygon", Symbol: "MATIC", Icon: "M", IconColor: "8247E5", LogoURL: logoBaseURL + "polygon-matic-logo.png"},
	}
}

// Default returns the catalog served by both entry points
func Default() *Catalog {
	c, err := New(defaultEntries()...)
	if err != nil {
		panic(err)
	}
	return c
}
