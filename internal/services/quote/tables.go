package quote

import "github.com/bobmcallan/pulse/internal/models"

// popularStocks drives the market overview and earnings calendar.
var popularStocks = []string{"AAPL", "MSFT", "TSLA", "NVDA", "GOOGL", "AMZN", "META", "JPM", "JNJ", "V"}

var popularCrypto = []string{"BTC", "ETH", "ADA", "DOGE"}

// stockBasePrices anchors demo quote synthesis. Unknown symbols use 100.
var stockBasePrices = map[string]float64{
	"AAPL": 175, "MSFT": 340, "TSLA": 240, "NVDA": 450,
	"GOOGL": 130, "AMZN": 145, "META": 300, "NFLX": 420,
	"AMD": 110, "INTC": 35, "JPM": 150, "JNJ": 160, "V": 220,
	"DIS": 90, "NKE": 100, "BA": 200, "XOM": 105, "WMT": 150,
}

var cryptoBasePrices = map[string]float64{
	"BTC": 50000, "ETH": 3000, "ADA": 1.2, "DOGE": 0.2,
	"XRP": 0.8, "DOT": 20, "SOL": 100, "BNB": 400,
}

// historicalBasePrices covers both asset classes for series synthesis.
var historicalBasePrices = map[string]float64{
	"AAPL": 175, "MSFT": 340, "TSLA": 240, "NVDA": 450,
	"GOOGL": 130, "AMZN": 145, "META": 300, "NFLX": 420,
	"AMD": 110, "INTC": 35, "JPM": 150, "JNJ": 160, "V": 220,
	"BTC": 50000, "ETH": 3000, "ADA": 1.2, "DOGE": 0.2,
}

type indexBase struct {
	name   string
	price  float64
	spread float64 // full width of the uniform perturbation
}

var indexBases = map[string]indexBase{
	"SPY": {name: "S&P 500", price: 4500, spread: 100},
	"QQQ": {name: "NASDAQ 100", price: 370, spread: 10},
	"DIA": {name: "Dow Jones", price: 35000, spread: 500},
	"IWM": {name: "Russell 2000", price: 190, spread: 10},
	"VIX": {name: "Volatility Index", price: 18, spread: 5},
}

var companyProfiles = map[string]models.CompanyInfo{
	"AAPL":  {Name: "Apple Inc.", Sector: "Technology", Industry: "Consumer Electronics", Description: "Apple Inc. designs, manufactures, and markets smartphones, personal computers, tablets, wearables, and accessories worldwide."},
	"MSFT":  {Name: "Microsoft Corporation", Sector: "Technology", Industry: "Software", Description: "Microsoft Corporation develops, licenses, and supports software, services, devices, and solutions worldwide."},
	"TSLA":  {Name: "Tesla, Inc.", Sector: "Consumer Cyclical", Industry: "Auto Manufacturers", Description: "Tesla, Inc. designs, develops, manufactures, leases, and sells electric vehicles, energy generation and storage systems."},
	"NVDA":  {Name: "NVIDIA Corporation", Sector: "Technology", Industry: "Semiconductors", Description: "NVIDIA Corporation provides graphics, compute, and networking solutions worldwide."},
	"GOOGL": {Name: "Alphabet Inc.", Sector: "Communication Services", Industry: "Internet Content", Description: "Alphabet Inc. provides online advertising services, cloud computing, software, and hardware."},
	"AMZN":  {Name: "Amazon.com, Inc.", Sector: "Consumer Cyclical", Industry: "Internet Retail", Description: "Amazon.com, Inc. engages in the retail sale of consumer products and subscriptions through online and physical stores."},
	"META":  {Name: "Meta Platforms, Inc.", Sector: "Communication Services", Industry: "Internet Content", Description: "Meta Platforms, Inc. develops products that enable people to connect and share with friends and family through mobile devices, PCs, and VR headsets."},
	"JPM":   {Name: "JPMorgan Chase & Co.", Sector: "Financial Services", Industry: "Banks", Description: "JPMorgan Chase & Co. provides financial and investment banking services worldwide."},
	"JNJ":   {Name: "Johnson & Johnson", Sector: "Healthcare", Industry: "Drug Manufacturers", Description: "Johnson & Johnson researches, develops, manufactures, and sells healthcare products worldwide."},
	"V":     {Name: "Visa Inc.", Sector: "Financial Services", Industry: "Credit Services", Description: "Visa Inc. operates a payments technology company worldwide."},
	"BTC":   {Name: "Bitcoin", Sector: "Cryptocurrency", Industry: "Digital Currency", Description: "Bitcoin is a decentralized digital currency that enables instant payments to anyone, anywhere in the world."},
	"ETH":   {Name: "Ethereum", Sector: "Cryptocurrency", Industry: "Digital Currency", Description: "Ethereum is a decentralized, open-source blockchain with smart contract functionality."},
}
