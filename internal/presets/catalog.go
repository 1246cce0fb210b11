package presets

// Currencies supported for display.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "MXN", Symbol: "MX$", Name: "Mexican Peso"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli Shekel"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "CLP", Symbol: "CLP$", Name: "Chilean Peso"},
	{Code: "COP", Symbol: "COP$", Name: "Colombian Peso"},
	{Code: "ARS", Symbol: "AR$", Name: "Argentine Peso"},
}

// Printers is the catalog of common printer models with typical power draw,
// expected lifetime, and street price.
var Printers = []PrinterPreset{
	// Bambu Lab
	{Name: "H2D", Brand: "Bambu Lab", PowerKw: f(0.45), Lifetime: f(10000), Cost: f(1999)},
	{Name: "X1 Carbon Combo", Brand: "Bambu Lab", PowerKw: f(0.35), Lifetime: f(8000), Cost: f(1449)},
	{Name: "X1E", Brand: "Bambu Lab", PowerKw: f(0.38), Lifetime: f(10000), Cost: f(1699)},
	{Name: "P1S Combo", Brand: "Bambu Lab", PowerKw: f(0.30), Lifetime: f(7000), Cost: f(949)},
	{Name: "P1P", Brand: "Bambu Lab", PowerKw: f(0.28), Lifetime: f(7000), Cost: f(599)},
	{Name: "A1", Brand: "Bambu Lab", PowerKw: f(0.22), Lifetime: f(5000), Cost: f(399)},
	{Name: "A1 Mini", Brand: "Bambu Lab", PowerKw: f(0.18), Lifetime: f(5000), Cost: f(299)},
	// Creality
	{Name: "K2 Plus Combo", Brand: "Creality", PowerKw: f(0.45), Lifetime: f(8000), Cost: f(1299)},
	{Name: "K1 Max", Brand: "Creality", PowerKw: f(0.38), Lifetime: f(7000), Cost: f(699)},
	{Name: "K1C", Brand: "Creality", PowerKw: f(0.35), Lifetime: f(7000), Cost: f(499)},
	{Name: "K1", Brand: "Creality", PowerKw: f(0.35), Lifetime: f(7000), Cost: f(449)},
	{Name: "Ender 3 V3", Brand: "Creality", PowerKw: f(0.25), Lifetime: f(5000), Cost: f(199)},
	{Name: "Ender 3 V3 KE", Brand: "Creality", PowerKw: f(0.28), Lifetime: f(5000), Cost: f(249)},
	{Name: "Ender 3 V3 SE", Brand: "Creality", PowerKw: f(0.22), Lifetime: f(5000), Cost: f(179)},
	{Name: "Ender 3 Pro / V2", Brand: "Creality", PowerKw: f(0.22), Lifetime: f(5000), Cost: f(200)},
	{Name: "CR-10 / CR-10S", Brand: "Creality", PowerKw: f(0.28), Lifetime: f(6000), Cost: f(450)},
	// Prusa
	{Name: "Core One", Brand: "Prusa", PowerKw: f(0.30), Lifetime: f(8000), Cost: f(1199)},
	{Name: "MK4S Assembled", Brand: "Prusa", PowerKw: f(0.15), Lifetime: f(8000), Cost: f(1099)},
	{Name: "MK4S Kit", Brand: "Prusa", PowerKw: f(0.15), Lifetime: f(8000), Cost: f(799)},
	{Name: "MK3S+", Brand: "Prusa", PowerKw: f(0.12), Lifetime: f(8000), Cost: f(800)},
	{Name: "Mini+", Brand: "Prusa", PowerKw: f(0.08), Lifetime: f(6000), Cost: f(430)},
	{Name: "XL (Single)", Brand: "Prusa", PowerKw: f(0.35), Lifetime: f(10000), Cost: f(1999)},
	{Name: "XL (5 Toolheads)", Brand: "Prusa", PowerKw: f(0.50), Lifetime: f(10000), Cost: f(3499)},
	// Qidi
	{Name: "Q1 Pro", Brand: "Qidi", PowerKw: f(0.35), Lifetime: f(6000), Cost: f(469)},
	{Name: "X-Max 3", Brand: "Qidi", PowerKw: f(0.40), Lifetime: f(7000), Cost: f(799)},
	{Name: "X-Plus 3", Brand: "Qidi", PowerKw: f(0.38), Lifetime: f(7000), Cost: f(599)},
	// Anycubic
	{Name: "Kobra 3 Combo", Brand: "Anycubic", PowerKw: f(0.35), Lifetime: f(6000), Cost: f(599)},
	{Name: "Kobra 2 Pro", Brand: "Anycubic", PowerKw: f(0.28), Lifetime: f(5000), Cost: f(299)},
	{Name: "Kobra 2", Brand: "Anycubic", PowerKw: f(0.25), Lifetime: f(5000), Cost: f(270)},
	// Elegoo
	{Name: "Neptune 4 Max", Brand: "Elegoo", PowerKw: f(0.32), Lifetime: f(6000), Cost: f(469)},
	{Name: "Neptune 4 Pro", Brand: "Elegoo", PowerKw: f(0.28), Lifetime: f(6000), Cost: f(259)},
	{Name: "Neptune 4 Plus", Brand: "Elegoo", PowerKw: f(0.30), Lifetime: f(6000), Cost: f(349)},
	{Name: "Neptune 3 Pro", Brand: "Elegoo", PowerKw: f(0.24), Lifetime: f(5000), Cost: f(260)},
	// Flashforge
	{Name: "Adventurer 5M Pro", Brand: "Flashforge", PowerKw: f(0.32), Lifetime: f(6000), Cost: f(499)},
	{Name: "Adventurer 5M", Brand: "Flashforge", PowerKw: f(0.28), Lifetime: f(6000), Cost: f(379)},
	// Ankermake
	{Name: "M5C", Brand: "Ankermake", PowerKw: f(0.25), Lifetime: f(5000), Cost: f(299)},
	{Name: "M5", Brand: "Ankermake", PowerKw: f(0.28), Lifetime: f(5000), Cost: f(499)},
	// Sovol
	{Name: "SV08", Brand: "Sovol", PowerKw: f(0.35), Lifetime: f(6000), Cost: f(499)},
	{Name: "SV07 Plus", Brand: "Sovol", PowerKw: f(0.32), Lifetime: f(5000), Cost: f(449)},
	{Name: "SV06", Brand: "Sovol", PowerKw: f(0.24), Lifetime: f(5000), Cost: f(260)},
	// Artillery
	{Name: "Sidewinder X2", Brand: "Artillery", PowerKw: f(0.30), Lifetime: f(5000), Cost: f(400)},
	{Name: "Genius Pro", Brand: "Artillery", PowerKw: f(0.24), Lifetime: f(5000), Cost: f(280)},
	// Voron (DIY)
	{Name: "Voron 2.4", Brand: "Voron (DIY)", PowerKw: f(0.35), Lifetime: f(10000), Cost: f(1500)},
	{Name: "Voron Trident", Brand: "Voron (DIY)", PowerKw: f(0.32), Lifetime: f(10000), Cost: f(1200)},
	// Ultimaker
	{Name: "S6 Secure", Brand: "Ultimaker", PowerKw: f(0.35), Lifetime: f(10000), Cost: f(4500)},
	{Name: "S8 Secure", Brand: "Ultimaker", PowerKw: f(0.40), Lifetime: f(10000), Cost: f(6000)},
	{Name: "S5 Pro Bundle", Brand: "Ultimaker", PowerKw: f(0.35), Lifetime: f(10000), Cost: f(7500)},
	// Resin printers
	{Name: "Saturn 4 Ultra", Brand: "Elegoo (Resin)", PowerKw: f(0.07), Lifetime: f(3000), Cost: f(549)},
	{Name: "Saturn 3", Brand: "Elegoo (Resin)", PowerKw: f(0.06), Lifetime: f(3000), Cost: f(450)},
	{Name: "Mars 5 Ultra", Brand: "Elegoo (Resin)", PowerKw: f(0.05), Lifetime: f(3000), Cost: f(289)},
	{Name: "Mars 3 Pro", Brand: "Elegoo (Resin)", PowerKw: f(0.05), Lifetime: f(3000), Cost: f(250)},
	{Name: "Photon Mono M7 Pro", Brand: "Anycubic (Resin)", PowerKw: f(0.06), Lifetime: f(3000), Cost: f(449)},
	{Name: "Photon Mono M5s", Brand: "Anycubic (Resin)", PowerKw: f(0.05), Lifetime: f(3000), Cost: f(299)},
	{Name: "Sonic Mini 8K", Brand: "Phrozen (Resin)", PowerKw: f(0.06), Lifetime: f(3000), Cost: f(350)},
	// Custom
	{Name: "Custom / Other", Brand: "Other"},
}

// ElectricityRates is the catalog of average residential electricity rates
// by region.
var ElectricityRates = []RegionRate{
	// North America
	{Region: "USA (Average)", Rate: f(0.18), Currency: "USD"},
	{Region: "USA - California", Rate: f(0.32), Currency: "USD"},
	{Region: "USA - Texas", Rate: f(0.14), Currency: "USD"},
	{Region: "USA - New York", Rate: f(0.22), Currency: "USD"},
	{Region: "USA - Florida", Rate: f(0.15), Currency: "USD"},
	{Region: "USA - Hawaii", Rate: f(0.42), Currency: "USD"},
	{Region: "USA - Idaho", Rate: f(0.12), Currency: "USD"},
	{Region: "USA - Washington", Rate: f(0.11), Currency: "USD"},
	{Region: "Canada (Average)", Rate: f(0.12), Currency: "CAD"},
	{Region: "Canada - Ontario", Rate: f(0.15), Currency: "CAD"},
	{Region: "Canada - Quebec", Rate: f(0.08), Currency: "CAD"},
	{Region: "Canada - British Columbia", Rate: f(0.13), Currency: "CAD"},
	{Region: "Canada - Alberta", Rate: f(0.16), Currency: "CAD"},
	{Region: "Mexico", Rate: f(0.09), Currency: "MXN"},
	// Europe
	{Region: "UK", Rate: f(0.30), Currency: "GBP"},
	{Region: "Germany", Rate: f(0.35), Currency: "EUR"},
	{Region: "France", Rate: f(0.20), Currency: "EUR"},
	{Region: "Spain", Rate: f(0.24), Currency: "EUR"},
	{Region: "Italy", Rate: f(0.28), Currency: "EUR"},
	{Region: "Netherlands", Rate: f(0.29), Currency: "EUR"},
	{Region: "Belgium", Rate: f(0.30), Currency: "EUR"},
	{Region: "Portugal", Rate: f(0.22), Currency: "EUR"},
	{Region: "Poland", Rate: f(0.18), Currency: "PLN"},
	{Region: "Sweden", Rate: f(0.20), Currency: "SEK"},
	{Region: "Norway", Rate: f(0.12), Currency: "NOK"},
	{Region: "Switzerland", Rate: f(0.22), Currency: "EUR"},
	{Region: "Austria", Rate: f(0.26), Currency: "EUR"},
	{Region: "Ireland", Rate: f(0.32), Currency: "EUR"},
	// Asia Pacific
	{Region: "Australia", Rate: f(0.28), Currency: "AUD"},
	{Region: "New Zealand", Rate: f(0.24), Currency: "NZD"},
	{Region: "Japan", Rate: f(0.27), Currency: "JPY"},
	{Region: "South Korea", Rate: f(0.12), Currency: "KRW"},
	{Region: "Singapore", Rate: f(0.20), Currency: "SGD"},
	{Region: "India", Rate: f(0.09), Currency: "INR"},
	{Region: "China", Rate: f(0.08), Currency: "USD"},
	{Region: "Hong Kong", Rate: f(0.15), Currency: "USD"},
	{Region: "Taiwan", Rate: f(0.10), Currency: "USD"},
	// South America
	{Region: "Brazil", Rate: f(0.16), Currency: "BRL"},
	{Region: "Argentina", Rate: f(0.06), Currency: "ARS"},
	{Region: "Chile", Rate: f(0.16), Currency: "CLP"},
	{Region: "Colombia", Rate: f(0.14), Currency: "COP"},
	// Middle East & Africa
	{Region: "South Africa", Rate: f(0.14), Currency: "ZAR"},
	{Region: "UAE", Rate: f(0.09), Currency: "AED"},
	{Region: "Israel", Rate: f(0.17), Currency: "ILS"},
	{Region: "Saudi Arabia", Rate: f(0.05), Currency: "USD"},
	// Custom
	{Region: "Custom / Other"},
}
