package bands

type earfcnEntry struct {
	band Band
	dl   string
	ul   string
}

type nrEntry struct {
	band Band
	dl   string
	ul   string
	ssb  string
}

// fddTable maps FDD bands to downlink/uplink EARFCN.
var fddTable = []earfcnEntry{
	{BandN1, "300", "18300"},
	{BandN2, "600", "18600"},
	{BandN3, "1200", "19200"},
	{BandN4, "1950", "19950"},
	{BandN5, "2400", "20400"},
	{BandN6, "2650", "20650"},
	{BandN7, "2750", "20750"},
	{BandN8, "3450", "21450"},
	{BandN9, "3800", "21800"},
	{BandN10, "4150", "22150"},
	{BandN11, "4750", "22750"},
	{BandN12, "5000", "23000"},
	{BandN13, "5180", "23180"},
	{BandN14, "5280", "23280"},
	{BandN15, "5730", "23730"},
	{BandN16, "5850", "23850"},
	{BandN17, "5999", "23999"},
	{BandN18, "6150", "24150"},
	{BandN19, "6450", "24450"},
	{BandN20, "6600", "24600"},
	{BandN21, "6750", "24750"},
}

// tddTable maps TDD bands to downlink/uplink EARFCN.
var tddTable = []earfcnEntry{
	{BandN22, "7500", "25500"},
	{BandN23, "7700", "25700"},
	{BandN24, "8040", "26040"},
	{BandN25, "8365", "26365"},
	{BandN26, "8645", "26645"},
	{BandN27, "9040", "27040"},
	{BandN28, "9210", "27210"},
	{BandN29, "9660", "27660"},
	{BandN30, "9770", "27770"},
	{BandN31, "9870", "27870"},
	{BandN32, "9919", "27919"},
	{BandN33, "36000", "36000"},
	{BandN34, "36200", "36200"},
	{BandN35, "36350", "36350"},
	{BandN36, "36950", "36950"},
	{BandN37, "37550", "37550"},
	{BandN38, "37750", "37750"},
	{BandN39, "38250", "38250"},
	{BandN40, "38650", "38650"},
}

// nrTable maps bands to downlink/uplink/SSB NR-ARFCN. Only a subset of the
// picker bands has entries.
var nrTable = []nrEntry{
	{BandN1, "42800", "39000", "39000"},
	{BandN2, "43400", "39600", "39600"},
	{BandN3, "44000", "40200", "40200"},
	{BandN4, "44600", "40800", "40800"},
	{BandN5, "45200", "41400", "41400"},
	{BandN6, "45800", "42000", "42000"},
	{BandN7, "46400", "42600", "42600"},
	{BandN8, "47000", "43200", "43200"},
	{BandN34, "403500", "403500", "403500"},
	{BandN38, "514000", "514000", "514000"},
	{BandN39, "376000", "376000", "376000"},
	{BandN40, "460000", "460000", "460000"},
}
