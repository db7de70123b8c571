package bands

import (
	"fmt"
	"strings"
)

// Band identifies a radio band. The zero value is BandUnknown and never
// appears in any lookup table.
type Band uint8

const (
	BandUnknown Band = iota
	BandN1
	BandN2
	BandN3
	BandN4
	BandN5
	BandN6
	BandN7
	BandN8
	BandN9
	BandN10
	BandN11
	BandN12
	BandN13
	BandN14
	BandN15
	BandN16
	BandN17
	BandN18
	BandN19
	BandN20
	BandN21
	BandN22
	BandN23
	BandN24
	BandN25
	BandN26
	BandN27
	BandN28
	BandN29
	BandN30
	BandN31
	BandN32
	BandN33
	BandN34
	BandN35
	BandN36
	BandN37
	BandN38
	BandN39
	BandN40

	bandCount
)

// String returns the band identifier as shown to users, e.g. "n22".
func (b Band) String() string {
	if b == BandUnknown || b >= bandCount {
		return ""
	}
	return fmt.Sprintf("n%d", int(b))
}

// Valid reports whether b is one of the enumerated bands.
func (b Band) Valid() bool {
	return b > BandUnknown && b < bandCount
}

// ParseBand converts an identifier such as "n7" into a Band.
func ParseBand(s string) (Band, error) {
	s = strings.TrimSpace(s)
	for b := BandN1; b < bandCount; b++ {
		if b.String() == s {
			return b, nil
		}
	}
	return BandUnknown, fmt.Errorf("unknown band %q", s)
}

// MarshalText implements encoding.TextMarshaler so bands persist as "n1".
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value decodes
// to BandUnknown.
func (b *Band) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*b = BandUnknown
		return nil
	}
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// DuplexMode is FDD or TDD.
type DuplexMode string

const (
	FDD DuplexMode = "FDD"
	TDD DuplexMode = "TDD"
)

// DuplexModes lists the duplex modes in picker order.
var DuplexModes = []DuplexMode{FDD, TDD}

// Technology is the radio technology of a single cell.
type Technology string

const (
	Tech4G  Technology = "4G"
	Tech5G  Technology = "5G"
	TechLTE Technology = "LTE"
)

// Technologies lists the cell technologies in picker order.
var Technologies = []Technology{Tech4G, Tech5G, TechLTE}

// IsNR reports whether t uses the NR-ARFCN table.
func (t Technology) IsNR() bool {
	return t == Tech5G
}

// IsLegacy reports whether t uses the EARFCN tables.
func (t Technology) IsLegacy() bool {
	return t == Tech4G || t == TechLTE
}

// ChannelNumbers holds the channel numbers derived from a band. SSB is only
// populated for NR bands.
type ChannelNumbers struct {
	DL  string
	UL  string
	SSB string
}

// BandsFor returns the bands offered for a duplex mode, in table order.
// Unknown duplex modes yield nil.
func BandsFor(mode DuplexMode) []Band {
	var table []earfcnEntry
	switch mode {
	case FDD:
		table = fddTable
	case TDD:
		table = tddTable
	default:
		return nil
	}
	out := make([]Band, len(table))
	for i, e := range table {
		out[i] = e.band
	}
	return out
}

// FirstBand returns the first band of the duplex mode's family.
func FirstBand(mode DuplexMode) (Band, bool) {
	list := BandsFor(mode)
	if len(list) == 0 {
		return BandUnknown, false
	}
	return list[0], true
}

// InDuplexFamily reports whether band belongs to the duplex mode's band set.
func InDuplexFamily(band Band, mode DuplexMode) bool {
	for _, b := range BandsFor(mode) {
		if b == band {
			return true
		}
	}
	return false
}

// NRBands returns the bands that have NR-ARFCN entries.
func NRBands() []Band {
	out := make([]Band, len(nrTable))
	for i, e := range nrTable {
		out[i] = e.band
	}
	return out
}

// Lookup returns the channel numbers for a band. Legacy technologies are
// resolved against the FDD or TDD EARFCN table selected by mode; 5G is
// resolved against the NR-ARFCN table regardless of mode.
//
// A false result means the caller must keep whatever channel numbers it
// already has. The NR table is sparse, so misses are expected.
func Lookup(band Band, mode DuplexMode, tech Technology) (ChannelNumbers, bool) {
	if !band.Valid() {
		return ChannelNumbers{}, false
	}

	switch {
	case tech.IsNR():
		for _, e := range nrTable {
			if e.band == band {
				return ChannelNumbers{DL: e.dl, UL: e.ul, SSB: e.ssb}, true
			}
		}
	case tech.IsLegacy():
		var table []earfcnEntry
		switch mode {
		case FDD:
			table = fddTable
		case TDD:
			table = tddTable
		}
		for _, e := range table {
			if e.band == band {
				return ChannelNumbers{DL: e.dl, UL: e.ul}, true
			}
		}
	}

	return ChannelNumbers{}, false
}
