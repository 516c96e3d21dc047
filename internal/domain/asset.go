package domain

// AssetClass represents one of the fixed asset classes an allocation can hold
type AssetClass string

const (
	AssetClassBonds          AssetClass = "BONDS"
	AssetClassEquityETF      AssetClass = "EQUITY_ETF"
	AssetClassCash           AssetClass = "CASH"
	AssetClassRealEstateREIT AssetClass = "REAL_ESTATE_REIT"
	AssetClassCrypto         AssetClass = "CRYPTO"
)

// AssetClasses lists every asset class in display order
var AssetClasses = []AssetClass{
	AssetClassBonds,
	AssetClassEquityETF,
	AssetClassCash,
	AssetClassRealEstateREIT,
	AssetClassCrypto,
}

// AssetInfo holds the static attributes of an asset class
// ExpectedAnnualReturn and AnnualVolatility are fractions (0.08 = 8%)
type AssetInfo struct {
	Class                AssetClass
	Label                string
	ExpectedAnnualReturn float64
	AnnualVolatility     float64 // Annual standard deviation
	Description          string
	Color                string // Chart color used by the display layer
}

// ReferenceData provides the static attributes of asset classes
type ReferenceData interface {
	// Lookup returns the attributes of an asset class
	// ok is false if the asset class is not part of the table
	Lookup(class AssetClass) (AssetInfo, bool)
}

// ReferenceTable is an immutable ReferenceData backed by a map
type ReferenceTable struct {
	entries map[AssetClass]AssetInfo
}

// NewReferenceTable builds a ReferenceTable from the given entries
// Entries are copied, later changes to the slice do not affect the table
func NewReferenceTable(infos ...AssetInfo) *ReferenceTable {
	entries := make(map[AssetClass]AssetInfo, len(infos))
	for _, info := range infos {
		entries[info.Class] = info
	}
	return &ReferenceTable{entries: entries}
}

// Lookup returns the attributes of an asset class
func (t *ReferenceTable) Lookup(class AssetClass) (AssetInfo, bool) {
	info, ok := t.entries[class]
	return info, ok
}

// List returns all entries in display order
func (t *ReferenceTable) List() []AssetInfo {
	infos := make([]AssetInfo, 0, len(t.entries))
	for _, class := range AssetClasses {
		if info, ok := t.entries[class]; ok {
			infos = append(infos, info)
		}
	}
	return infos
}

// DefaultReferenceData is the process-wide reference table
// It is built once at init and never mutated
var DefaultReferenceData = NewReferenceTable(
	AssetInfo{
		Class:                AssetClassBonds,
		Label:                "Obligations",
		ExpectedAnnualReturn: 0.03,
		AnnualVolatility:     0.05,
		Description:          "Titres de créance émis par des États ou entreprises. Faible risque, rendement stable.",
		Color:                "#3b82f6",
	},
	AssetInfo{
		Class:                AssetClassEquityETF,
		Label:                "ETF Actions",
		ExpectedAnnualReturn: 0.08,
		AnnualVolatility:     0.18,
		Description:          "Fonds négociés en bourse qui suivent des indices boursiers. Risque moyen à élevé.",
		Color:                "#8b5cf6",
	},
	AssetInfo{
		Class:                AssetClassCash,
		Label:                "Cash",
		ExpectedAnnualReturn: 0.01,
		AnnualVolatility:     0.01,
		Description:          "Liquidités et comptes d'épargne. Aucun risque, faible rendement.",
		Color:                "#10b981",
	},
	AssetInfo{
		Class:                AssetClassRealEstateREIT,
		Label:                "Immobilier/REIT",
		ExpectedAnnualReturn: 0.06,
		AnnualVolatility:     0.12,
		Description:          "Fonds d'investissement immobilier. Diversification et revenus réguliers.",
		Color:                "#f59e0b",
	},
	AssetInfo{
		Class:                AssetClassCrypto,
		Label:                "Crypto",
		ExpectedAnnualReturn: 0.15,
		AnnualVolatility:     0.60,
		Description:          "Cryptomonnaies comme Bitcoin, Ethereum. Très haute volatilité et risque élevé.",
		Color:                "#ef4444",
	},
)

// IsKnown reports whether the asset class belongs to the fixed set
func (c AssetClass) IsKnown() bool {
	for _, known := range AssetClasses {
		if c == known {
			return true
		}
	}
	return false
}
