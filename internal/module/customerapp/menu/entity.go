package menu

type CupSize string

const (
	CupSizeRegular CupSize = "regular"
	CupSizeLarge   CupSize = "large"
)

type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureCold Temperature = "cold"
)

// SugarLevel is the five-point kopitiam sweetness scale, from kosong
// (0%) up to katai (100%).
type SugarLevel string

const (
	SugarLevelKosong   SugarLevel = "kosong"
	SugarLevelSiu2xTai SugarLevel = "siu2xtai"
	SugarLevelSiuTai   SugarLevel = "siutai"
	SugarLevelNormal   SugarLevel = "normal"
	SugarLevelKaTai    SugarLevel = "katai"
)

type MilkType string

const (
	MilkTypeCondensed  MilkType = "condensed"
	MilkTypeEvaporated MilkType = "evaporated"
)

// CustomizationOptions always carries all four axes, even for items
// that do not expose every axis; inapplicable axes are normalised to
// their defaults before pricing or cart matching.
type CustomizationOptions struct {
	CupSize     CupSize     `json:"cup_size" yaml:"cup_size" validate:"oneof=regular large"`
	Temperature Temperature `json:"temperature" yaml:"temperature" validate:"oneof=hot cold"`
	SugarLevel  SugarLevel  `json:"sugar_level" yaml:"sugar_level" validate:"oneof=kosong siu2xtai siutai normal katai"`
	MilkType    MilkType    `json:"milk_type" yaml:"milk_type" validate:"oneof=condensed evaporated"`
}

// Equal reports field-by-field value equality. Cart line matching
// relies on this rather than on any serialized form.
func (c CustomizationOptions) Equal(other CustomizationOptions) bool {
	return c.CupSize == other.CupSize &&
		c.Temperature == other.Temperature &&
		c.SugarLevel == other.SugarLevel &&
		c.MilkType == other.MilkType
}

func DefaultCustomizations() CustomizationOptions {
	return CustomizationOptions{
		CupSize:     CupSizeRegular,
		Temperature: TemperatureHot,
		SugarLevel:  SugarLevelNormal,
		MilkType:    MilkTypeCondensed,
	}
}

type AvailableCustomizations struct {
	CupSize     bool `json:"cup_size" yaml:"cup_size"`
	Temperature bool `json:"temperature" yaml:"temperature"`
	SugarLevel  bool `json:"sugar_level" yaml:"sugar_level"`
	MilkType    bool `json:"milk_type" yaml:"milk_type"`
}

type MenuItem struct {
	ID                      string
	Name                    string
	Description             string
	BasePrice               float64
	Category                string
	Popular                 bool
	AvailableCustomizations AvailableCustomizations
}

type PricingRules struct {
	LargeCupUpcharge float64
	ColdUpcharge     float64
}

// UnitPrice derives the unit price for an item with the chosen
// customizations. Only cup size and temperature carry upcharges; sugar
// level and milk type are display-only. The value keeps full float
// precision, rounding happens at presentation time.
func UnitPrice(item MenuItem, customizations CustomizationOptions, rules PricingRules) float64 {
	price := item.BasePrice

	if customizations.CupSize == CupSizeLarge {
		price += rules.LargeCupUpcharge
	}

	if customizations.Temperature == TemperatureCold {
		price += rules.ColdUpcharge
	}

	return price
}

// Normalize resets any axis the item does not expose back to its
// default, so a hidden axis can never carry an upcharge or split a
// cart line.
func Normalize(item MenuItem, customizations CustomizationOptions) CustomizationOptions {
	defaults := DefaultCustomizations()

	if !item.AvailableCustomizations.CupSize {
		customizations.CupSize = defaults.CupSize
	}
	if !item.AvailableCustomizations.Temperature {
		customizations.Temperature = defaults.Temperature
	}
	if !item.AvailableCustomizations.SugarLevel {
		customizations.SugarLevel = defaults.SugarLevel
	}
	if !item.AvailableCustomizations.MilkType {
		customizations.MilkType = defaults.MilkType
	}

	return customizations
}
