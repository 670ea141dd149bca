package ore

// Default mining XP rewards by ore family
const (
	XPCopper     = 50
	XPIron       = 75
	XPThorium    = 100
	XPGold       = 125
	XPCobalt     = 150
	XPSilver     = 175
	XPAdamantite = 200
	XPMithril    = 250
	XPOnyxium    = 300
)

// Block id prefixes of the default mining ores
const (
	PrefixCopper     = "Ore_Copper_"
	PrefixIron       = "Ore_Iron_"
	PrefixThorium    = "Ore_Thorium_"
	PrefixGold       = "Ore_Gold_"
	PrefixCobalt     = "Ore_Cobalt_"
	PrefixSilver     = "Ore_Silver_"
	PrefixAdamantite = "Ore_Adamantite_"
	PrefixMithril    = "Ore_Mithril_"
	PrefixOnyxium    = "Ore_Onyxium_"
)
