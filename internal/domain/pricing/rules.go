package pricing

// All amounts are labor-only, in integer cents. Materials are quoted
// separately outside this engine.

// subRule selects a fixed price when any of its keywords appears in the
// service text. Sub-rules are checked in order; the first match wins.
type subRule struct {
	keywords []string
	cents    int64
}

// categoryRule is one row of the pricing decision table. The category matches
// when any of its keywords appears in the service text; defaultCents applies
// when no sub-rule matches.
type categoryRule struct {
	name         string
	keywords     []string
	subRules     []subRule
	defaultCents int64
}

// DefaultPriceCents applies when no category keyword matches at all.
const DefaultPriceCents int64 = 5_000_00 // $5,000

// priceRules is evaluated top to bottom; the first matching category wins and
// there is no blending across categories. A service titled "kitchen electrical
// upgrade" is therefore priced as kitchen work.
var priceRules = []categoryRule{
	{
		name:     "kitchen",
		keywords: []string{"kitchen"},
		subRules: []subRule{
			{keywords: []string{"remodel", "renovation"}, cents: 25_000_00},
			{keywords: []string{"cabinet"}, cents: 8_000_00},
			{keywords: []string{"countertop"}, cents: 4_500_00},
		},
		defaultCents: 12_000_00,
	},
	{
		name:     "bathroom",
		keywords: []string{"bathroom", "bath "},
		subRules: []subRule{
			{keywords: []string{"remodel", "renovation"}, cents: 15_000_00},
			{keywords: []string{"tile", "tiling"}, cents: 6_000_00},
		},
		defaultCents: 8_000_00,
	},
	{
		name:     "addition",
		keywords: []string{"addition", "extension"},
		subRules: []subRule{
			{keywords: []string{"second story", "second-story"}, cents: 80_000_00},
			{keywords: []string{"garage"}, cents: 35_000_00},
		},
		defaultCents: 45_000_00,
	},
	{
		name:     "outdoor",
		keywords: []string{"deck", "patio"},
		subRules: []subRule{
			{keywords: []string{"repair", "maintenance"}, cents: 4_000_00},
			{keywords: []string{"composite"}, cents: 18_000_00},
		},
		defaultCents: 12_000_00,
	},
	{
		name:     "roofing",
		keywords: []string{"roof"},
		subRules: []subRule{
			{keywords: []string{"replace", "replacement", "new roof"}, cents: 16_000_00},
			{keywords: []string{"repair", "leak"}, cents: 3_500_00},
		},
		defaultCents: 9_000_00,
	},
	{
		name:     "flooring",
		keywords: []string{"floor"},
		subRules: []subRule{
			{keywords: []string{"hardwood"}, cents: 14_000_00},
			{keywords: []string{"tile", "tiling"}, cents: 9_000_00},
		},
		defaultCents: 7_000_00,
	},
	{
		name:     "carpentry",
		keywords: []string{"carpentry", "carpenter"},
		subRules: []subRule{
			{keywords: []string{"custom", "built-in", "built in"}, cents: 9_500_00},
			{keywords: []string{"trim", "finish"}, cents: 3_500_00},
		},
		defaultCents: 6_000_00,
	},
	{
		name:     "electrical",
		keywords: []string{"electrical", "electric", "wiring"},
		subRules: []subRule{
			{keywords: []string{"rewire", "rewiring"}, cents: 12_000_00},
			{keywords: []string{"panel"}, cents: 2_800_00},
		},
		defaultCents: 4_500_00,
	},
	{
		name:     "plumbing",
		keywords: []string{"plumbing", "plumber", "pipe"},
		subRules: []subRule{
			{keywords: []string{"repipe", "repiping"}, cents: 11_000_00},
			{keywords: []string{"water heater"}, cents: 2_500_00},
		},
		defaultCents: 4_000_00,
	},
	{
		name:     "hvac",
		keywords: []string{"hvac", "heating", "cooling", "furnace", "air conditioning"},
		subRules: []subRule{
			{keywords: []string{"install", "replacement"}, cents: 12_500_00},
			{keywords: []string{"maintenance", "tune-up", "tune up"}, cents: 1_800_00},
		},
		defaultCents: 6_000_00,
	},
	{
		name:     "management",
		keywords: []string{"management", "consultation", "consulting"},
		subRules: []subRule{
			{keywords: []string{"consultation", "consulting"}, cents: 1_500_00},
			{keywords: []string{"project management"}, cents: 5_000_00},
		},
		defaultCents: 2_000_00,
	},
}
