package crops

// Catalog returns the built-in crop catalog. The slice is shared by every
// caller and must not be modified.
func Catalog() []Profile {
	return catalog
}

// Lookup returns the catalog profile with the given id.
func Lookup(id string) (Profile, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

var catalog = []Profile{
	{
		ID: "rice", Name: "Rice", Hindi: "धान", Emoji: "🌾",
		Seasons: []Season{Kharif},
		Soils:   []string{"Clay", "Loamy", "Silty"},
		MinTemp: 20, MaxTemp: 35, MinHumidity: 60, MaxHumidity: 95,
		Regions:      []string{"West Bengal", "UP", "Uttar Pradesh", "Punjab", "Bihar", "Odisha", "Andhra Pradesh", "Tamil Nadu", "Telangana", "Assam"},
		YieldPerAcre: 22, PriceMin: 2000, PriceMax: 2300, InvestmentPerAcre: 30000, IncomePerAcre: 50000,
		Duration: "120-150 days",
		Tip:      "Transplant 25-day-old seedlings and keep 5 cm standing water till flowering.",
	},
	{
		ID: "wheat", Name: "Wheat", Hindi: "गेहूं", Emoji: "🌾",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Clay"},
		MinTemp: 10, MaxTemp: 25, MinHumidity: 40, MaxHumidity: 70,
		Regions:      []string{"Punjab", "Haryana", "UP", "Uttar Pradesh", "MP", "Madhya Pradesh", "Rajasthan", "Bihar"},
		YieldPerAcre: 20, PriceMin: 2100, PriceMax: 2400, InvestmentPerAcre: 25000, IncomePerAcre: 45000,
		Duration: "120-150 days",
		Tip:      "Sow by mid-November; give the first irrigation at crown-root initiation, 21 days after sowing.",
	},
	{
		ID: "maize", Name: "Maize", Hindi: "मक्का", Emoji: "🌽",
		Seasons: []Season{Kharif},
		Soils:   []string{"Loamy", "Sandy", "Red"},
		MinTemp: 18, MaxTemp: 32, MinHumidity: 50, MaxHumidity: 80,
		Regions:      []string{"Karnataka", "MP", "Madhya Pradesh", "Bihar", "Telangana", "Andhra Pradesh", "Maharashtra", "Rajasthan"},
		YieldPerAcre: 25, PriceMin: 1700, PriceMax: 2000, InvestmentPerAcre: 20000, IncomePerAcre: 40000,
		Duration: "90-110 days",
		Tip:      "Ridge sowing avoids waterlogging; earth up at knee height.",
	},
	{
		ID: "cotton", Name: "Cotton", Hindi: "कपास", Emoji: "☁️",
		Seasons: []Season{Kharif},
		Soils:   []string{"Black", "Sandy"},
		MinTemp: 21, MaxTemp: 35, MinHumidity: 50, MaxHumidity: 80,
		Regions:      []string{"Maharashtra", "Gujarat", "Telangana", "Punjab", "Haryana"},
		YieldPerAcre: 10, PriceMin: 6500, PriceMax: 7200, InvestmentPerAcre: 35000, IncomePerAcre: 65000,
		Duration: "150-180 days",
		Tip:      "Use pheromone traps early to catch pink bollworm before it spreads.",
	},
	{
		ID: "sugarcane", Name: "Sugarcane", Hindi: "गन्ना", Emoji: "🎋",
		Seasons: []Season{Rabi, Zaid},
		Soils:   []string{"Loamy", "Clay", "Black"},
		MinTemp: 20, MaxTemp: 35, MinHumidity: 60, MaxHumidity: 85,
		Regions:      []string{"UP", "Uttar Pradesh", "Maharashtra", "Karnataka", "Tamil Nadu", "Bihar"},
		YieldPerAcre: 350, PriceMin: 300, PriceMax: 350, InvestmentPerAcre: 60000, IncomePerAcre: 120000,
		Duration: "10-12 months",
		Tip:      "Plant three-bud setts treated with fungicide; trash mulching saves irrigation water.",
	},
	{
		ID: "potato", Name: "Potato", Hindi: "आलू", Emoji: "🥔",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Sandy", "Silty"},
		MinTemp: 15, MaxTemp: 25, MinHumidity: 60, MaxHumidity: 85,
		Regions:      []string{"UP", "Uttar Pradesh", "West Bengal", "Punjab", "Bihar", "Gujarat"},
		YieldPerAcre: 100, PriceMin: 1000, PriceMax: 1400, InvestmentPerAcre: 50000, IncomePerAcre: 90000,
		Duration: "90-120 days",
		Tip:      "Use certified seed tubers and stop irrigation ten days before digging.",
	},
	{
		ID: "mustard", Name: "Mustard", Hindi: "सरसों", Emoji: "🌼",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Sandy"},
		MinTemp: 10, MaxTemp: 25, MinHumidity: 40, MaxHumidity: 70,
		Regions:      []string{"Rajasthan", "Haryana", "UP", "Uttar Pradesh", "MP", "Madhya Pradesh", "West Bengal"},
		YieldPerAcre: 8, PriceMin: 5000, PriceMax: 5700, InvestmentPerAcre: 18000, IncomePerAcre: 40000,
		Duration: "110-140 days",
		Tip:      "Thin plants to 15 cm spacing three weeks after sowing; watch for aphids in January.",
	},
	{
		ID: "chickpea", Name: "Chickpea", Hindi: "चना", Emoji: "🫘",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Black", "Clay"},
		MinTemp: 15, MaxTemp: 30, MinHumidity: 30, MaxHumidity: 60,
		Regions:      []string{"MP", "Madhya Pradesh", "Rajasthan", "Maharashtra", "UP", "Uttar Pradesh", "Karnataka"},
		YieldPerAcre: 8, PriceMin: 5000, PriceMax: 5500, InvestmentPerAcre: 20000, IncomePerAcre: 38000,
		Duration: "100-120 days",
		Tip:      "Nip the growing tips at 30 days to encourage branching.",
	},
	{
		ID: "groundnut", Name: "Groundnut", Hindi: "मूंगफली", Emoji: "🥜",
		Seasons: []Season{Kharif},
		Soils:   []string{"Sandy", "Red", "Loamy"},
		MinTemp: 22, MaxTemp: 32, MinHumidity: 50, MaxHumidity: 75,
		Regions:      []string{"Gujarat", "Andhra Pradesh", "Tamil Nadu", "Rajasthan", "Karnataka"},
		YieldPerAcre: 10, PriceMin: 5500, PriceMax: 6500, InvestmentPerAcre: 30000, IncomePerAcre: 55000,
		Duration: "100-130 days",
		Tip:      "Apply gypsum at pegging for well-filled pods.",
	},
	{
		ID: "soybean", Name: "Soybean", Hindi: "सोयाबीन", Emoji: "🫛",
		Seasons: []Season{Kharif},
		Soils:   []string{"Black", "Loamy", "Clay"},
		MinTemp: 20, MaxTemp: 32, MinHumidity: 60, MaxHumidity: 85,
		Regions:      []string{"MP", "Madhya Pradesh", "Maharashtra", "Rajasthan", "Karnataka"},
		YieldPerAcre: 9, PriceMin: 4200, PriceMax: 4800, InvestmentPerAcre: 22000, IncomePerAcre: 38000,
		Duration: "90-110 days",
		Tip:      "Treat seed with Rhizobium culture; sow only after 10 cm of monsoon rain.",
	},
	{
		ID: "onion", Name: "Onion", Hindi: "प्याज", Emoji: "🧅",
		Seasons: []Season{Rabi, Kharif},
		Soils:   []string{"Loamy", "Sandy", "Red"},
		MinTemp: 13, MaxTemp: 28, MinHumidity: 50, MaxHumidity: 75,
		Regions:      []string{"Maharashtra", "Karnataka", "MP", "Madhya Pradesh", "Gujarat", "Bihar"},
		YieldPerAcre: 100, PriceMin: 1000, PriceMax: 2500, InvestmentPerAcre: 60000, IncomePerAcre: 140000,
		Duration: "120-150 days",
		Tip:      "Cure bulbs in shade for a week before storage to cut rotting losses.",
	},
	{
		ID: "tomato", Name: "Tomato", Hindi: "टमाटर", Emoji: "🍅",
		Seasons: []Season{YearRound},
		Soils:   []string{"Loamy", "Red", "Sandy", "Black"},
		MinTemp: 18, MaxTemp: 30, MinHumidity: 50, MaxHumidity: 75,
		Regions:      []string{"Andhra Pradesh", "Karnataka", "MP", "Madhya Pradesh", "Odisha", "Maharashtra", "Gujarat"},
		YieldPerAcre: 120, PriceMin: 800, PriceMax: 2000, InvestmentPerAcre: 70000, IncomePerAcre: 150000,
		Duration: "90-120 days",
		Tip:      "Stake plants and use drip irrigation; mulch keeps fruit off wet soil.",
	},
	{
		ID: "bajra", Name: "Pearl Millet", Hindi: "बाजरा", Emoji: "🌾",
		Seasons: []Season{Kharif},
		Soils:   []string{"Sandy", "Loamy"},
		MinTemp: 25, MaxTemp: 35, MinHumidity: 30, MaxHumidity: 60,
		Regions:      []string{"Rajasthan", "Gujarat", "Haryana", "UP", "Uttar Pradesh", "Maharashtra"},
		YieldPerAcre: 12, PriceMin: 2300, PriceMax: 2600, InvestmentPerAcre: 12000, IncomePerAcre: 25000,
		Duration: "75-90 days",
		Tip:      "Tolerates drought; one irrigation at flowering lifts yield sharply.",
	},
	{
		ID: "jowar", Name: "Sorghum", Hindi: "ज्वार", Emoji: "🌾",
		Seasons: []Season{Kharif, Rabi},
		Soils:   []string{"Black", "Loamy", "Red"},
		MinTemp: 25, MaxTemp: 32, MinHumidity: 40, MaxHumidity: 70,
		Regions:      []string{"Maharashtra", "Karnataka", "MP", "Madhya Pradesh", "Telangana", "Andhra Pradesh"},
		YieldPerAcre: 12, PriceMin: 3000, PriceMax: 3300, InvestmentPerAcre: 15000, IncomePerAcre: 30000,
		Duration: "100-115 days",
		Tip:      "Stalks make good fodder; harvest grain when it hardens.",
	},
	{
		ID: "barley", Name: "Barley", Hindi: "जौ", Emoji: "🌾",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Sandy"},
		MinTemp: 12, MaxTemp: 25, MinHumidity: 40, MaxHumidity: 70,
		Regions:      []string{"Rajasthan", "UP", "Uttar Pradesh", "MP", "Madhya Pradesh", "Haryana", "Punjab"},
		YieldPerAcre: 15, PriceMin: 1700, PriceMax: 2000, InvestmentPerAcre: 15000, IncomePerAcre: 28000,
		Duration: "110-130 days",
		Tip:      "Handles mildly saline soil better than wheat; needs only two or three irrigations.",
	},
	{
		ID: "lentil", Name: "Lentil", Hindi: "मसूर", Emoji: "🫘",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Clay"},
		MinTemp: 15, MaxTemp: 25, MinHumidity: 40, MaxHumidity: 65,
		Regions:      []string{"MP", "Madhya Pradesh", "UP", "Uttar Pradesh", "Bihar", "West Bengal"},
		YieldPerAcre: 7, PriceMin: 6000, PriceMax: 6500, InvestmentPerAcre: 18000, IncomePerAcre: 35000,
		Duration: "110-130 days",
		Tip:      "Fixes its own nitrogen; a light phosphorus dose at sowing is enough.",
	},
	{
		ID: "peas", Name: "Green Peas", Hindi: "मटर", Emoji: "🫛",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Clay"},
		MinTemp: 10, MaxTemp: 25, MinHumidity: 50, MaxHumidity: 75,
		Regions:      []string{"UP", "Uttar Pradesh", "MP", "Madhya Pradesh", "Punjab", "Himachal Pradesh"},
		YieldPerAcre: 40, PriceMin: 2000, PriceMax: 3500, InvestmentPerAcre: 25000, IncomePerAcre: 80000,
		Duration: "60-90 days",
		Tip:      "Pick pods every four days once filling starts for the best mandi price.",
	},
	{
		ID: "cauliflower", Name: "Cauliflower", Hindi: "फूलगोभी", Emoji: "🥦",
		Seasons: []Season{Rabi},
		Soils:   []string{"Loamy", "Clay"},
		MinTemp: 15, MaxTemp: 25, MinHumidity: 60, MaxHumidity: 85,
		Regions:      []string{"West Bengal", "Bihar", "Odisha", "Haryana", "Gujarat"},
		YieldPerAcre: 100, PriceMin: 800, PriceMax: 1500, InvestmentPerAcre: 50000, IncomePerAcre: 100000,
		Duration: "90-120 days",
		Tip:      "Tie the outer leaves over the curd to keep it white.",
	},
	{
		ID: "brinjal", Name: "Brinjal", Hindi: "बैंगन", Emoji: "🍆",
		Seasons: []Season{YearRound},
		Soils:   []string{"Loamy", "Clay", "Silty"},
		MinTemp: 20, MaxTemp: 32, MinHumidity: 55, MaxHumidity: 80,
		Regions:      []string{"West Bengal", "Odisha", "Gujarat", "Bihar", "Andhra Pradesh"},
		YieldPerAcre: 150, PriceMin: 700, PriceMax: 1500, InvestmentPerAcre: 45000, IncomePerAcre: 110000,
		Duration: "120-150 days",
		Tip:      "Remove shoots bored by fruit-and-shoot borer every week.",
	},
	{
		ID: "okra", Name: "Okra", Hindi: "भिंडी", Emoji: "🫑",
		Seasons: []Season{Kharif, Zaid}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Sandy"},
		MinTemp: 22, MaxTemp: 35, MinHumidity: 50, MaxHumidity: 80,
		Regions:      []string{"Gujarat", "West Bengal", "Bihar", "Andhra Pradesh", "Maharashtra"},
		YieldPerAcre: 60, PriceMin: 1500, PriceMax: 2500, InvestmentPerAcre: 25000, IncomePerAcre: 70000,
		Duration: "50-60 days",
		Tip:      "Harvest tender pods every other day; older pods turn fibrous.",
	},
	{
		ID: "spinach", Name: "Spinach", Hindi: "पालक", Emoji: "🥬",
		Seasons: []Season{Rabi}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Silty", "Clay"},
		MinTemp: 10, MaxTemp: 25, MinHumidity: 50, MaxHumidity: 85,
		Regions:      []string{"UP", "Uttar Pradesh", "Punjab", "Haryana", "Delhi", "Gujarat"},
		YieldPerAcre: 60, PriceMin: 1000, PriceMax: 1800, InvestmentPerAcre: 15000, IncomePerAcre: 60000,
		Duration: "30-45 days",
		Tip:      "First cutting at 30 days; a light urea dose after each cut brings fresh leaves.",
	},
	{
		ID: "radish", Name: "Radish", Hindi: "मूली", Emoji: "🥕",
		Seasons: []Season{Rabi}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Sandy"},
		MinTemp: 10, MaxTemp: 25, MinHumidity: 50, MaxHumidity: 80,
		Regions:      []string{"Punjab", "Haryana", "Delhi", "UP", "Uttar Pradesh", "West Bengal", "Bihar"},
		YieldPerAcre: 80, PriceMin: 500, PriceMax: 1000, InvestmentPerAcre: 12000, IncomePerAcre: 45000,
		Duration: "40-50 days",
		Tip:      "Pull roots on time; delayed harvest makes them pithy.",
	},
	{
		ID: "coriander", Name: "Coriander", Hindi: "धनिया", Emoji: "🌿",
		Seasons: []Season{Rabi}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Black", "Silty"},
		MinTemp: 10, MaxTemp: 28, MinHumidity: 40, MaxHumidity: 75,
		Regions:      []string{"Rajasthan", "MP", "Madhya Pradesh", "Gujarat", "Andhra Pradesh"},
		YieldPerAcre: 25, PriceMin: 1500, PriceMax: 3000, InvestmentPerAcre: 10000, IncomePerAcre: 50000,
		Duration: "35-45 days",
		Tip:      "Split seeds in two before sowing for even germination.",
	},
	{
		ID: "methi", Name: "Fenugreek", Hindi: "मेथी", Emoji: "🌱",
		Seasons: []Season{Rabi}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Clay", "Sandy"},
		MinTemp: 10, MaxTemp: 28, MinHumidity: 40, MaxHumidity: 70,
		Regions:      []string{"Rajasthan", "Gujarat", "MP", "Madhya Pradesh", "Punjab", "UP", "Uttar Pradesh"},
		YieldPerAcre: 40, PriceMin: 1500, PriceMax: 2500, InvestmentPerAcre: 10000, IncomePerAcre: 40000,
		Duration: "30-40 days",
		Tip:      "Broadcast thickly for leaf harvest; cut twice before letting it seed.",
	},
	{
		ID: "cucumber", Name: "Cucumber", Hindi: "खीरा", Emoji: "🥒",
		Seasons: []Season{Zaid}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Sandy"},
		MinTemp: 20, MaxTemp: 32, MinHumidity: 60, MaxHumidity: 85,
		Regions:      []string{"UP", "Uttar Pradesh", "Punjab", "Haryana", "Karnataka"},
		YieldPerAcre: 80, PriceMin: 800, PriceMax: 1500, InvestmentPerAcre: 25000, IncomePerAcre: 70000,
		Duration: "45-60 days",
		Tip:      "Train vines on a trellis to double marketable fruit.",
	},
	{
		ID: "watermelon", Name: "Watermelon", Hindi: "तरबूज", Emoji: "🍉",
		Seasons: []Season{Zaid},
		Soils:   []string{"Sandy", "Loamy"},
		MinTemp: 24, MaxTemp: 35, MinHumidity: 50, MaxHumidity: 75,
		Regions:      []string{"UP", "Uttar Pradesh", "Karnataka", "Andhra Pradesh", "Tamil Nadu"},
		YieldPerAcre: 150, PriceMin: 500, PriceMax: 1000, InvestmentPerAcre: 40000, IncomePerAcre: 90000,
		Duration: "80-100 days",
		Tip:      "Riverbed sandy plots give the sweetest fruit; cut irrigation a week before harvest.",
	},
	{
		ID: "moong", Name: "Green Gram", Hindi: "मूंग", Emoji: "🫘",
		Seasons: []Season{Zaid, Kharif}, QuickHarvest: true,
		Soils:   []string{"Loamy", "Sandy", "Red"},
		MinTemp: 25, MaxTemp: 35, MinHumidity: 50, MaxHumidity: 80,
		Regions:      []string{"Rajasthan", "Maharashtra", "Karnataka", "Andhra Pradesh", "Odisha", "Bihar"},
		YieldPerAcre: 5, PriceMin: 7000, PriceMax: 8000, InvestmentPerAcre: 12000, IncomePerAcre: 30000,
		Duration: "55-60 days",
		Tip:      "Fits between wheat harvest and kharif sowing; plough the residue back in.",
	},
	{
		ID: "turmeric", Name: "Turmeric", Hindi: "हल्दी", Emoji: "🫚",
		Seasons: []Season{Kharif},
		Soils:   []string{"Loamy", "Clay", "Red"},
		MinTemp: 20, MaxTemp: 30, MinHumidity: 70, MaxHumidity: 90,
		Regions:      []string{"Andhra Pradesh", "Telangana", "Tamil Nadu", "Odisha", "Maharashtra"},
		YieldPerAcre: 80, PriceMin: 6000, PriceMax: 9000, InvestmentPerAcre: 80000, IncomePerAcre: 200000,
		Duration: "8-9 months",
		Tip:      "Plant mother rhizomes on raised beds; boil and dry before selling.",
	},
	{
		ID: "jute", Name: "Jute", Hindi: "जूट", Emoji: "🧵",
		Seasons: []Season{Kharif},
		Soils:   []string{"Silty", "Loamy", "Clay"},
		MinTemp: 24, MaxTemp: 37, MinHumidity: 70, MaxHumidity: 90,
		Regions:      []string{"West Bengal", "Bihar", "Assam", "Odisha"},
		YieldPerAcre: 25, PriceMin: 4500, PriceMax: 5200, InvestmentPerAcre: 25000, IncomePerAcre: 55000,
		Duration: "120-150 days",
		Tip:      "Ret stalks in slow-moving clean water for bright fibre.",
	},
	{
		ID: "banana", Name: "Banana", Hindi: "केला", Emoji: "🍌",
		Seasons: []Season{YearRound},
		Soils:   []string{"Loamy", "Clay", "Silty"},
		MinTemp: 20, MaxTemp: 35, MinHumidity: 60, MaxHumidity: 90,
		Regions:      []string{"Tamil Nadu", "Maharashtra", "Gujarat", "Andhra Pradesh", "Kerala", "Karnataka"},
		YieldPerAcre: 250, PriceMin: 1000, PriceMax: 1800, InvestmentPerAcre: 100000, IncomePerAcre: 250000,
		Duration: "11-13 months",
		Tip:      "Use tissue-culture plantlets and prop bunches before they bend.",
	},
	{
		ID: "sunflower", Name: "Sunflower", Hindi: "सूरजमुखी", Emoji: "🌻",
		Seasons: []Season{Rabi, Kharif},
		Soils:   []string{"Loamy", "Black", "Sandy"},
		MinTemp: 20, MaxTemp: 30, MinHumidity: 40, MaxHumidity: 70,
		Regions:      []string{"Karnataka", "Andhra Pradesh", "Maharashtra", "Bihar"},
		YieldPerAcre: 8, PriceMin: 5500, PriceMax: 6500, InvestmentPerAcre: 18000, IncomePerAcre: 40000,
		Duration: "90-100 days",
		Tip:      "Keep bee boxes nearby at flowering for better seed set.",
	},
	{
		ID: "ragi", Name: "Finger Millet", Hindi: "रागी", Emoji: "🌾",
		Seasons: []Season{Kharif},
		Soils:   []string{"Red", "Sandy", "Loamy"},
		MinTemp: 20, MaxTemp: 30, MinHumidity: 50, MaxHumidity: 80,
		Regions:      []string{"Karnataka", "Tamil Nadu", "Uttarakhand", "Andhra Pradesh", "Maharashtra", "Odisha"},
		YieldPerAcre: 15, PriceMin: 3500, PriceMax: 3900, InvestmentPerAcre: 12000, IncomePerAcre: 30000,
		Duration: "100-120 days",
		Tip:      "Transplanting 3-week seedlings beats broadcasting on red soils.",
	},
}
