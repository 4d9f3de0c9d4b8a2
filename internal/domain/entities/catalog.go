package entities

// HomeHighlight is a service card on the home screen.
type HomeHighlight struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ServiceOffering is a detailed entry on the services screen.
type ServiceOffering struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
}

const (
	ShopName    = "Gadget Garage"
	ShopTagline = "Professional PC Services"
	ShopAbout   = "Professional PC building, repair, and upgrade services. We provide expert consultation, quality parts installation, and reliable support for all your computer needs."
)

var HomeHighlights = []HomeHighlight{
	{ID: 1, Title: "PC Building", Icon: "🖥️", Description: "Custom PC builds tailored to your needs"},
	{ID: 2, Title: "PC Repair", Icon: "🔧", Description: "Expert diagnosis and repair services"},
	{ID: 3, Title: "Parts Installation", Icon: "⚡", Description: "Professional hardware installation"},
	{ID: 4, Title: "Upgrades", Icon: "📈", Description: "Boost your PC's performance"},
}

var ServiceOfferings = []ServiceOffering{
	{
		ID:          1,
		Title:       "Custom PC Build",
		Description: "Complete custom PC build with premium components",
		Price:       "$150 - $300",
		Duration:    "2-4 hours",
		Features:    []string{"Component selection", "Assembly", "Testing", "Optimization", "1-year warranty"},
	},
	{
		ID:          2,
		Title:       "PC Repair & Diagnosis",
		Description: "Professional diagnosis and repair of PC issues",
		Price:       "$75 - $200",
		Duration:    "1-3 hours",
		Features:    []string{"Full diagnosis", "Hardware testing", "Software troubleshooting", "Repair", "Performance check"},
	},
	{
		ID:          3,
		Title:       "Hardware Installation",
		Description: "Installation of new components and upgrades",
		Price:       "$50 - $150",
		Duration:    "30min - 2 hours",
		Features:    []string{"RAM upgrade", "Storage installation", "GPU installation", "Cooling systems", "Cable management"},
	},
	{
		ID:          4,
		Title:       "System Optimization",
		Description: "Software optimization and performance tuning",
		Price:       "$60 - $120",
		Duration:    "1-2 hours",
		Features:    []string{"OS optimization", "Driver updates", "Software cleanup", "Performance tuning", "Security setup"},
	},
}
