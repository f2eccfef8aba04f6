// Package content holds the static dressing the info screens render:
// storefront tiles, headlines, profile data, system figures. Nothing here
// affects navigation; the console package owns the interactive catalogs.
package content

// EShopItem is one storefront tile.
type EShopItem struct {
	Name  string
	Price string
}

// FAQEntry is one question/answer pair on the help screen.
type FAQEntry struct {
	Question string
	Answer   string
}

// Scalar dressing for the info screens.
const (
	ProfileUser    = "PlayerOne"
	SystemVersion  = "20.5.0"
	StorageUsedGB  = 32
	StorageTotalGB = 64
	HoursPlayed    = 100
	GamesCompleted = 5
	DemoTitle      = "TURBO KART GP"
	GameChatRooms  = "Room 1 (0/12)"
	ThemeOptions   = "Light / Dark / Custom"
)

// EShopItems fills the storefront grid, three tiles per row.
var EShopItems = []EShopItem{
	{Name: "Turbo Kart GP", Price: "$59.99"},
	{Name: "Ruins of Eldra", Price: "$49.99"},
	{Name: "Star Drifter", Price: "$39.99"},
	{Name: "Puzzle Parade", Price: "$29.99"},
	{Name: "Mecha League", Price: "$44.99"},
}

// NewsHeadlines feed the news screen, one row per entry.
var NewsHeadlines = []string{
	"Spring system update rolling out",
	"New releases this week",
	"System patch notes",
	"Upcoming tournaments",
}

// Friends is the profile screen's friend list.
var Friends = []string{"Friend1", "Friend2", "Friend3"}

// VirtualGameCards lists the loadable card placeholders on the profile.
var VirtualGameCards = []string{"Turbo Kart GP", "Ruins of Eldra"}

// PairedControllers lists the controllers screen entries.
var PairedControllers = []string{"Left Joy-Con", "Right Joy-Con"}

// FAQ fills the help screen.
var FAQ = []FAQEntry{
	{Question: "How to play?", Answer: "Click icons."},
	{Question: "Battery issues?", Answer: "Charge console."},
}
