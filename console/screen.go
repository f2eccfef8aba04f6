package console

// ScreenID identifies one of the fixed views the inner display can show.
// ScreenLock and ScreenOff are selected by device state rather than by
// navigation; NavigationState.Current always holds one of the content
// screens.
type ScreenID int

const (
	ScreenHome ScreenID = iota
	ScreenGame
	ScreenEShop
	ScreenAlbum
	ScreenSettings
	ScreenNews
	ScreenProfile
	ScreenThemes
	ScreenStats
	ScreenControllers
	ScreenSystem
	ScreenData
	ScreenHelp
	ScreenGameChat
	ScreenLock
	ScreenOff
	ScreenCount
)

func (s ScreenID) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenGame:
		return "game"
	case ScreenEShop:
		return "eshop"
	case ScreenAlbum:
		return "album"
	case ScreenSettings:
		return "settings"
	case ScreenNews:
		return "news"
	case ScreenProfile:
		return "profile"
	case ScreenThemes:
		return "themes"
	case ScreenStats:
		return "stats"
	case ScreenControllers:
		return "controllers"
	case ScreenSystem:
		return "system"
	case ScreenData:
		return "data"
	case ScreenHelp:
		return "help"
	case ScreenGameChat:
		return "gamechat"
	case ScreenLock:
		return "lock"
	case ScreenOff:
		return "off"
	default:
		return "unknown"
	}
}
