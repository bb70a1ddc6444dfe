package analysis

// Theme enum
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeInfo is the display metadata for a theme.
type ThemeInfo struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Text        string `json:"text"`
	Description string `json:"description"`
}

var themes = map[Theme]ThemeInfo{
	ThemeLight: {Name: "Light Theme", Icon: "fas fa-sun", Text: "Light", Description: "Clean and bright interface"},
	ThemeDark:  {Name: "Dark Theme", Icon: "fas fa-moon", Text: "Dark", Description: "Dark and elegant interface"},
}

func (t Theme) Info() ThemeInfo {
	if info, ok := themes[t]; ok {
		return info
	}
	return themes[ThemeLight]
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
