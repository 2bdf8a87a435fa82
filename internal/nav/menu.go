package nav

import "net/url"

// MenuParam carries the mobile menu state in the query string.
const MenuParam = "menu"

const menuOpenValue = "open"

// Menu is the mobile menu visibility for one rendered page.
// Nav links never carry the parameter, so navigating closes the menu.
type Menu struct {
	Open bool
}

// MenuFromQuery reads the menu state from request query values.
func MenuFromQuery(q url.Values) Menu {
	return Menu{Open: q.Get(MenuParam) == menuOpenValue}
}

// Toggle flips the visibility.
func (m Menu) Toggle() Menu {
	return Menu{Open: !m.Open}
}

// Href returns the URL that renders currentPath with this menu state.
func (m Menu) Href(currentPath string) string {
	p := Normalize(currentPath)
	if !m.Open {
		return p
	}
	return p + "?" + url.Values{MenuParam: {menuOpenValue}}.Encode()
}

// ToggleHref is the target of the menu button on currentPath.
func (m Menu) ToggleHref(currentPath string) string {
	return m.Toggle().Href(currentPath)
}
