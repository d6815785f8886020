// FILE: lixenwraith/appsettings/menu.go
package settings

import (
	"fmt"
	"math/bits"
	"strings"
)

// MenuItem identifies an optional entry of the main and in-game menus
type MenuItem uint8

const (
	MenuItemSaveLoad MenuItem = iota
	MenuItemExtra
	MenuItemOnline

	menuItemCount // Sentinel, keep last
)

var menuItemNames = [menuItemCount]string{
	MenuItemSaveLoad: "SAVE_LOAD",
	MenuItemExtra:    "EXTRA",
	MenuItemOnline:   "ONLINE",
}

// IsValid reports whether i is a declared menu item
func (i MenuItem) IsValid() bool {
	return i < menuItemCount
}

func (i MenuItem) String() string {
	if i.IsValid() {
		return menuItemNames[i]
	}
	return fmt.Sprintf("MenuItem(%d)", uint8(i))
}

// ParseMenuItem converts a case-insensitive menu item name
func ParseMenuItem(s string) (MenuItem, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, itemName := range menuItemNames {
		if itemName == name {
			return MenuItem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMenuItem, s)
}

// MarshalText implements encoding.TextMarshaler
func (i MenuItem) MarshalText() ([]byte, error) {
	if !i.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMenuItem, uint8(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *MenuItem) UnmarshalText(text []byte) error {
	item, err := ParseMenuItem(string(text))
	if err != nil {
		return err
	}
	*i = item
	return nil
}

// MenuItemSet is an immutable set of menu items stored as a bit mask.
// Sets built through NewMenuItemSet, With, ParseMenuItemSet or stored by
// Builder.SetEnabledMenuItems never hold bits outside the declared items.
type MenuItemSet uint8

const allMenuItemsMask = MenuItemSet(1<<menuItemCount - 1)

// NewMenuItemSet builds a set from items. Duplicates collapse and
// undeclared items are dropped.
func NewMenuItemSet(items ...MenuItem) MenuItemSet {
	var s MenuItemSet
	for _, item := range items {
		s = s.With(item)
	}
	return s
}

// AllMenuItems returns the set of every declared item
func AllMenuItems() MenuItemSet {
	return allMenuItemsMask
}

// With returns a copy of s that also contains item
func (s MenuItemSet) With(item MenuItem) MenuItemSet {
	if !item.IsValid() {
		return s
	}
	return s | 1<<item
}

// Without returns a copy of s that does not contain item
func (s MenuItemSet) Without(item MenuItem) MenuItemSet {
	if !item.IsValid() {
		return s
	}
	return s &^ (1 << item)
}

// Contains reports whether item is in the set
func (s MenuItemSet) Contains(item MenuItem) bool {
	return item.IsValid() && s&(1<<item) != 0
}

// Len returns the number of items in the set
func (s MenuItemSet) Len() int {
	return bits.OnesCount8(uint8(s & allMenuItemsMask))
}

// IsEmpty reports whether no items are enabled
func (s MenuItemSet) IsEmpty() bool {
	return s&allMenuItemsMask == 0
}

// Items returns the members in declaration order
func (s MenuItemSet) Items() []MenuItem {
	items := make([]MenuItem, 0, s.Len())
	for i := MenuItem(0); i < menuItemCount; i++ {
		if s.Contains(i) {
			items = append(items, i)
		}
	}
	return items
}

func (s MenuItemSet) String() string {
	items := s.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// menuItemSetNone spells the empty set where an empty string reads as unset
const menuItemSetNone = "NONE"

// ParseMenuItemSet parses a comma-separated list of item names.
// An empty or blank string, or NONE in any case, yields the empty set.
func ParseMenuItemSet(s string) (MenuItemSet, error) {
	var set MenuItemSet
	if trimmed := strings.TrimSpace(s); trimmed == "" || strings.EqualFold(trimmed, menuItemSetNone) {
		return set, nil
	}
	for _, part := range strings.Split(s, ",") {
		item, err := ParseMenuItem(part)
		if err != nil {
			return 0, err
		}
		set = set.With(item)
	}
	return set, nil
}

// MarshalText implements encoding.TextMarshaler as a comma-separated list
func (s MenuItemSet) MarshalText() ([]byte, error) {
	items := s.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return []byte(strings.Join(names, ",")), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *MenuItemSet) UnmarshalText(text []byte) error {
	set, err := ParseMenuItemSet(string(text))
	if err != nil {
		return err
	}
	*s = set
	return nil
}
