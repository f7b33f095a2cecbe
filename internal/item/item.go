// internal/item/item.go
package item

import "strings"

// Patchlog is one update-notes entry attached to an item. It round-trips
// through the JSON writer but no text renderer shows it.
type Patchlog struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	URL       string `json:"url"`
	Additions string `json:"additions"`
	Changes   string `json:"changes"`
	Fixes     string `json:"fixes"`
}

// Component is a craftable sub-part of an item.
type Component struct {
	Name            string  `json:"name"`
	UniqueName      string  `json:"uniqueName"`
	Description     *string `json:"description,omitempty"`
	Type            *string `json:"type,omitempty"`
	Tradable        bool    `json:"tradable"`
	Category        *string `json:"category,omitempty"`
	ProductCategory *string `json:"productCategory,omitempty"`
}

// Introduced records the game update that shipped an item.
type Introduced struct {
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Aliases []string `json:"aliases"`
	Parent  string   `json:"parent"`
	Date    string   `json:"date"`
}

// RewardItem names the drop granted by a relic reward slot.
type RewardItem struct {
	Name       string `json:"name"`
	UniqueName string `json:"uniqueName"`
}

// Reward is one relic reward slot. Chance is a probability in [0,1].
type Reward struct {
	Rarity string     `json:"rarity"`
	Chance float64    `json:"chance"`
	Item   RewardItem `json:"item"`
}

// Item is one record of the input batch. Name and UniqueName are required
// by the source format; every other field is optional. Optional scalar
// fields are pointers so that "absent" stays distinguishable from
// "present but empty".
type Item struct {
	Name               string      `json:"name"`
	UniqueName         string      `json:"uniqueName"`
	Description        *string     `json:"description,omitempty"`
	Type               *string     `json:"type,omitempty"`
	Tradable           bool        `json:"tradable"`
	Category           *string     `json:"category,omitempty"`
	ProductCategory    *string     `json:"productCategory,omitempty"`
	Patchlogs          []Patchlog  `json:"patchlogs,omitempty"`
	Components         []Component `json:"components,omitempty"`
	Introduced         *Introduced `json:"introduced,omitempty"`
	EstimatedVaultDate *string     `json:"estimatedVaultDate,omitempty"`
	Rewards            []Reward    `json:"rewards,omitempty"`
}

// ShortName returns the first two whitespace-delimited tokens of the
// display name joined by a single space: "Meso A1 Relic" -> "Meso A1".
// A single-token name yields that token alone.
func (it Item) ShortName() string {
	fields := strings.Fields(it.Name)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " ")
}
