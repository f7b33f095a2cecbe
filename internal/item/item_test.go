// internal/item/item_test.go
package item

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShortName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Meso A1 Relic", "Meso A1"},
		{"Meso A1 Relic (Intact)", "Meso A1"},
		{"Axi K3", "Axi K3"},
		{"Odonata", "Odonata"},
		{"  Lith   G1   Relic ", "Lith G1"},
		{"", ""},
	}
	for _, c := range cases {
		got := Item{Name: c.name}.ShortName()
		if got != c.want {
			t.Errorf("ShortName(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	in := `[
		{"name":"Axi K3 Relic","uniqueName":"/Lotus/AxiK3","tradable":true},
		{"name":"Lith G1 Relic","uniqueName":"/Lotus/LithG1","tradable":false},
		{"name":"Meso A1 Relic","uniqueName":"/Lotus/MesoA1","tradable":true}
	]`
	items, err := Load(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var names []string
	for _, it := range items {
		names = append(names, it.Name)
	}
	want := []string{"Axi K3 Relic", "Lith G1 Relic", "Meso A1 Relic"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMalformed(t *testing.T) {
	cases := []struct {
		label string
		in    string
	}{
		{"truncated", `[{"name":"Meso A1 Relic","uniqueName":`},
		{"not an array", `{"name":"Meso A1 Relic"}`},
		{"wrong field type", `[{"name":42,"uniqueName":"/Lotus/MesoA1"}]`},
		{"missing name", `[{"uniqueName":"/Lotus/MesoA1"}]`},
		{"missing uniqueName", `[{"name":"Meso A1 Relic"}]`},
	}
	for _, c := range cases {
		items, err := Load(context.Background(), strings.NewReader(c.in))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: err = %v, want ErrMalformed", c.label, err)
		}
		if items != nil {
			t.Errorf("%s: partial result %v, want nil", c.label, items)
		}
	}
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled

	items, err := Load(ctx, strings.NewReader(`[]`))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Fatalf("cancellation must not read as malformed input")
	}
	if items != nil {
		t.Fatalf("partial result %v, want nil", items)
	}
}

// Optional nested sub-records must survive a decode/encode cycle intact.
func TestItemRoundTrip(t *testing.T) {
	desc := "A relic containing ancient treasure."
	typ := "Relic"
	cat := "Relic"
	prod := "Projections"
	vault := "2026-03-01"
	orig := Item{
		Name:        "Meso A1 Relic",
		UniqueName:  "/Lotus/Types/Game/Projections/T2VoidProjection1",
		Description: &desc,
		Type:        &typ,
		Tradable:    true,
		Category:    &cat, ProductCategory: &prod,
		Patchlogs: []Patchlog{{Name: "Update 31.5", Date: "2022-04-27", URL: "https://example.invalid/u315", Fixes: "Fixed drop rates."}},
		Components: []Component{{Name: "Blueprint", UniqueName: "/Lotus/Blueprint", Tradable: false}},
		Introduced: &Introduced{Name: "Specters of the Rail", Aliases: []string{"SotR"}, Parent: "19.0", Date: "2016-07-08"},
		EstimatedVaultDate: &vault,
		Rewards: []Reward{
			{Rarity: "Rare", Chance: 0.1, Item: RewardItem{Name: "Nova Prime Blueprint", UniqueName: "/Lotus/NovaPrimeBP"}},
			{Rarity: "Common", Chance: 0.2533, Item: RewardItem{Name: "Forma Blueprint", UniqueName: "/Lotus/FormaBP"}},
		},
	}

	data, err := json.Marshal([]Item{orig})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Load(context.Background(), strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]Item{orig}, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
