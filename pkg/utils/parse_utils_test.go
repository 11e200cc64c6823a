package utils

import (
	"reflect"
	"testing"
)

func TestDecodeStringList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["beach","surf"]`, []string{"beach", "surf"}},
		{"double encoded", `"[\"beach\",\"surf\"]"`, []string{"beach", "surf"}},
		{"comma separated", "beach, surf ,  reef", []string{"beach", "surf", "reef"}},
		{"single value", "beach", []string{"beach"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"blank entries dropped", `["", "beach", "  "]`, []string{"beach"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeStringList(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("DecodeStringList(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDecodeRouteStops(t *testing.T) {
	raw := `[{"day":1,"location":"Kandy","note":"temple"},{"day":2,"location":"Ella"}]`
	stops := DecodeRouteStops(raw)
	want := []RouteStopRecord{
		{Day: 1, Location: "Kandy", Note: "temple"},
		{Day: 2, Location: "Ella"},
	}
	if !reflect.DeepEqual(stops, want) {
		t.Errorf("DecodeRouteStops = %+v, want %+v", stops, want)
	}

	doubled := `"[{\"day\":1,\"location\":\"Galle\"}]"`
	stops = DecodeRouteStops(doubled)
	if len(stops) != 1 || stops[0].Location != "Galle" {
		t.Errorf("double-encoded route = %+v", stops)
	}

	for _, raw := range []string{"", "   ", "{broken", "just text"} {
		if got := DecodeRouteStops(raw); len(got) != 0 {
			t.Errorf("DecodeRouteStops(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestContainsFold(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Kandy City", "kandy", true},
		{"eliya", "Nuwara Eliya", true},
		{"Galle", "Galle", true},
		{"Galle", "Jaffna", false},
		{"", "Kandy", false},
		{"Kandy", "  ", false},
	}

	for _, tc := range cases {
		if got := ContainsFold(tc.a, tc.b); got != tc.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
