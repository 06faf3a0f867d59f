package model

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewGameStateRejectsDuplicates(t *testing.T) {
	_, err := NewGameState(3,
		Unit{PlayerID: 1, HP: 50, Location: Loc(4, 4)},
		Unit{PlayerID: 2, HP: 50, Location: Loc(4, 4)},
	)
	if err == nil {
		t.Fatal("expected duplicate location error")
	}
}

func TestGameStateJSON(t *testing.T) {
	payload := `{"turn":12,"units":[
		{"player_id":0,"hp":50,"location":[3,4]},
		{"player_id":1,"hp":7,"location":[3,5]}
	]}`
	var gs GameState
	if err := json.Unmarshal([]byte(payload), &gs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if gs.Turn != 12 || len(gs.Units) != 2 {
		t.Fatalf("got turn=%d units=%d", gs.Turn, len(gs.Units))
	}
	u, ok := gs.UnitAt(Loc(3, 5))
	if !ok || u.HP != 7 || u.PlayerID != 1 {
		t.Errorf("UnitAt(3,5) = %+v, %v", u, ok)
	}
	if n := len(gs.UnitsOf(0)); n != 1 {
		t.Errorf("UnitsOf(0) = %d units, want 1", n)
	}
}

func TestGameStateJSONErrors(t *testing.T) {
	tests := map[string]string{
		"duplicate":      `{"turn":1,"units":[{"location":[1,1],"hp":5},{"location":[1,1],"hp":6}]}`,
		"short location": `{"turn":1,"units":[{"location":[1],"hp":5}]}`,
		"negative turn":  `{"turn":-1,"units":[]}`,
	}
	for name, payload := range tests {
		var gs GameState
		if err := json.Unmarshal([]byte(payload), &gs); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestActionJSON(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{Move(Loc(2, 3)), `["move",[2,3]]`},
		{Attack(Loc(7, 1)), `["attack",[7,1]]`},
		{Suicide(), `["suicide"]`},
		{Guard(), `["guard"]`},
	}
	for _, tc := range tests {
		b, err := json.Marshal(tc.action)
		if err != nil {
			t.Fatalf("marshal %s: %v", tc.action, err)
		}
		if string(b) != tc.want {
			t.Errorf("marshal %s = %s, want %s", tc.action, b, tc.want)
		}
	}

	var a Action
	if err := json.Unmarshal([]byte(`["attack",[7,1]]`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a != Attack(Loc(7, 1)) {
		t.Errorf("unmarshal = %s, want attack (7,1)", a)
	}
	for _, bad := range []string{`[]`, `["move"]`, `["dance"]`} {
		if err := json.Unmarshal([]byte(bad), &a); err == nil {
			t.Errorf("unmarshal %s: expected error", bad)
		}
	}
}

func TestLocationYAML(t *testing.T) {
	var locs []Location
	if err := yaml.Unmarshal([]byte("- [1, 2]\n- [3, 4]\n"), &locs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(locs) != 2 || locs[1] != Loc(3, 4) {
		t.Errorf("got %v", locs)
	}
	err := yaml.Unmarshal([]byte("- [1, 2, 3]\n"), &locs)
	if err == nil || !strings.Contains(err.Error(), "2 coordinates") {
		t.Errorf("expected coordinate count error, got %v", err)
	}
}
