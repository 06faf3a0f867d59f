package ipc

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nstehr/vimy/nub-core/model"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	env, err := NewEnvelope(TypeActions, ActionsMessage{
		Turn:    4,
		Actions: []UnitAction{{Location: model.Loc(1, 2), Action: model.Attack(model.Loc(1, 3))}},
	})
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if err := WriteEnvelope(&buf, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	if got := binary.LittleEndian.Uint32(buf.Bytes()[:4]); int(got) != buf.Len()-4 {
		t.Errorf("length prefix = %d, payload = %d", got, buf.Len()-4)
	}

	got, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if got.Type != TypeActions {
		t.Errorf("type = %q", got.Type)
	}
	if !strings.Contains(string(got.Data), `"action":["attack",[1,3]]`) {
		t.Errorf("data = %s", got.Data)
	}
}

func TestReadEnvelopeRejectsBadLength(t *testing.T) {
	for _, n := range []uint32{0, MaxMessageSize + 1} {
		var buf bytes.Buffer
		binary.Write(&buf, binary.LittleEndian, n)
		if _, err := ReadEnvelope(&buf); err == nil || !strings.Contains(err.Error(), "invalid message length") {
			t.Errorf("length %d: err = %v", n, err)
		}
	}
}

func TestReadEnvelopeTruncated(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(10))
	buf.WriteString(`{"ty`)
	if _, err := ReadEnvelope(&buf); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestTurnMessageDecodes(t *testing.T) {
	var turn TurnMessage
	data := `{"turn":8,"units":[{"player_id":1,"hp":20,"location":[9,1]}]}`
	if err := json.Unmarshal([]byte(data), &turn); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if turn.Turn != 8 {
		t.Errorf("turn = %d", turn.Turn)
	}
	if u, ok := turn.UnitAt(model.Loc(9, 1)); !ok || u.HP != 20 {
		t.Errorf("unit = %+v, %v", u, ok)
	}
}
