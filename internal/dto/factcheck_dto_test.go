package dto

import (
	"encoding/json"
	"testing"
)

func TestGameIDUnmarshal(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{input: `26`, want: 26},
		{input: `"42"`, want: 42},
		{input: `{"hex":"0x1a"}`, want: 26},
		{input: `{"type":"BigNumber","hex":"0xff"}`, want: 255},
	}
	for _, tc := range cases {
		var g GameID
		if err := json.Unmarshal([]byte(tc.input), &g); err != nil {
			t.Fatalf("%s: %v", tc.input, err)
		}
		if int64(g) != tc.want {
			t.Fatalf("%s: want=%d got=%d", tc.input, tc.want, g)
		}
	}
}

func TestGameIDUnmarshalInvalid(t *testing.T) {
	for _, input := range []string{`{"hex":"0xzz"}`, `"abc"`, `true`, `1.5`} {
		var g GameID
		if err := json.Unmarshal([]byte(input), &g); err == nil {
			t.Fatalf("%s: want error, got %d", input, g)
		}
	}
}

func TestUpdateFactCheckRequestPartial(t *testing.T) {
	var req UpdateFactCheckRequest
	if err := json.Unmarshal([]byte(`{"gameId":{"hex":"0x10"},"isFinished":true}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.GameID == nil || *req.GameID != 16 {
		t.Fatalf("want gameId=16, got %v", req.GameID)
	}
	if req.IsFinished == nil || !*req.IsFinished || req.IsPublic != nil {
		t.Fatalf("unexpected partial fields: %+v", req)
	}
}
