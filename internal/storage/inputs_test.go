package storage

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestEncodeInputsLayout(t *testing.T) {
	tests := []struct {
		name  string
		frame core.InputFrame
		want  byte
	}{
		{"empty", core.InputFrame{}, 0},
		{"thrust", core.InputFrame{Thrust: true}, 0b00000001},
		{"left", core.InputFrame{Steer: core.SteerLeft}, 0b00000010},
		{"right", core.InputFrame{Steer: core.SteerRight}, 0b00000100},
		{"one shot", core.InputFrame{Fire: 1}, 0b00001000},
		{"everything", core.InputFrame{Thrust: true, Steer: core.SteerRight, Fire: 3}, 0b00011101},
		{"fire capped", core.InputFrame{Fire: 100}, 31 << 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeInputs([]core.InputFrame{tt.frame})
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("EncodeInputs(%+v) = %08b, expected %08b", tt.frame, got, tt.want)
			}
		})
	}
}

func TestDecodeInputs(t *testing.T) {
	frames, err := DecodeInputs([]byte{0b00011101, 0})
	if err != nil {
		t.Fatalf("DecodeInputs: %v", err)
	}
	want := []core.InputFrame{{Thrust: true, Steer: core.SteerRight, Fire: 3}, {}}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, expected %+v", i, frames[i], want[i])
		}
	}
}

func TestDecodeInputsRejectsBadSteering(t *testing.T) {
	_, err := DecodeInputs([]byte{0, 0b00000110})
	if !errors.Is(err, ErrCorruptInputs) {
		t.Errorf("DecodeInputs error = %v, expected ErrCorruptInputs", err)
	}
}
