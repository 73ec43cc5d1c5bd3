package machine_test

import (
	"testing"

	"github.com/mdelacour/enigforce/internal/fixture"
	"github.com/mdelacour/enigforce/internal/message"
	"github.com/mdelacour/enigforce/pkg/machine"
)

func TestFixtures(t *testing.T) {
	cases := []string{
		"../../testdata/simple.json",
	}

	for _, path := range cases {
		path := path
		t.Run(path, func(t *testing.T) {
			f, err := fixture.Load(path)
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}

			state, err := f.MachineState()
			if err != nil {
				t.Fatalf("MachineState error: %v", err)
			}

			m, err := machine.New(state)
			if err != nil {
				t.Fatalf("machine.New error: %v", err)
			}

			got := m.Consume(message.FromString(f.Input)).String()
			if got != f.Expect {
				t.Errorf("Consume(%q) = %q, want %q", f.Input, got, f.Expect)
			}
		})
	}
}
