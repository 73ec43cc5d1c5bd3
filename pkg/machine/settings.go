package machine

import (
	"encoding/json"
	"fmt"

	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
)

// settingsJSON mirrors the JSON fixture shape: reflector_id, rotors as
// [id, start] pairs, and plugs as [a, b] pairs.
type settingsJSON struct {
	ReflectorID string     `json:"reflector_id"`
	Rotors      [][2]string `json:"rotors"`
	Plugs       [][2]string `json:"plugs"`
}

// MarshalJSON renders a MachineState in the fixture's wire format.
func (s MachineState) MarshalJSON() ([]byte, error) {
	out := settingsJSON{
		ReflectorID: s.Reflector.String(),
	}

	for _, r := range s.Rotors {
		out.Rotors = append(out.Rotors, [2]string{r.ID.String(), r.Start.String()})
	}
	for _, p := range s.Plugs {
		out.Plugs = append(out.Plugs, [2]string{p[0].String(), p[1].String()})
	}

	return json.Marshal(out)
}

// UnmarshalJSON parses a MachineState from the fixture's wire format.
func (s *MachineState) UnmarshalJSON(data []byte) error {
	var in settingsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	reflID, err := reflector.ParseID(in.ReflectorID)
	if err != nil {
		return fmt.Errorf("machine: settings: %w", err)
	}

	rotors := make([]RotorConfig, len(in.Rotors))
	for i, r := range in.Rotors {
		id, err := rotor.ParseID(r[0])
		if err != nil {
			return fmt.Errorf("machine: settings: rotor %d: %w", i, err)
		}
		start, err := letter.Parse(r[1])
		if err != nil {
			return fmt.Errorf("machine: settings: rotor %d: %w", i, err)
		}
		rotors[i] = RotorConfig{ID: id, Start: start}
	}

	plugs := make([]plugboard.Pair, len(in.Plugs))
	for i, p := range in.Plugs {
		a, err := letter.Parse(p[0])
		if err != nil {
			return fmt.Errorf("machine: settings: plug %d: %w", i, err)
		}
		b, err := letter.Parse(p[1])
		if err != nil {
			return fmt.Errorf("machine: settings: plug %d: %w", i, err)
		}
		plugs[i] = plugboard.Pair{a, b}
	}

	*s = NewState(plugs, rotors, reflID)
	return nil
}
