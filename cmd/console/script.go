package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const defaultHold = 5

// keyEvent presses or releases a host key at the start of a frame.
type keyEvent struct {
	frame int
	code  int
	down  bool
}

// parseKeyScript reads comma separated frame:key[:hold] entries. key is a
// single host key character; the key is released hold frames after it was
// pressed. Events come back ordered by frame.
func parseKeyScript(script string) ([]keyEvent, error) {
	var events []keyEvent
	if strings.TrimSpace(script) == "" {
		return events, nil
	}

	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.Errorf("key script entry %q: want frame:key[:hold]", entry)
		}

		frame, err := strconv.Atoi(parts[0])
		if err != nil || frame < 0 {
			return nil, errors.Errorf("key script entry %q: bad frame", entry)
		}

		if len(parts[1]) != 1 {
			return nil, errors.Errorf("key script entry %q: key must be one character", entry)
		}
		code := int(strings.ToLower(parts[1])[0])

		hold := defaultHold
		if len(parts) == 3 {
			hold, err = strconv.Atoi(parts[2])
			if err != nil || hold < 1 {
				return nil, errors.Errorf("key script entry %q: bad hold", entry)
			}
		}

		events = append(events,
			keyEvent{frame: frame, code: code, down: true},
			keyEvent{frame: frame + hold, code: code, down: false},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].frame < events[j].frame
	})
	return events, nil
}
