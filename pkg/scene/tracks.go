package scene

import (
	"fmt"
	"strconv"
	"strings"

	"mason/pkg/style"
)

// parseTrackList parses the scene file's track entries into a template.
// Each entry is one sizing function ("100px", "25%", "1fr", "auto",
// "min-content", "max-content", "minmax(a, b)") or a repeat group
// ("repeat(3, 100px)", "repeat(auto-fill, 50px auto)").
func parseTrackList(entries []string) (style.TrackList, error) {
	var list style.TrackList
	for _, entry := range entries {
		group, err := parseTrackGroup(entry)
		if err != nil {
			return style.TrackList{}, err
		}
		list.Groups = append(list.Groups, group)
	}
	return list, nil
}

func parseTrackGroup(entry string) (style.TrackGroup, error) {
	entry = strings.TrimSpace(entry)
	if inner, ok := callArgs(entry, "repeat"); ok {
		countStr, rest, ok := strings.Cut(inner, ",")
		if !ok {
			return style.TrackGroup{}, fmt.Errorf("scene: repeat needs a count and a pattern: %q", entry)
		}
		count, err := parseRepeatCount(strings.TrimSpace(countStr))
		if err != nil {
			return style.TrackGroup{}, err
		}
		var tracks []style.TrackSize
		for _, field := range strings.Fields(rest) {
			t, err := parseTrackSize(field)
			if err != nil {
				return style.TrackGroup{}, err
			}
			tracks = append(tracks, t)
		}
		if len(tracks) == 0 {
			return style.TrackGroup{}, fmt.Errorf("scene: empty repeat pattern: %q", entry)
		}
		return style.TrackGroup{Repeat: count, Tracks: tracks}, nil
	}

	t, err := parseTrackSize(entry)
	if err != nil {
		return style.TrackGroup{}, err
	}
	return style.TrackGroup{Repeat: 1, Tracks: []style.TrackSize{t}}, nil
}

func parseRepeatCount(s string) (style.RepeatCount, error) {
	switch s {
	case "auto-fill":
		return style.RepeatAutoFill, nil
	case "auto-fit":
		return style.RepeatAutoFit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("scene: bad repeat count %q", s)
	}
	return style.RepeatCount(n), nil
}

func parseTrackSize(s string) (style.TrackSize, error) {
	s = strings.TrimSpace(s)
	if inner, ok := callArgs(s, "minmax"); ok {
		minStr, maxStr, found := strings.Cut(inner, ",")
		if !found {
			return style.TrackSize{}, fmt.Errorf("scene: minmax needs two arguments: %q", s)
		}
		min, err := parseSizing(strings.TrimSpace(minStr))
		if err != nil {
			return style.TrackSize{}, err
		}
		max, err := parseSizing(strings.TrimSpace(maxStr))
		if err != nil {
			return style.TrackSize{}, err
		}
		return style.MinMax(min, max), nil
	}
	sizing, err := parseSizing(s)
	if err != nil {
		return style.TrackSize{}, err
	}
	return style.Track(sizing), nil
}

func parseSizing(s string) (style.Sizing, error) {
	switch s {
	case "auto":
		return style.Auto(), nil
	case "min-content":
		return style.MinContent(), nil
	case "max-content":
		return style.MaxContent(), nil
	}
	for _, unit := range []struct {
		suffix string
		make   func(float64) style.Sizing
	}{
		{"px", style.Px},
		{"%", style.Percent},
		{"fr", style.Fr},
	} {
		if strings.HasSuffix(s, unit.suffix) {
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, unit.suffix), 64)
			if err != nil || v < 0 {
				return style.Sizing{}, fmt.Errorf("scene: bad track size %q", s)
			}
			return unit.make(v), nil
		}
	}
	return style.Sizing{}, fmt.Errorf("scene: unknown track size %q", s)
}

// callArgs unwraps "name(args)" and returns args.
func callArgs(s, name string) (string, bool) {
	if strings.HasPrefix(s, name+"(") && strings.HasSuffix(s, ")") {
		return s[len(name)+1 : len(s)-1], true
	}
	return "", false
}
