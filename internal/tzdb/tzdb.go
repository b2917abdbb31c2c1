// Package tzdb provides the canonical set of timezone identifiers that
// birth timezones are validated against.
//
// The set is embedded at build time from the IANA tz database and includes
// backward-compatible link names such as "US/Eastern", matching what users
// commonly type.
package tzdb

import (
	"bufio"
	_ "embed"
	"sort"
	"strings"
	"sync"
)

//go:embed zones.txt
var zonesFile string

type catalogue struct {
	names   []string
	index   map[string]struct{}
	regions []string
}

var load = sync.OnceValue(func() *catalogue {
	return parse(zonesFile)
})

func parse(data string) *catalogue {
	c := &catalogue{index: make(map[string]struct{})}
	seenRegion := make(map[string]struct{})

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := c.index[line]; dup {
			continue
		}
		c.index[line] = struct{}{}
		c.names = append(c.names, line)

		if region, _, ok := strings.Cut(line, "/"); ok {
			if _, seen := seenRegion[region]; !seen {
				seenRegion[region] = struct{}{}
				c.regions = append(c.regions, region)
			}
		}
	}

	sort.Strings(c.names)
	sort.Strings(c.regions)
	return c
}

// Names returns every canonical timezone name in sorted order.
// The returned slice is a copy and may be modified by the caller.
func Names() []string {
	names := load().names
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Contains reports whether name is exactly a canonical timezone name.
// The comparison is case-sensitive.
func Contains(name string) bool {
	_, ok := load().index[name]
	return ok
}

// Len returns the number of canonical timezone names.
func Len() int {
	return len(load().names)
}

// Regions returns the distinct leading segments of hierarchical names,
// e.g. "Africa", "America", "Australia".
func Regions() []string {
	regions := load().regions
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}

// InRegion returns the names starting with prefix, ignoring case.
// A bare region such as "Australia" lists everything under "Australia/".
// An empty prefix returns nil.
func InRegion(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil
	}
	lower := strings.ToLower(prefix)

	var out []string
	for _, name := range load().names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			out = append(out, name)
		}
	}
	return out
}
