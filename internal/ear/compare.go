package ear

import "sort"

// EntryChange is a member present in both manifests whose content differs.
type EntryChange struct {
	Name string
	From ManifestEntry
	To   ManifestEntry
}

// Changes lists the member differences between two manifests. Names are
// prefixed with "lib:" or "<type>:" and sorted.
type Changes struct {
	Added    []string
	Removed  []string
	Modified []EntryChange
}

// Empty reports whether the manifests deploy the same files.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Modified) == 0
}

// Compare reports which deployable members were added, removed or changed
// between from and to. Members are matched by kind and in-archive path and
// compared by checksum.
func Compare(from, to Manifest) Changes {
	before := deployables(from)
	after := deployables(to)

	var c Changes
	for name, entry := range after {
		old, ok := before[name]
		switch {
		case !ok:
			c.Added = append(c.Added, name)
		case old.CRC32 != entry.CRC32 || old.Size != entry.Size:
			c.Modified = append(c.Modified, EntryChange{Name: name, From: old, To: entry})
		}
	}
	for name := range before {
		if _, ok := after[name]; !ok {
			c.Removed = append(c.Removed, name)
		}
	}

	sort.Strings(c.Added)
	sort.Strings(c.Removed)
	sort.Slice(c.Modified, func(i, j int) bool { return c.Modified[i].Name < c.Modified[j].Name })
	return c
}

func deployables(m Manifest) map[string]ManifestEntry {
	out := make(map[string]ManifestEntry, len(m.Libraries)+len(m.Modules))
	for _, l := range m.Libraries {
		out["lib:"+l.Filename] = l
	}
	for _, mod := range m.Modules {
		if mod.Entry != nil {
			out[mod.Type+":"+mod.Entry.Filename] = *mod.Entry
		}
	}
	return out
}
