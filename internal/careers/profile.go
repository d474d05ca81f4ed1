// Package careers holds the static catalog of recommendable career paths.
package careers

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Profile describes one recommendable career path. The display fields are
// shown as is; Skills, Areas and Goals are the tags matched against answers.
type Profile struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Subtitle       string   `json:"subtitle" yaml:"subtitle"`
	Description    string   `json:"description" yaml:"description"`
	Salary         string   `json:"salary" yaml:"salary"`
	Demand         string   `json:"demand" yaml:"demand"`
	TransitionTime string   `json:"transition_time" yaml:"transition_time"`
	WorkMode       string   `json:"work_mode" yaml:"work_mode"`
	Skills         []string `json:"skills" yaml:"skills"`
	Areas          []string `json:"areas" yaml:"areas"`
	Goals          []string `json:"goals" yaml:"goals"`
}

func (p Profile) clone() Profile {
	p.Skills = slices.Clone(p.Skills)
	p.Areas = slices.Clone(p.Areas)
	p.Goals = slices.Clone(p.Goals)
	return p
}

// Catalog is an immutable ordered list of profiles. Iteration order is the
// order the profiles were given in.
type Catalog struct {
	profiles []Profile
	index    map[string]int
}

// NewCatalog copies profiles into a catalog. IDs must be present and unique.
func NewCatalog(profiles []Profile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, errors.New("catalog has no profiles")
	}

	c := &Catalog{
		profiles: make([]Profile, 0, len(profiles)),
		index:    make(map[string]int, len(profiles)),
	}

	for i, p := range profiles {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("profile %d: id is required", i)
		}
		if _, ok := c.index[id]; ok {
			return nil, fmt.Errorf("profile %q: duplicate id", id)
		}

		p = p.clone()
		p.ID = id
		c.index[id] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	}

	return c, nil
}

func (c *Catalog) Len() int { return len(c.profiles) }

// Profiles returns a copy of the profiles in catalog order.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p.clone())
	}
	return out
}

// Find returns the profile with the given id.
func (c *Catalog) Find(id string) (Profile, bool) {
	i, ok := c.index[id]
	if !ok {
		return Profile{}, false
	}
	return c.profiles[i].clone(), true
}

// IDs returns the profile ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.profiles))
	for _, p := range c.profiles {
		ids = append(ids, p.ID)
	}
	return ids
}
